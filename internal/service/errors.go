package service

import (
	apperrors "aura/internal/errors"
)

var (
	// ErrRegisterFieldsRequired is returned when name, email or password is empty.
	ErrRegisterFieldsRequired = apperrors.NewValidationError("Nombre, email y contraseña son requeridos")
	// ErrLoginFieldsRequired is returned when email or password is empty.
	ErrLoginFieldsRequired = apperrors.NewValidationError("Email y contraseña son requeridos")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
	ErrPasswordTooLong = apperrors.NewValidationError("La contraseña no puede superar 72 bytes")
	// ErrEmailTaken is returned when trying to register an existing email.
	ErrEmailTaken = apperrors.NewConflictError("El correo ya está en uso")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = apperrors.NewAuthError("Credenciales incorrectas")
	// ErrUserNotFound is returned when the user behind a valid token is gone.
	ErrUserNotFound = apperrors.NewNotFoundError("Usuario no encontrado")
)
