package handler

import (
	"github.com/labstack/echo/v4"

	"aura/internal/auth"
	apperrors "aura/internal/errors"
)

// ClaimsContextKey is where the bearer middleware stores *auth.Claims.
const ClaimsContextKey = "user"

var errInvalidToken = apperrors.NewAuthError("Token inválido o expirado")

// userIDFromContext returns the id of the authenticated caller.
func userIDFromContext(c echo.Context) (uint, error) {
	claims, ok := c.Get(ClaimsContextKey).(*auth.Claims)
	if !ok || claims == nil {
		return 0, errInvalidToken
	}
	id, err := auth.UserID(claims)
	if err != nil {
		return 0, errInvalidToken
	}
	return id, nil
}
