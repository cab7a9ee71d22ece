package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"aura/internal/auth"
	"aura/internal/logger"
	"aura/internal/model"
	"aura/internal/repository"
)

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Logout(ctx context.Context, userID uint) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	bcryptCost int
	// compared against when the email is unknown so both login failures
	// cost one bcrypt comparison
	dummyHash []byte
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("aura-dummy-password"), bcryptCost)

	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register creates a user with a hashed password and a default profile.
func (s *authService) Register(ctx context.Context, name, email, password string) (uint, error) {
	if name == "" || email == "" || password == "" {
		return 0, ErrRegisterFieldsRequired
	}

	// Fast path; the unique index below still settles concurrent registrations.
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return 0, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, ErrPasswordTooLong
		}
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	id, err := s.userRepo.CreateWithProfile(ctx, user, model.NewUserProfile())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	logger.FromContext(ctx).Info().Uint("user_id", id).Msg("user registered")
	return id, nil
}

// Login verifies the credentials and issues an access token whose subject
// is the user id.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrLoginFieldsRequired
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout only confirms that the caller holds a valid token. Nothing is
// revoked server-side: the token stays usable until it expires.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	logger.FromContext(ctx).Info().Uint("user_id", userID).Msg("user logged out")
	return nil
}
