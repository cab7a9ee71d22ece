package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aura/internal/cache"
	"aura/internal/logger"
	"aura/internal/model"
	"aura/internal/repository"
)

// DefaultUserCacheTTL is used when the service is built with a zero TTL.
const DefaultUserCacheTTL = time.Minute

// UserService exposes the caller's own data and keeps its cache coherent.
type UserService interface {
	Me(ctx context.Context, userID uint) (*model.User, error)
	DeleteUser(ctx context.Context, userID uint) error
	Invalidate(ctx context.Context, userID uint)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewUserService builds a UserService with repository and cache. The cache
// may be nil.
func NewUserService(repo repository.UserRepository, cache *cache.Client, ttl time.Duration) UserService {
	if ttl <= 0 {
		ttl = DefaultUserCacheTTL
	}
	return &userService{repo: repo, cache: cache, ttl: ttl}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d:me", id)
}

// Me returns the user with profile, playlist, themes and unlocked items.
func (s *userService) Me(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindWithRelations(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, s.ttl)
	}
	return user, nil
}

// DeleteUser removes the user and everything it owns.
func (s *userService) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.Invalidate(ctx, userID)

	logger.FromContext(ctx).Info().Uint("user_id", userID).Msg("user deleted")
	return nil
}

// Invalidate drops the cached view of the user.
func (s *userService) Invalidate(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
}
