package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aura/internal/cache"
	"aura/internal/model"
	"aura/internal/repository"
)

func newTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestUserService_Me_ReadThrough(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindWithRelations", mock.Anything, uint(1)).Return(&model.User{
		ID:      1,
		Name:    "Ana",
		Email:   "ana@x.com",
		Profile: &model.UserProfile{UserID: 1, ActiveThemeName: "Paz"},
	}, nil).Once()

	service := NewUserService(mockRepo, c, time.Minute)

	first, err := service.Me(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", first.Name)
	assert.True(t, mr.Exists("user:1:me"))

	second, err := service.Me(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Email, second.Email)
	assert.Equal(t, "Paz", second.Profile.ActiveThemeName)

	mockRepo.AssertNumberOfCalls(t, "FindWithRelations", 1)
}

func TestUserService_Me_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindWithRelations", mock.Anything, uint(9)).Return(nil, repository.ErrNotFound)

	service := NewUserService(mockRepo, nil, 0)
	_, err := service.Me(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Me_RedisDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindWithRelations", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Ana"}, nil)

	service := NewUserService(mockRepo, c, time.Minute)
	user, err := service.Me(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("user:1:me", `{"id":1}`))

	mockRepo := new(MockUserRepository)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
	mockRepo.On("Delete", mock.Anything, uint(2)).Return(repository.ErrNotFound)
	mockRepo.On("Delete", mock.Anything, uint(3)).Return(errors.New("boom"))

	service := NewUserService(mockRepo, c, time.Minute)

	require.NoError(t, service.DeleteUser(ctx, 1))
	assert.False(t, mr.Exists("user:1:me"))

	assert.ErrorIs(t, service.DeleteUser(ctx, 2), ErrUserNotFound)
	assert.ErrorContains(t, service.DeleteUser(ctx, 3), "boom")
}
