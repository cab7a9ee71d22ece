package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aura/internal/model"
	"aura/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page repository.Page) ([]model.User, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, user *model.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) (uint, error) {
	args := m.Called(ctx, user, profile)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockUserRepository) FindWithRelations(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Unlock(ctx context.Context, userID, unlockableID uint) error {
	args := m.Called(ctx, userID, unlockableID)
	return args.Error(0)
}

func (m *MockUserRepository) Lock(ctx context.Context, userID, unlockableID uint) error {
	args := m.Called(ctx, userID, unlockableID)
	return args.Error(0)
}

func (m *MockUserRepository) ListUnlocked(ctx context.Context, userID uint) ([]model.Unlockable, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Unlockable), args.Error(1)
}
