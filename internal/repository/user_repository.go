package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aura/internal/model"
)

// UserRepository defines user persistence operations, including the owned
// children and the unlocked-items association.
type UserRepository interface {
	Repository[model.User]
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) (uint, error)
	FindWithRelations(ctx context.Context, id uint) (*model.User, error)
	Unlock(ctx context.Context, userID, unlockableID uint) error
	Lock(ctx context.Context, userID, unlockableID uint) error
	ListUnlocked(ctx context.Context, userID uint) ([]model.Unlockable, error)
}

type userRepository struct {
	Repository[model.User]
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: New[model.User](db),
		db:         db,
	}
}

// FindByEmail returns ErrNotFound when no user has that email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// CreateWithProfile inserts the user and its profile in one transaction.
// A taken email surfaces as ErrDuplicate and nothing is written.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) (uint, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", classify(err))
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create profile: %w", classify(err))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	user.Profile = profile
	return user.ID, nil
}

// Delete removes a user and everything it owns in one transaction:
// unlock links, playlist videos, favorite themes, the profile and finally
// the user row. Catalog items are left untouched.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Select("id").First(&user, id).Error; err != nil {
			return classify(err)
		}

		if err := tx.Exec("DELETE FROM user_unlocks WHERE user_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete unlock links: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return fmt.Errorf("delete playlist videos: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.FavoriteTheme{}).Error; err != nil {
			return fmt.Errorf("delete favorite themes: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.UserProfile{}).Error; err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := tx.Delete(&model.User{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

// FindWithRelations loads a user with profile, playlist, themes and
// unlocked items.
func (r *userRepository) FindWithRelations(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("PlaylistVideos", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("FavoriteThemes", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("UnlockedItems", func(db *gorm.DB) *gorm.DB { return db.Order("unlockables.id") }).
		First(&user, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// Unlock links the catalog item to the user. Unlocking twice is a no-op.
func (r *userRepository) Unlock(ctx context.Context, userID, unlockableID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, item, err := loadPair(tx, userID, unlockableID)
		if err != nil {
			return err
		}
		if err := tx.Model(user).Association("UnlockedItems").Append(item); err != nil {
			return fmt.Errorf("unlock: %w", classify(err))
		}
		return nil
	})
}

// Lock removes the link between user and catalog item, if any.
func (r *userRepository) Lock(ctx context.Context, userID, unlockableID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, item, err := loadPair(tx, userID, unlockableID)
		if err != nil {
			return err
		}
		if err := tx.Model(user).Association("UnlockedItems").Delete(item); err != nil {
			return fmt.Errorf("lock: %w", err)
		}
		return nil
	})
}

// ListUnlocked returns the catalog items the user has unlocked.
func (r *userRepository) ListUnlocked(ctx context.Context, userID uint) ([]model.Unlockable, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Select("id").First(&user, userID).Error; err != nil {
		return nil, classify(err)
	}

	items := make([]model.Unlockable, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN user_unlocks ON user_unlocks.unlockable_id = unlockables.id").
		Where("user_unlocks.user_id = ?", userID).
		Order("unlockables.id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func loadPair(tx *gorm.DB, userID, unlockableID uint) (*model.User, *model.Unlockable, error) {
	var user model.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, nil, classify(err)
	}
	var item model.Unlockable
	if err := tx.First(&item, unlockableID).Error; err != nil {
		return nil, nil, classify(err)
	}
	return &user, &item, nil
}
