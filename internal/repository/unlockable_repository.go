package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"aura/internal/model"
)

// UnlockableRepository defines catalog persistence operations.
type UnlockableRepository interface {
	Repository[model.Unlockable]
	FindByName(ctx context.Context, name string) (*model.Unlockable, error)
	Upsert(ctx context.Context, item *model.Unlockable) (created bool, err error)
}

type unlockableRepository struct {
	Repository[model.Unlockable]
	db *gorm.DB
}

// NewUnlockableRepository builds a GORM-backed repository.
func NewUnlockableRepository(db *gorm.DB) UnlockableRepository {
	return &unlockableRepository{
		Repository: New[model.Unlockable](db),
		db:         db,
	}
}

// FindByName finds a catalog item by its unique name.
func (r *unlockableRepository) FindByName(ctx context.Context, name string) (*model.Unlockable, error) {
	var item model.Unlockable
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, classify(err)
	}
	return &item, nil
}

// Upsert creates the item or, when one with the same name exists, updates
// its description, type and cost in place.
func (r *unlockableRepository) Upsert(ctx context.Context, item *model.Unlockable) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Unlockable
		err := tx.Where("name = ?", item.Name).First(&existing).Error
		switch classify(err) {
		case nil:
			existing.Description = item.Description
			existing.ItemType = item.ItemType
			existing.PointsCost = item.PointsCost
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("update unlockable %q: %w", item.Name, classify(err))
			}
			*item = existing
			return nil
		case ErrNotFound:
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("create unlockable %q: %w", item.Name, classify(err))
			}
			created = true
			return nil
		default:
			return fmt.Errorf("find unlockable %q: %w", item.Name, err)
		}
	})
	return created, err
}

// Delete removes a catalog item together with every user's link to it.
func (r *unlockableRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_unlocks WHERE unlockable_id = ?", id).Error; err != nil {
			return fmt.Errorf("delete unlock links: %w", err)
		}
		res := tx.Delete(&model.Unlockable{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete unlockable: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
