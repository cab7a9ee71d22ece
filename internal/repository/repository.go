package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

const (
	// DefaultLimit is used when a Page carries no limit.
	DefaultLimit = 50
	// MaxLimit caps a single List call.
	MaxLimit = 500
)

// Page selects a window of rows ordered by primary key.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Repository defines generic persistence operations for one entity type.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, page Page) ([]T, error)
	Update(ctx context.Context, id uint, entity *T) error
	Delete(ctx context.Context, id uint) error
}

type gormRepository[T any] struct {
	db *gorm.DB
}

// New builds a GORM-backed repository for T.
func New[T any](db *gorm.DB) Repository[T] {
	return &gormRepository[T]{db: db}
}

// Create inserts a new row.
func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create: %w", classify(err))
	}
	return nil
}

// FindByID loads a row by primary key.
func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		return nil, classify(err)
	}
	return &entity, nil
}

// List returns one page of rows.
func (r *gormRepository[T]) List(ctx context.Context, page Page) ([]T, error) {
	page = page.normalize()

	entities := make([]T, 0)
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&entities).Error
	if err != nil {
		return nil, classify(err)
	}
	return entities, nil
}

// Update overwrites every column of row id with entity. The primary key of
// entity is forced to id.
func (r *gormRepository[T]) Update(ctx context.Context, id uint, entity *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return classify(err)
		}
		if err := tx.Model(&existing).Select("*").Omit("id").Updates(entity).Error; err != nil {
			return fmt.Errorf("update: %w", classify(err))
		}

		var updated T
		if err := tx.First(&updated, id).Error; err != nil {
			return classify(err)
		}
		*entity = updated
		return nil
	})
}

// Delete removes row id.
func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	res := r.db.WithContext(ctx).Delete(&entity, id)
	if res.Error != nil {
		return fmt.Errorf("delete: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
