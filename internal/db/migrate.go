package db

import (
	"fmt"

	"gorm.io/gorm"

	"aura/internal/model"
)

// Migrate creates or updates the schema for every model and the
// user_unlocks join table. With reset set, existing tables are dropped first.
func Migrate(gormDB *gorm.DB, reset bool) error {
	if reset {
		if err := Drop(gormDB); err != nil {
			return err
		}
	}

	if err := gormDB.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Drop removes all tables, children before parents.
func Drop(gormDB *gorm.DB) error {
	tables := []any{
		model.UserUnlocksTable,
		&model.PlaylistVideo{},
		&model.FavoriteTheme{},
		&model.UserProfile{},
		&model.Unlockable{},
		&model.User{},
	}
	for _, table := range tables {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
