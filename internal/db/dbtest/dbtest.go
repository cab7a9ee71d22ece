// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aura/internal/db"
)

// Open returns a migrated in-memory database private to the calling test.
// The pool is capped at one connection so the shared-cache database is never
// locked against itself.
func Open(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := db.Open(dsn)
	require.NoError(tb, err)

	sqlDB, err := gormDB.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(tb, db.Migrate(gormDB, false))
	tb.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}
