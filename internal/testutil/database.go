// Package testutil provides a throwaway database and entity factories for
// integration tests.
package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gamestore-backend/internal/config"
	"gamestore-backend/internal/database"
	"gamestore-backend/internal/models"

	"github.com/stretchr/testify/require"
)

// Open connects to a migrated sqlite database file at path with foreign keys
// enforced.
func Open(path string) (*database.Database, error) {
	return database.Connect(config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		URL:             fmt.Sprintf("file:%s?_foreign_keys=on", path),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    5 * time.Second,
		AutoMigrate:     true,
	})
}

// NewDatabase opens a database private to the calling test. It is closed when
// the test finishes.
func NewDatabase(t testing.TB) *database.Database {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "gamestore_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CleanDB removes every game and console, children first.
func CleanDB(t testing.TB, db *database.Database) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Where("1 = 1").Delete(&models.Game{}).Error)
	require.NoError(t, db.WithContext(ctx).Where("1 = 1").Delete(&models.Console{}).Error)
}
