package testutil

import (
	"path/filepath"
	"testing"

	"cricket/database"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB creates a temporary SQLite database with the schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open("sqlite", dbPath, logger.Silent)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
