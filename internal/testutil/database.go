// Package testutil provides test helpers and collaborator mocks shared across packages.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/the-income-must-flow/internal/storage"
)

// SetupTestDB creates a migrated SQLite store in a temp dir.
// It is closed automatically when the test ends.
//
// Example:
//
//	store := testutil.SetupTestDB(t)
//	err := store.AddIncome(ctx, &record)
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "income.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
