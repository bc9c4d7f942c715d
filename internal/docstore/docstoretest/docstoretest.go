// Package docstoretest opens throwaway document stores for tests.
package docstoretest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"miswa/internal/database"
	"miswa/internal/docstore"
)

// NewSQLite returns a GormStore on a private in-memory SQLite database.
func NewSQLite(t testing.TB) *docstore.GormStore {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:docstore_%s?mode=memory&cache=shared", name)
	db, err := database.Connect(dsn, nil)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	store, err := docstore.NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to migrate documents: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

// NewPostgres returns a GormStore in a fresh schema of the server at url.
// The schema is dropped when the test ends.
func NewPostgres(t testing.TB, url string) *docstore.GormStore {
	t.Helper()

	admin, err := database.Connect(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	schema := "docstore_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if err := admin.Exec("CREATE SCHEMA " + schema).Error; err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	db, err := database.Connect(url+sep+"search_path="+schema, nil)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	store, err := docstore.NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to migrate documents: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close(context.Background())
		_ = admin.Exec("DROP SCHEMA " + schema + " CASCADE").Error
		if sqlDB, err := admin.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store
}
