package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"growsphere/database"
	"growsphere/pkg/store/repository"
	"growsphere/pkg/store/repositoryImp"
)

// NewTestDB opens a migrated SQLite database in a temp dir. It is closed
// when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func NewTestKV(t *testing.T) repository.KVRepository {
	t.Helper()
	return repositoryImp.New(NewTestDB(t))
}
