package db

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// SetupTestDB returns a fresh, migrated and seeded in-memory database that is
// closed when the test ends.
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	name = fmt.Sprintf("%s_%d", name, testDBCounter.Add(1))

	db, err := OpenSQLiteInMemory(name)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			t.Errorf("failed to get underlying *sql.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	})

	if err := Prepare(db); err != nil {
		t.Fatalf("failed to prepare test database: %v", err)
	}

	return db
}
