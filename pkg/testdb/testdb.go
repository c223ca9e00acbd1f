// Package testdb opens a migrated in-memory sqlite store for tests.
package testdb

import (
	"testing"

	"pos-backend/configs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a fresh store. A single connection keeps every query on the same
// in-memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Break closes the underlying connection pool so every later query fails.
func Break(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.Close()
}

// FailCreatesOn makes every insert into table fail.
func FailCreatesOn(t *testing.T, db *gorm.DB, table string) {
	t.Helper()
	err := db.Callback().Create().Before("gorm:create").Register("testdb:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(errFailure)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

type failure struct{}

func (failure) Error() string { return "injected store failure" }

var errFailure error = failure{}
