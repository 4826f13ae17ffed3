package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/platform/logger"
)

// OpenSQLite opens a sqlite database at path. Use "file::memory:?cache=shared" or a
// "file:<name>?mode=memory&cache=shared" DSN for a throwaway database.
func OpenSQLite(path string, logg *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig(logg))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %q: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serialises writers; one connection avoids "database is locked".
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
