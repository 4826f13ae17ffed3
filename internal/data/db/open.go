package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/platform/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Driver       string
	Postgres     PostgresConfig
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
}

// Open connects to the configured driver and applies the pool limits.
func Open(cfg Config, logg *logger.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case DriverPostgres, "":
		var svc *PostgresService
		svc, err = NewPostgresService(cfg.Postgres, logg)
		if err == nil {
			db = svc.DB()
		}
	case DriverSQLite:
		db, err = OpenSQLite(cfg.SQLitePath, logg)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if driver != DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	return db, nil
}

// Close releases the underlying pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
