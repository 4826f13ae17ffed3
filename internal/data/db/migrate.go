package db

import (
	"fmt"

	types "github.com/meusistema/clientes/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Aluno{},
		&types.Meta{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
