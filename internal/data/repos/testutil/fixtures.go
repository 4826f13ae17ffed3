package testutil

import (
	"context"
	"testing"

	types "github.com/meusistema/clientes/internal/domain"
	"gorm.io/gorm"
)

func SeedAluno(tb testing.TB, ctx context.Context, tx *gorm.DB, nome string) *types.Aluno {
	tb.Helper()
	a := &types.Aluno{Nome: nome}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed aluno: %v", err)
	}
	return a
}

func SeedMeta(tb testing.TB, ctx context.Context, tx *gorm.DB, valor float64, area string) *types.Meta {
	tb.Helper()
	m := &types.Meta{Valor: &valor, Area: &area}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed meta: %v", err)
	}
	return m
}
