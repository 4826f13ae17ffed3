package aluno

import (
	"context"
	"testing"

	"github.com/meusistema/clientes/internal/data/repos/testutil"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/pkg/pagination"
)

func TestAlunoRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAlunoRepo(db, testutil.Logger(t))
	ctx := context.Background()

	email := "ana@example.com"
	created, err := repo.Save(ctx, tx, &types.Aluno{Nome: "Ana", Email: &email})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("Save: expected an assigned id")
	}

	got, err := repo.FindByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.Nome != "Ana" || got.Email == nil || *got.Email != email {
		t.Fatalf("FindByID: unexpected result: %+v", got)
	}

	got.Nome = "Ana Maria"
	got.Email = nil
	if _, err := repo.Save(ctx, tx, got); err != nil {
		t.Fatalf("Save (update): %v", err)
	}
	reloaded, err := repo.FindByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("FindByID (reload): %v", err)
	}
	if reloaded.ID != created.ID || reloaded.Nome != "Ana Maria" || reloaded.Email != nil {
		t.Fatalf("Save (update): columns not replaced: %+v", reloaded)
	}

	exists, err := repo.ExistsByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("ExistsByID: %v", err)
	}
	if !exists {
		t.Fatalf("ExistsByID: expected true")
	}

	if err := repo.DeleteByID(ctx, tx, created.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if err := repo.DeleteByID(ctx, tx, created.ID); err != nil {
		t.Fatalf("DeleteByID (absent): %v", err)
	}

	missing, err := repo.FindByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("FindByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("FindByID (missing): expected nil, got %+v", missing)
	}
}

func TestAlunoRepoFindAll(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAlunoRepo(db, testutil.Logger(t))
	ctx := context.Background()

	before, err := repo.FindAll(ctx, tx, pagination.Of(0, 1))
	if err != nil {
		t.Fatalf("FindAll (before): %v", err)
	}

	first := testutil.SeedAluno(t, ctx, tx, "Carla")
	second := testutil.SeedAluno(t, ctx, tx, "Bruno")
	testutil.SeedAluno(t, ctx, tx, "Ana")

	page, err := repo.FindAll(ctx, tx, pagination.Of(0, 2))
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if page.TotalElements != before.TotalElements+3 {
		t.Fatalf("FindAll: expected total %d, got %d", before.TotalElements+3, page.TotalElements)
	}
	if before.TotalElements == 0 {
		if len(page.Content) != 2 || page.Content[0].ID != first.ID || page.Content[1].ID != second.ID {
			t.Fatalf("FindAll: expected insertion order, got %+v", page.Content)
		}
	}

	sorted, err := repo.FindAll(ctx, tx, pagination.Pageable{
		Page: 0,
		Size: 2000,
		Sort: []pagination.Order{{Field: "nome", Column: "nome", Direction: pagination.Asc}},
	})
	if err != nil {
		t.Fatalf("FindAll (sorted): %v", err)
	}
	for i := 1; i < len(sorted.Content); i++ {
		if sorted.Content[i-1].Nome > sorted.Content[i].Nome {
			t.Fatalf("FindAll (sorted): out of order at %d: %+v", i, sorted.Content)
		}
	}

	beyond, err := repo.FindAll(ctx, tx, pagination.Of(1000, 20))
	if err != nil {
		t.Fatalf("FindAll (beyond): %v", err)
	}
	if len(beyond.Content) != 0 || beyond.TotalElements != page.TotalElements {
		t.Fatalf("FindAll (beyond): unexpected page %+v", beyond)
	}
}
