package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/meusistema/clientes/internal/data/repos/testutil"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/pkg/pagination"
)

func TestMetaRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewMetaRepo(db, testutil.Logger(t))
	ctx := context.Background()

	valor, area := 10.0, "sales"
	created, err := repo.Save(ctx, tx, &types.Meta{Valor: &valor, Area: &area})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.FindByID(ctx, tx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 10.0, *got.Valor, 0.001)
	assert.Equal(t, "sales", *got.Area)

	exists, err := repo.ExistsByID(ctx, tx, created.ID+1000)
	require.NoError(t, err)
	assert.False(t, exists)

	before, err := repo.FindAll(ctx, tx, pagination.Of(0, 20))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, tx, created.ID+1000))
	after, err := repo.FindAll(ctx, tx, pagination.Of(0, 20))
	require.NoError(t, err)
	assert.Equal(t, before.TotalElements, after.TotalElements)

	require.NoError(t, repo.DeleteByID(ctx, tx, created.ID))
	after, err = repo.FindAll(ctx, tx, pagination.Of(0, 20))
	require.NoError(t, err)
	assert.Equal(t, before.TotalElements-1, after.TotalElements)
}

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestMetaRepoPropagatesStoreFaults(t *testing.T) {
	gdb, mock := mockDB(t)
	repo := NewMetaRepo(gdb, testutil.Logger(t))
	ctx := context.Background()
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT \* FROM "meta"`).WillReturnError(boom)
	_, err := repo.FindByID(ctx, nil, 1)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "meta"`).WillReturnError(boom)
	_, err = repo.ExistsByID(ctx, nil, 1)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "meta"`).WillReturnError(boom)
	_, err = repo.FindAll(ctx, nil, pagination.Of(0, 20))
	assert.ErrorIs(t, err, boom)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "meta"`).WillReturnError(boom)
	mock.ExpectRollback()
	_, err = repo.Save(ctx, nil, &types.Meta{})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}
