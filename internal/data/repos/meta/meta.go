package meta

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/data/repos/query"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/pkg/pagination"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type MetaRepo interface {
	FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Meta, error)
	Save(ctx context.Context, tx *gorm.DB, meta *types.Meta) (*types.Meta, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id int64) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error
	FindAll(ctx context.Context, tx *gorm.DB, p pagination.Pageable) (*pagination.Page[types.Meta], error)
}

type metaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetaRepo(db *gorm.DB, baseLog *logger.Logger) MetaRepo {
	repoLog := baseLog.With("repo", "MetaRepo")
	return &metaRepo{db: db, log: repoLog}
}

func (r *metaRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *metaRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Meta, error) {
	var rows []*types.Meta
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find meta %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Save inserts when the id is zero and otherwise rewrites every column.
func (r *metaRepo) Save(ctx context.Context, tx *gorm.DB, meta *types.Meta) (*types.Meta, error) {
	if meta == nil {
		return nil, fmt.Errorf("save meta: nil entity")
	}
	if err := r.conn(tx).WithContext(ctx).Save(meta).Error; err != nil {
		return nil, fmt.Errorf("save meta: %w", err)
	}
	return meta, nil
}

func (r *metaRepo) ExistsByID(ctx context.Context, tx *gorm.DB, id int64) (bool, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.Meta{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("exists meta %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *metaRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error {
	res := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Meta{})
	if res.Error != nil {
		return fmt.Errorf("delete meta %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Debug("Delete of absent meta ignored", "id", id)
	}
	return nil
}

func (r *metaRepo) FindAll(ctx context.Context, tx *gorm.DB, p pagination.Pageable) (*pagination.Page[types.Meta], error) {
	page, err := query.FindPage[types.Meta](ctx, r.conn(tx), p)
	if err != nil {
		return nil, fmt.Errorf("list metas: %w", err)
	}
	return page, nil
}
