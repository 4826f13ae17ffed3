package aluno

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/data/repos/query"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/pkg/pagination"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type AlunoRepo interface {
	FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Aluno, error)
	Save(ctx context.Context, tx *gorm.DB, aluno *types.Aluno) (*types.Aluno, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id int64) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error
	FindAll(ctx context.Context, tx *gorm.DB, p pagination.Pageable) (*pagination.Page[types.Aluno], error)
}

type alunoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlunoRepo(db *gorm.DB, baseLog *logger.Logger) AlunoRepo {
	repoLog := baseLog.With("repo", "AlunoRepo")
	return &alunoRepo{db: db, log: repoLog}
}

func (r *alunoRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *alunoRepo) FindByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Aluno, error) {
	var rows []*types.Aluno
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find aluno %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Save inserts when the id is zero and otherwise rewrites every column.
func (r *alunoRepo) Save(ctx context.Context, tx *gorm.DB, aluno *types.Aluno) (*types.Aluno, error) {
	if aluno == nil {
		return nil, fmt.Errorf("save aluno: nil entity")
	}
	if err := r.conn(tx).WithContext(ctx).Save(aluno).Error; err != nil {
		return nil, fmt.Errorf("save aluno: %w", err)
	}
	return aluno, nil
}

func (r *alunoRepo) ExistsByID(ctx context.Context, tx *gorm.DB, id int64) (bool, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).
		Model(&types.Aluno{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("exists aluno %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *alunoRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id int64) error {
	res := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Aluno{})
	if res.Error != nil {
		return fmt.Errorf("delete aluno %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Debug("Delete of absent aluno ignored", "id", id)
	}
	return nil
}

func (r *alunoRepo) FindAll(ctx context.Context, tx *gorm.DB, p pagination.Pageable) (*pagination.Page[types.Aluno], error) {
	page, err := query.FindPage[types.Aluno](ctx, r.conn(tx), p)
	if err != nil {
		return nil, fmt.Errorf("list alunos: %w", err)
	}
	return page, nil
}
