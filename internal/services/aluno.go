package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/data/repos"
	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/pkg/dbctx"
	pkgerrors "github.com/meusistema/clientes/internal/pkg/errors"
	"github.com/meusistema/clientes/internal/pkg/pagination"
	"github.com/meusistema/clientes/internal/platform/ctxutil"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type AlunoService interface {
	Save(dbc dbctx.Context, aluno *types.Aluno) (*types.Aluno, error)
	Update(dbc dbctx.Context, aluno *types.Aluno) (*types.Aluno, error)
	// PartialUpdate returns pkgerrors.ErrNotFound when id does not exist.
	PartialUpdate(dbc dbctx.Context, id int64, patch types.AlunoInput) (*types.Aluno, error)
	FindAll(dbc dbctx.Context, p pagination.Pageable) (*pagination.Page[types.Aluno], error)
	FindOne(dbc dbctx.Context, id int64) (*types.Aluno, error)
	Exists(dbc dbctx.Context, id int64) (bool, error)
	Delete(dbc dbctx.Context, id int64) error
}

type alunoService struct {
	db        *gorm.DB
	log       *logger.Logger
	alunoRepo repos.AlunoRepo
	events    EntityPublisher
	metrics   *observability.Metrics
}

func NewAlunoService(
	db *gorm.DB,
	baseLog *logger.Logger,
	alunoRepo repos.AlunoRepo,
	events EntityPublisher,
	metrics *observability.Metrics,
) AlunoService {
	serviceLog := baseLog.With("service", "AlunoService")
	return &alunoService{
		db:        db,
		log:       serviceLog,
		alunoRepo: alunoRepo,
		events:    orNop(events),
		metrics:   metrics,
	}
}

func (s *alunoService) Save(dbc dbctx.Context, aluno *types.Aluno) (*types.Aluno, error) {
	s.log.Debug("Request to save Aluno", append(ctxutil.LogFields(dbc.Ctx), "id", aluno.ID)...)
	saved, err := s.alunoRepo.Save(dbc.Ctx, dbc.Tx, aluno)
	s.metrics.ObserveEntityOp(types.EntityAluno, "save", err, false)
	if err != nil {
		return nil, err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityAluno, types.ActionCreated, saved.ID)
	return saved, nil
}

func (s *alunoService) Update(dbc dbctx.Context, aluno *types.Aluno) (*types.Aluno, error) {
	s.log.Debug("Request to update Aluno", append(ctxutil.LogFields(dbc.Ctx), "id", aluno.ID)...)
	saved, err := s.alunoRepo.Save(dbc.Ctx, dbc.Tx, aluno)
	s.metrics.ObserveEntityOp(types.EntityAluno, "update", err, false)
	if err != nil {
		return nil, err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityAluno, types.ActionUpdated, saved.ID)
	return saved, nil
}

func (s *alunoService) PartialUpdate(dbc dbctx.Context, id int64, patch types.AlunoInput) (*types.Aluno, error) {
	s.log.Debug("Request to partially update Aluno", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)

	merge := func(tx *gorm.DB) (*types.Aluno, error) {
		existing, err := s.alunoRepo.FindByID(dbc.Ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, pkgerrors.ErrNotFound
		}
		patch.ApplyTo(existing)
		return s.alunoRepo.Save(dbc.Ctx, tx, existing)
	}

	var (
		merged *types.Aluno
		err    error
	)
	if dbc.Tx != nil {
		merged, err = merge(dbc.Tx)
	} else {
		err = s.db.WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
			m, txErr := merge(tx)
			merged = m
			return txErr
		})
	}
	notFound := errors.Is(err, pkgerrors.ErrNotFound)
	s.metrics.ObserveEntityOp(types.EntityAluno, "partial_update", err, notFound)
	if err != nil {
		if notFound {
			return nil, err
		}
		return nil, fmt.Errorf("partial update aluno %d: %w", id, err)
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityAluno, types.ActionUpdated, merged.ID)
	return merged, nil
}

func (s *alunoService) FindAll(dbc dbctx.Context, p pagination.Pageable) (*pagination.Page[types.Aluno], error) {
	s.log.Debug("Request to get all Alunos", append(ctxutil.LogFields(dbc.Ctx), "page", p.Page, "size", p.Size)...)
	page, err := s.alunoRepo.FindAll(dbc.Ctx, dbc.Tx, p)
	s.metrics.ObserveEntityOp(types.EntityAluno, "find_all", err, false)
	return page, err
}

func (s *alunoService) FindOne(dbc dbctx.Context, id int64) (*types.Aluno, error) {
	s.log.Debug("Request to get Aluno", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)
	aluno, err := s.alunoRepo.FindByID(dbc.Ctx, dbc.Tx, id)
	s.metrics.ObserveEntityOp(types.EntityAluno, "find_one", err, err == nil && aluno == nil)
	if err != nil {
		return nil, err
	}
	if aluno == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return aluno, nil
}

func (s *alunoService) Exists(dbc dbctx.Context, id int64) (bool, error) {
	return s.alunoRepo.ExistsByID(dbc.Ctx, dbc.Tx, id)
}

func (s *alunoService) Delete(dbc dbctx.Context, id int64) error {
	s.log.Debug("Request to delete Aluno", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)
	err := s.alunoRepo.DeleteByID(dbc.Ctx, dbc.Tx, id)
	s.metrics.ObserveEntityOp(types.EntityAluno, "delete", err, false)
	if err != nil {
		return err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityAluno, types.ActionDeleted, id)
	return nil
}
