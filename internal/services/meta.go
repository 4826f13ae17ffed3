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

type MetaService interface {
	Save(dbc dbctx.Context, meta *types.Meta) (*types.Meta, error)
	Update(dbc dbctx.Context, meta *types.Meta) (*types.Meta, error)
	// PartialUpdate returns pkgerrors.ErrNotFound when id does not exist.
	PartialUpdate(dbc dbctx.Context, id int64, patch types.MetaInput) (*types.Meta, error)
	FindAll(dbc dbctx.Context, p pagination.Pageable) (*pagination.Page[types.Meta], error)
	FindOne(dbc dbctx.Context, id int64) (*types.Meta, error)
	Exists(dbc dbctx.Context, id int64) (bool, error)
	Delete(dbc dbctx.Context, id int64) error
}

type metaService struct {
	db       *gorm.DB
	log      *logger.Logger
	metaRepo repos.MetaRepo
	events   EntityPublisher
	metrics  *observability.Metrics
}

func NewMetaService(
	db *gorm.DB,
	baseLog *logger.Logger,
	metaRepo repos.MetaRepo,
	events EntityPublisher,
	metrics *observability.Metrics,
) MetaService {
	serviceLog := baseLog.With("service", "MetaService")
	return &metaService{
		db:       db,
		log:      serviceLog,
		metaRepo: metaRepo,
		events:   orNop(events),
		metrics:  metrics,
	}
}

func (s *metaService) Save(dbc dbctx.Context, meta *types.Meta) (*types.Meta, error) {
	s.log.Debug("Request to save Meta", append(ctxutil.LogFields(dbc.Ctx), "meta", meta)...)
	saved, err := s.metaRepo.Save(dbc.Ctx, dbc.Tx, meta)
	s.metrics.ObserveEntityOp(types.EntityMeta, "save", err, false)
	if err != nil {
		return nil, err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityMeta, types.ActionCreated, saved.ID)
	return saved, nil
}

func (s *metaService) Update(dbc dbctx.Context, meta *types.Meta) (*types.Meta, error) {
	s.log.Debug("Request to update Meta", append(ctxutil.LogFields(dbc.Ctx), "meta", meta)...)
	saved, err := s.metaRepo.Save(dbc.Ctx, dbc.Tx, meta)
	s.metrics.ObserveEntityOp(types.EntityMeta, "update", err, false)
	if err != nil {
		return nil, err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityMeta, types.ActionUpdated, saved.ID)
	return saved, nil
}

func (s *metaService) PartialUpdate(dbc dbctx.Context, id int64, patch types.MetaInput) (*types.Meta, error) {
	s.log.Debug("Request to partially update Meta", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)

	merge := func(tx *gorm.DB) (*types.Meta, error) {
		existing, err := s.metaRepo.FindByID(dbc.Ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, pkgerrors.ErrNotFound
		}
		patch.ApplyTo(existing)
		return s.metaRepo.Save(dbc.Ctx, tx, existing)
	}

	var (
		merged *types.Meta
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
	s.metrics.ObserveEntityOp(types.EntityMeta, "partial_update", err, notFound)
	if err != nil {
		if notFound {
			return nil, err
		}
		return nil, fmt.Errorf("partial update meta %d: %w", id, err)
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityMeta, types.ActionUpdated, merged.ID)
	return merged, nil
}

func (s *metaService) FindAll(dbc dbctx.Context, p pagination.Pageable) (*pagination.Page[types.Meta], error) {
	s.log.Debug("Request to get all Metas", append(ctxutil.LogFields(dbc.Ctx), "page", p.Page, "size", p.Size)...)
	page, err := s.metaRepo.FindAll(dbc.Ctx, dbc.Tx, p)
	s.metrics.ObserveEntityOp(types.EntityMeta, "find_all", err, false)
	return page, err
}

func (s *metaService) FindOne(dbc dbctx.Context, id int64) (*types.Meta, error) {
	s.log.Debug("Request to get Meta", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)
	meta, err := s.metaRepo.FindByID(dbc.Ctx, dbc.Tx, id)
	s.metrics.ObserveEntityOp(types.EntityMeta, "find_one", err, err == nil && meta == nil)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, pkgerrors.ErrNotFound
	}
	return meta, nil
}

func (s *metaService) Exists(dbc dbctx.Context, id int64) (bool, error) {
	return s.metaRepo.ExistsByID(dbc.Ctx, dbc.Tx, id)
}

func (s *metaService) Delete(dbc dbctx.Context, id int64) error {
	s.log.Debug("Request to delete Meta", append(ctxutil.LogFields(dbc.Ctx), "id", id)...)
	err := s.metaRepo.DeleteByID(dbc.Ctx, dbc.Tx, id)
	s.metrics.ObserveEntityOp(types.EntityMeta, "delete", err, false)
	if err != nil {
		return err
	}
	publish(dbc.Ctx, s.log, s.events, types.EntityMeta, types.ActionDeleted, id)
	return nil
}
