package services

import (
	"context"
	"time"

	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/platform/ctxutil"
	"github.com/meusistema/clientes/internal/platform/logger"
)

// EntityPublisher receives an event after every committed write.
type EntityPublisher interface {
	Publish(ctx context.Context, ev types.EntityEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, types.EntityEvent) error { return nil }

func orNop(p EntityPublisher) EntityPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// publish never fails the caller; the write has already been committed.
func publish(ctx context.Context, log *logger.Logger, p EntityPublisher, entity string, action types.EntityAction, id int64) {
	ev := types.EntityEvent{Entity: entity, Action: action, ID: id, At: time.Now().UTC()}
	if err := p.Publish(ctx, ev); err != nil {
		log.Warn("Entity event publish failed", append(ctxutil.LogFields(ctx), "entity", entity, "action", action, "id", id, "error", err)...)
	}
}
