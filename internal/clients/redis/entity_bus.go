package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/platform/logger"
)

const DefaultChannel = "clientes.entities"

// EntityBus fans entity events out over redis pub/sub.
type EntityBus interface {
	Publish(ctx context.Context, ev types.EntityEvent) error
	StartForwarder(ctx context.Context, onEvent func(ev types.EntityEvent)) error
	Close() error
}

type Options struct {
	Addr    string
	Channel string
}

type entityBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewEntityBus connects to redis and pings it. An empty Addr is an error; use
// NewEntityBusOrNop when redis is optional.
func NewEntityBus(log *logger.Logger, opts Options) (EntityBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ch := strings.TrimSpace(opts.Channel)
	if ch == "" {
		ch = DefaultChannel
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &entityBus{
		log:     log.With("service", "RedisEntityBus"),
		rdb:     rdb,
		channel: ch,
	}, nil
}

// NewEntityBusOrNop falls back to a bus that drops everything when redis is not
// configured or not reachable.
func NewEntityBusOrNop(log *logger.Logger, opts Options) EntityBus {
	if strings.TrimSpace(opts.Addr) == "" {
		log.Info("REDIS_ADDR not set; entity events disabled")
		return NopBus{}
	}
	bus, err := NewEntityBus(log, opts)
	if err != nil {
		log.Warn("Redis unavailable; entity events disabled", "addr", opts.Addr, "error", err)
		return NopBus{}
	}
	return bus
}

func (b *entityBus) Publish(ctx context.Context, ev types.EntityEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis entity bus not initialized")
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *entityBus) StartForwarder(ctx context.Context, onEvent func(ev types.EntityEvent)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis entity bus not initialized")
	}
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				var ev types.EntityEvent
				if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
					b.log.Warn("bad entity event payload", "error", err)
					continue
				}
				onEvent(ev)
			}
		}
	}()
	return nil
}

func (b *entityBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

// NopBus accepts and discards events.
type NopBus struct{}

func (NopBus) Publish(context.Context, types.EntityEvent) error { return nil }

func (NopBus) StartForwarder(context.Context, func(types.EntityEvent)) error { return nil }

func (NopBus) Close() error { return nil }
