package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/platform/logger"
)

func TestNewEntityBusOrNopWithoutAddr(t *testing.T) {
	bus := NewEntityBusOrNop(logger.Nop(), Options{})
	_, ok := bus.(NopBus)
	assert.True(t, ok)
	assert.NoError(t, bus.Publish(context.Background(), types.EntityEvent{Entity: "meta"}))
	assert.NoError(t, bus.Close())
}

func TestNewEntityBusOrNopUnreachable(t *testing.T) {
	bus := NewEntityBusOrNop(logger.Nop(), Options{Addr: "127.0.0.1:1"})
	_, ok := bus.(NopBus)
	assert.True(t, ok)
}

func TestEntityBusRoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}

	bus, err := NewEntityBus(logger.Nop(), Options{Addr: addr, Channel: "clientes.test." + t.Name()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan types.EntityEvent, 1)
	require.NoError(t, bus.StartForwarder(ctx, func(ev types.EntityEvent) { got <- ev }))

	sent := types.EntityEvent{Entity: types.EntityMeta, Action: types.ActionCreated, ID: 7, At: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, bus.Publish(ctx, sent))

	select {
	case ev := <-got:
		assert.Equal(t, sent.Entity, ev.Entity)
		assert.Equal(t, sent.Action, ev.Action)
		assert.Equal(t, sent.ID, ev.ID)
		assert.True(t, sent.At.Equal(ev.At))
	case <-ctx.Done():
		t.Fatal("timed out waiting for entity event")
	}
}
