package app

import (
	"github.com/meusistema/clientes/internal/clients/redis"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type Clients struct {
	EntityBus redis.EntityBus
}

func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	return Clients{
		EntityBus: redis.NewEntityBusOrNop(log, redis.Options{
			Addr:    cfg.Redis.Addr,
			Channel: cfg.Redis.Channel,
		}),
	}
}

func (c Clients) Close() {
	if c.EntityBus != nil {
		_ = c.EntityBus.Close()
	}
}
