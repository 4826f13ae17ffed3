package app

import (
	apphttp "github.com/meusistema/clientes/internal/http"
	"github.com/meusistema/clientes/internal/http/handlers"
	httpMW "github.com/meusistema/clientes/internal/http/middleware"
	"github.com/meusistema/clientes/internal/http/response"
	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type Handlers struct {
	Aluno  *handlers.AlunoHandler
	Meta   *handlers.MetaHandler
	Health *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	rc := handlers.ResourceConfig{
		Alerts:          response.NewAlerts(cfg.AppName),
		DefaultPageSize: cfg.HTTP.PageSizeDefault,
		MaxPageSize:     cfg.HTTP.PageSizeMax,
	}
	return Handlers{
		Aluno:  handlers.NewAlunoHandler(log, serviceset.Aluno, rc),
		Meta:   handlers.NewMetaHandler(log, serviceset.Meta, rc),
		Health: handlers.NewHealthHandler(),
	}
}

// wireRateLimiter returns nil when RATE_LIMIT_RPS is unset.
func wireRateLimiter(log *logger.Logger, cfg Config) *httpMW.RateLimiter {
	if cfg.HTTP.RateLimitRPS <= 0 {
		return nil
	}
	burst := cfg.HTTP.RateLimitBurst
	if burst <= 0 {
		burst = int(cfg.HTTP.RateLimitRPS) + 1
	}
	log.Info("Rate limiting /api", "rps", cfg.HTTP.RateLimitRPS, "burst", burst)
	return httpMW.NewRateLimiter(cfg.HTTP.RateLimitRPS, burst, log)
}

func wireServer(log *logger.Logger, cfg Config, handlerset Handlers, limiter *httpMW.RateLimiter, metrics *observability.Metrics) *apphttp.Server {
	log.Info("Wiring router...")
	return apphttp.NewServer(cfg.Addr(), apphttp.RouterConfig{
		Log:            log,
		ServiceName:    cfg.Otel.ServiceName,
		TracingEnabled: cfg.Otel.Enabled,
		CORSOrigins:    cfg.HTTP.CORSAllowedOrigins,
		RateLimiter:    limiter,
		Metrics:        metrics,
		ExposeMetrics:  cfg.Metrics.Addr == "",
		AlunoHandler:   handlerset.Aluno,
		MetaHandler:    handlerset.Meta,
		HealthHandler:  handlerset.Health,
	})
}
