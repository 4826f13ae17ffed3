package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/meusistema/clientes/internal/data/db"
	types "github.com/meusistema/clientes/internal/domain"
	apphttp "github.com/meusistema/clientes/internal/http"
	httpMW "github.com/meusistema/clientes/internal/http/middleware"
	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *apphttp.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics

	limiter      *httpMW.RateLimiter
	shutdownOTel func(context.Context) error
}

// New loads the configuration and wires every component. Nothing listens until Run.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.NewWithLevel(logMode, os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if cfg.Log.Mode != logMode || cfg.Log.Level != os.Getenv("LOG_LEVEL") {
		if relog, err := logger.NewWithLevel(cfg.Log.Mode, cfg.Log.Level); err == nil {
			log.Sync()
			log = relog
		}
	}

	theDB, err := db.Open(cfg.DBConfig(), log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = db.Close(theDB)
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	shutdownOTel := observability.InitOTel(ctx, log, cfg.OtelConfig())

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.New()
	}

	clients := wireClients(log, cfg)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet, clients, metrics)
	handlerset := wireHandlers(log, cfg, serviceset)
	limiter := wireRateLimiter(log, cfg)
	server := wireServer(log, cfg, handlerset, limiter, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		Metrics:      metrics,
		limiter:      limiter,
		shutdownOTel: shutdownOTel,
	}, nil
}

// Run serves the API (and the background collectors) until ctx is cancelled,
// then drains in-flight requests within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Server.Addr())
		return a.Server.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancel()
		a.Log.Info("Shutting down server...")
		if err := a.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if a.Metrics != nil {
		if a.Cfg.Metrics.Addr != "" {
			g.Go(func() error { return a.Metrics.StartServer(gctx, a.Log, a.Cfg.Metrics.Addr) })
		}
		a.Metrics.StartDBCollector(gctx, a.Log, a.DB)
		a.Metrics.StartRedisCollector(gctx, a.Log, a.Cfg.Redis.Addr)
	}

	if a.limiter != nil {
		stop := make(chan struct{})
		g.Go(func() error {
			<-gctx.Done()
			close(stop)
			return nil
		})
		a.limiter.StartCleanup(time.Minute, stop)
	}

	if a.Clients.EntityBus != nil {
		err := a.Clients.EntityBus.StartForwarder(gctx, func(ev types.EntityEvent) {
			a.Log.Debug("Entity event observed", "entity", ev.Entity, "action", ev.Action, "id", ev.ID)
		})
		if err != nil {
			a.Log.Warn("Entity event forwarder not started", "error", err)
		}
	}

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.Clients.Close()
	if a.shutdownOTel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownOTel(ctx); err != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
