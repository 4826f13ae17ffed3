package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/meusistema/clientes/internal/http/handlers"
	httpMW "github.com/meusistema/clientes/internal/http/middleware"
	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string
	RateLimiter    *httpMW.RateLimiter
	// Metrics instruments requests; ExposeMetrics also mounts GET /metrics.
	Metrics       *observability.Metrics
	ExposeMetrics bool

	AlunoHandler  *httpH.AlunoHandler
	MetaHandler   *httpH.MetaHandler
	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		serviceName := cfg.ServiceName
		if serviceName == "" {
			serviceName = "clientes"
		}
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.ExposeMetrics && cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Handler())
	}
	{
		if cfg.AlunoHandler != nil {
			api.POST("/alunos", cfg.AlunoHandler.Create)
			api.PUT("/alunos/:id", cfg.AlunoHandler.Update)
			api.PATCH("/alunos/:id", cfg.AlunoHandler.PartialUpdate)
			api.GET("/alunos", cfg.AlunoHandler.List)
			api.GET("/alunos/:id", cfg.AlunoHandler.Get)
			api.DELETE("/alunos/:id", cfg.AlunoHandler.Delete)
		}

		if cfg.MetaHandler != nil {
			api.POST("/metas", cfg.MetaHandler.Create)
			api.PUT("/metas/:id", cfg.MetaHandler.Update)
			api.PATCH("/metas/:id", cfg.MetaHandler.PartialUpdate)
			api.GET("/metas", cfg.MetaHandler.List)
			api.GET("/metas/:id", cfg.MetaHandler.Get)
			api.DELETE("/metas/:id", cfg.MetaHandler.Delete)
		}
	}

	return r
}
