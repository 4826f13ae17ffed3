package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/meusistema/clientes/internal/data/db"
	"github.com/meusistema/clientes/internal/observability"
	"github.com/meusistema/clientes/internal/pkg/pagination"
	"github.com/meusistema/clientes/internal/platform/envutil"
	"github.com/meusistema/clientes/internal/platform/logger"
)

type Config struct {
	AppName string `yaml:"app_name" validate:"required"`
	Port    int    `yaml:"port" validate:"min=1,max=65535"`

	Log     LogConfig     `yaml:"log"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	Metrics MetricsConfig `yaml:"metrics"`
	Otel    OtelConfig    `yaml:"otel"`
	HTTP    HTTPConfig    `yaml:"http"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type DBConfig struct {
	Driver       string         `yaml:"driver" validate:"oneof=postgres sqlite"`
	Postgres     PostgresConfig `yaml:"postgres"`
	SQLitePath   string         `yaml:"sqlite_path" validate:"required_if=Driver sqlite"`
	MaxOpenConns int            `yaml:"max_open_conns" validate:"min=0"`
	MaxIdleConns int            `yaml:"max_idle_conns" validate:"min=0"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"min=1,max=65535"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

type RedisConfig struct {
	Addr    string `yaml:"addr"`
	Channel string `yaml:"channel"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	// Addr starts a dedicated listener; empty mounts /metrics on the API router.
	Addr string `yaml:"addr"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Environment string  `yaml:"environment"`
	Version     string  `yaml:"version"`
	Endpoint    string  `yaml:"endpoint"`
	Headers     string  `yaml:"headers"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio" validate:"min=0,max=1"`
}

type HTTPConfig struct {
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	RateLimitRPS       float64       `yaml:"rate_limit_rps" validate:"min=0"`
	RateLimitBurst     int           `yaml:"rate_limit_burst" validate:"min=0"`
	PageSizeDefault    int           `yaml:"page_size_default" validate:"min=1,ltefield=PageSizeMax"`
	PageSizeMax        int           `yaml:"page_size_max" validate:"min=1"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" validate:"min=0"`
}

func DefaultConfig() Config {
	return Config{
		AppName: "clientesApp",
		Port:    8080,
		Log:     LogConfig{Mode: "development"},
		DB: DBConfig{
			Driver: db.DriverPostgres,
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				User:    "postgres",
				Name:    "clientes",
				SSLMode: "disable",
			},
			SQLitePath:   "file:clientes.db?cache=shared",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		Redis: RedisConfig{Channel: "clientes.entities"},
		Otel:  OtelConfig{ServiceName: "clientes", SampleRatio: 0.1},
		HTTP: HTTPConfig{
			PageSizeDefault: pagination.DefaultSize,
			PageSizeMax:     pagination.MaxSize,
			ShutdownTimeout: 15 * time.Second,
		},
	}
}

// LoadConfig applies, in order: defaults, the YAML file named by CONFIG_FILE, and
// environment variables. The result is validated.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := DefaultConfig()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	applyEnv(&cfg, log)

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, log *logger.Logger) {
	seen := func(keys ...string) {
		for _, k := range keys {
			if _, ok := envutil.Lookup(k); ok {
				log.Debug("Config override from environment", "key", k)
			}
		}
	}
	seen("APP_NAME", "PORT", "LOG_MODE", "LOG_LEVEL", "DB_DRIVER", "POSTGRES_HOST", "POSTGRES_PORT",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_NAME", "POSTGRES_SSLMODE", "SQLITE_PATH",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "REDIS_ADDR", "REDIS_CHANNEL", "METRICS_ENABLED",
		"METRICS_ADDR", "OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_ENVIRONMENT", "OTEL_SERVICE_VERSION",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_HEADERS", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_SAMPLER_RATIO", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"PAGE_SIZE_DEFAULT", "PAGE_SIZE_MAX", "SHUTDOWN_TIMEOUT")

	cfg.AppName = envutil.String("APP_NAME", cfg.AppName)
	cfg.Port = envutil.Int("PORT", cfg.Port)
	cfg.Log.Mode = envutil.String("LOG_MODE", cfg.Log.Mode)
	cfg.Log.Level = strings.ToLower(envutil.String("LOG_LEVEL", cfg.Log.Level))

	cfg.DB.Driver = strings.ToLower(envutil.String("DB_DRIVER", cfg.DB.Driver))
	cfg.DB.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.DB.Postgres.Host)
	cfg.DB.Postgres.Port = envutil.Int("POSTGRES_PORT", cfg.DB.Postgres.Port)
	cfg.DB.Postgres.User = envutil.String("POSTGRES_USER", cfg.DB.Postgres.User)
	cfg.DB.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.DB.Postgres.Password)
	cfg.DB.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.DB.Postgres.Name)
	cfg.DB.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.DB.Postgres.SSLMode)
	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath)
	cfg.DB.MaxOpenConns = envutil.Int("DB_MAX_OPEN_CONNS", cfg.DB.MaxOpenConns)
	cfg.DB.MaxIdleConns = envutil.Int("DB_MAX_IDLE_CONNS", cfg.DB.MaxIdleConns)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Channel = envutil.String("REDIS_CHANNEL", cfg.Redis.Channel)

	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
	cfg.Metrics.Addr = envutil.String("METRICS_ADDR", cfg.Metrics.Addr)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.ServiceName = envutil.String("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	cfg.Otel.Environment = envutil.String("OTEL_ENVIRONMENT", cfg.Otel.Environment)
	cfg.Otel.Version = envutil.String("OTEL_SERVICE_VERSION", cfg.Otel.Version)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", cfg.Otel.Headers)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio)

	cfg.HTTP.CORSAllowedOrigins = envutil.CSV("CORS_ALLOWED_ORIGINS", cfg.HTTP.CORSAllowedOrigins)
	cfg.HTTP.RateLimitRPS = envutil.Float("RATE_LIMIT_RPS", cfg.HTTP.RateLimitRPS)
	cfg.HTTP.RateLimitBurst = envutil.Int("RATE_LIMIT_BURST", cfg.HTTP.RateLimitBurst)
	cfg.HTTP.PageSizeDefault = envutil.Int("PAGE_SIZE_DEFAULT", cfg.HTTP.PageSizeDefault)
	cfg.HTTP.PageSizeMax = envutil.Int("PAGE_SIZE_MAX", cfg.HTTP.PageSizeMax)
	cfg.HTTP.ShutdownTimeout = envutil.Duration("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)
}

func validateConfig(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }

func (c Config) DBConfig() db.Config {
	return db.Config{
		Driver: c.DB.Driver,
		Postgres: db.PostgresConfig{
			Host:     c.DB.Postgres.Host,
			Port:     c.DB.Postgres.Port,
			User:     c.DB.Postgres.User,
			Password: c.DB.Postgres.Password,
			Name:     c.DB.Postgres.Name,
			SSLMode:  c.DB.Postgres.SSLMode,
		},
		SQLitePath:   c.DB.SQLitePath,
		MaxOpenConns: c.DB.MaxOpenConns,
		MaxIdleConns: c.DB.MaxIdleConns,
	}
}

func (c Config) OtelConfig() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: c.Otel.ServiceName,
		Environment: c.Otel.Environment,
		Version:     c.Otel.Version,
		Endpoint:    c.Otel.Endpoint,
		Headers:     observability.ParseHeaders(c.Otel.Headers),
		Insecure:    c.Otel.Insecure,
		SampleRatio: c.Otel.SampleRatio,
	}
}
