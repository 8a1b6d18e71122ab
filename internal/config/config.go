package config

import (
	"fmt"
	"strings"
	"time"

	"barbercrm/internal/tracking"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAppEnv            = "dev"
	defaultHTTPAddr          = ":8080"
	defaultDatabaseURL       = "barbercrm.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTTTL            = "72h"
	defaultLogLevel          = "info"
	defaultDashboardCacheTTL = "30s"
	defaultCORSOrigins       = "*"
	defaultBreakerFailures   = 3
	defaultBreakerTimeout    = "30s"
	defaultHistoryLimit      = 200
)

type Config struct {
	AppEnv             string
	HTTPAddr           string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	LogLevel           string
	RedisURL           string
	DashboardCacheTTL  time.Duration
	CORSAllowedOrigins []string
	MetricsEnabled     bool
	GoalOverrides      map[string]int
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	HistoryLimit       int
}

var envKeys = map[string]string{
	"app_env":              "APP_ENV",
	"http_addr":            "HTTP_ADDR",
	"database_url":         "DATABASE_URL",
	"jwt_secret":           "JWT_SECRET",
	"jwt_ttl":              "JWT_TTL",
	"log_level":            "LOG_LEVEL",
	"redis_url":            "REDIS_URL",
	"dashboard_cache_ttl":  "DASHBOARD_CACHE_TTL",
	"cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
	"metrics_enabled":      "METRICS_ENABLED",
	"goal_overrides":       "GOAL_OVERRIDES",
	"breaker_max_failures": "BREAKER_MAX_FAILURES",
	"breaker_open_timeout": "BREAKER_OPEN_TIMEOUT",
	"history_limit":        "HISTORY_LIMIT",
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("app_env", defaultAppEnv)
	v.SetDefault("http_addr", defaultHTTPAddr)
	v.SetDefault("database_url", defaultDatabaseURL)
	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("jwt_ttl", defaultJWTTTL)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("dashboard_cache_ttl", defaultDashboardCacheTTL)
	v.SetDefault("cors_allowed_origins", defaultCORSOrigins)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("breaker_max_failures", defaultBreakerFailures)
	v.SetDefault("breaker_open_timeout", defaultBreakerTimeout)
	v.SetDefault("history_limit", defaultHistoryLimit)

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
	// older deployments set ENV instead of APP_ENV
	_ = v.BindEnv("app_env", "APP_ENV", "ENV")
	return v
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppEnv:         strings.ToLower(strings.TrimSpace(v.GetString("app_env"))),
		HTTPAddr:       strings.TrimSpace(v.GetString("http_addr")),
		DatabaseURL:    strings.TrimSpace(v.GetString("database_url")),
		JWTSecret:      strings.TrimSpace(v.GetString("jwt_secret")),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		RedisURL:       strings.TrimSpace(v.GetString("redis_url")),
		MetricsEnabled: v.GetBool("metrics_enabled"),
		HistoryLimit:   v.GetInt("history_limit"),
	}

	var err error
	if cfg.JWTTTL, err = parseDuration(v, "jwt_ttl"); err != nil {
		return nil, err
	}
	if cfg.DashboardCacheTTL, err = parseDuration(v, "dashboard_cache_ttl"); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = parseDuration(v, "breaker_open_timeout"); err != nil {
		return nil, err
	}

	failures := v.GetInt("breaker_max_failures")
	if failures <= 0 {
		return nil, fmt.Errorf("BREAKER_MAX_FAILURES must be > 0")
	}
	cfg.BreakerMaxFailures = uint32(failures)

	for _, o := range strings.Split(v.GetString("cors_allowed_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	cfg.GoalOverrides, err = tracking.ParseOverrides(v.GetString("goal_overrides"))
	if err != nil {
		return nil, fmt.Errorf("invalid GOAL_OVERRIDES: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DashboardCacheTTL < 0 {
		return fmt.Errorf("DASHBOARD_CACHE_TTL must be >= 0")
	}
	if cfg.BreakerOpenTimeout <= 0 {
		return fmt.Errorf("BREAKER_OPEN_TIMEOUT must be > 0")
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("HISTORY_LIMIT must be >= 0")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if cfg.IsProdLike() {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if len(cfg.JWTSecret) < 32 {
			return fmt.Errorf("in prod/release JWT_SECRET must be at least 32 characters")
		}
		for _, o := range cfg.CORSAllowedOrigins {
			if o == "*" {
				return fmt.Errorf("in prod/release CORS_ALLOWED_ORIGINS must list explicit origins")
			}
		}
	}

	return nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	value := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", envKeys[key], value, err)
	}
	return d, nil
}
