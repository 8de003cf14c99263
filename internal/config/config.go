// Package config loads application configuration from the environment.
// A .env file is honored in development; real environment variables win.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`

	// Environment names the deployment environment.
	Environment string `env:"APP_ENV" envDefault:"development"`

	// LogLevel is the minimum stdout log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ContentDir overrides the embedded content documents with a local
	// directory when set.
	ContentDir string `env:"CONTENT_DIR"`

	// ContentURL loads content documents from a remote base URL when set.
	// Takes precedence over ContentDir.
	ContentURL string `env:"CONTENT_URL"`

	// LocaleCookie is the name of the preference cookie.
	LocaleCookie string `env:"LOCALE_COOKIE" envDefault:"penny_locale"`

	// LocaleCookieMaxAge is how long the preference persists.
	LocaleCookieMaxAge time.Duration `env:"LOCALE_COOKIE_MAX_AGE" envDefault:"8760h"`

	// PageCacheTTL is how long rendered pages are cached. Zero disables
	// the page cache.
	PageCacheTTL time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`

	// RedisURL switches the page cache to Redis when set.
	RedisURL string `env:"REDIS_URL"`

	// ReloadToken guards the content reload endpoint. Empty disables it.
	ReloadToken string `env:"RELOAD_TOKEN"`

	// SentryDSN enables Sentry error reporting when set.
	SentryDSN string `env:"SENTRY_DSN"`

	// SentryEnvironment tags Sentry events.
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
