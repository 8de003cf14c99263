package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pennyhq/website"
	"github.com/pennyhq/website/internal/cache"
	"github.com/pennyhq/website/internal/config"
	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
	"github.com/pennyhq/website/internal/logging"
	"github.com/pennyhq/website/internal/web"
)

const memoryCacheJanitorInterval = time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:             logging.ParseLevel(cfg.LogLevel),
		SentryDSN:         cfg.SentryDSN,
		SentryEnvironment: cfg.SentryEnvironment,
	}, web.RequestIDExtractor())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := content.NewStore(contentSource(cfg), log)
	if err := store.Load(ctx); err != nil {
		// Degraded documents fall back; the site still serves.
		log.Error("initial content load incomplete", "error", err)
	}

	pages, err := pageCache(ctx, cfg)
	if err != nil {
		return err
	}
	if pages != nil {
		defer pages.Close() //nolint:errcheck
	}

	srv := web.New(cfg, log, store, pages, website.StaticFS())

	srv.LocaleChanged().Subscribe(func(ev locale.Changed) {
		log.Info("locale changed", "locale", string(ev.Locale))
	})

	log.Info("starting server",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"page_cache", pages != nil,
	)
	return srv.Run(ctx)
}

// contentSource picks where content documents come from: a remote URL, a
// local directory, or the embedded defaults.
func contentSource(cfg config.Config) content.Source {
	switch {
	case cfg.ContentURL != "":
		return content.NewHTTPSource(cfg.ContentURL, nil)
	case cfg.ContentDir != "":
		return content.NewFSSource(os.DirFS(cfg.ContentDir))
	default:
		return content.NewFSSource(website.ContentFS())
	}
}

// pageCache builds the configured page cache backend, or nil when caching is
// disabled.
func pageCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if cfg.PageCacheTTL <= 0 {
		return nil, nil
	}
	if cfg.RedisURL != "" {
		c, err := cache.NewRedis(ctx, cfg.RedisURL, "pages")
		if err != nil {
			return nil, fmt.Errorf("connecting page cache redis: %w", err)
		}
		return c, nil
	}
	return cache.NewMemory(memoryCacheJanitorInterval), nil
}
