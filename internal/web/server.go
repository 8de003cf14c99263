// Package web is the HTTP face of the site: routing, locale resolution,
// rendering, the content API, and the locale-change notification flow.
package web

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/pennyhq/website/internal/broadcast"
	"github.com/pennyhq/website/internal/cache"
	"github.com/pennyhq/website/internal/config"
	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
	"github.com/pennyhq/website/internal/logging"
)

// Server wires the content store, page cache, and views behind an HTTP
// router.
type Server struct {
	cfg    config.Config
	log    *slog.Logger
	store  *content.Store
	pages  cache.Cache // nil disables page caching
	static fs.FS

	localeChanged *broadcast.Bus[locale.Changed]
	renderGroup   singleflight.Group

	router chi.Router
}

// New assembles the server. pages may be nil to disable the page cache;
// log may be nil to discard diagnostics.
func New(cfg config.Config, log *slog.Logger, store *content.Store, pages cache.Cache, static fs.FS) *Server {
	if log == nil {
		log = logging.Discard()
	}

	s := &Server{
		cfg:           cfg,
		log:           log,
		store:         store,
		pages:         pages,
		static:        static,
		localeChanged: broadcast.New[locale.Changed](),
	}
	s.router = s.routes()

	// A content reload invalidates every cached page.
	if pages != nil {
		store.Reloaded().Subscribe(func(content.Reloaded) {
			if err := pages.Clear(context.Background()); err != nil {
				log.Error("clearing page cache after reload", "error", err)
			}
		})
	}

	return s
}

// LocaleChanged exposes the bus fired after an explicit locale selection is
// persisted. Dispatched exactly once per change.
func (s *Server) LocaleChanged() *broadcast.Bus[locale.Changed] {
	return s.localeChanged
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.recoverer)
	r.Use(s.requestLogger)
	r.Use(s.resolveLocale)

	r.Get("/", s.handleHome)
	r.Post("/locale", s.handleLocaleSelect)
	r.Get("/partials/reviews", s.handleReviewsPartial)

	r.Get("/privacy", s.handleMarkdownPage("privacy"))
	r.Get("/terms", s.handleMarkdownPage("terms"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/translations/{locale}", s.handleAPITranslations)
		r.Get("/features/{locale}", s.handleAPIFeatures)
		r.Get("/reviews/{locale}", s.handleAPIReviews)
	})

	if s.cfg.ReloadToken != "" {
		r.Post("/admin/reload", s.handleReload)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(s.static)))

	return r
}

// staticHandler serves embedded assets with long-lived cache headers; the
// files only change with a deploy.
func staticHandler(fsys fs.FS) http.Handler {
	files := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}

// Run serves until ctx is canceled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.log.Info("shutting down", "timeout", s.cfg.ShutdownTimeout.String())
	return srv.Shutdown(shutdownCtx)
}
