package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/pennyhq/website/internal/cache"
	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
	"github.com/pennyhq/website/internal/views"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	loc := localeFrom(r.Context())
	wide := r.URL.Query().Get("viewport") != "narrow"

	viewport := "wide"
	if !wide {
		viewport = "narrow"
	}

	s.renderPage(w, r, "home:"+string(loc)+":"+viewport, func() (templ.Component, error) {
		page := s.basePage(loc)
		return views.Layout(page, views.Home(s.store, loc, wide)), nil
	})
}

// handleLocaleSelect processes the language selector form. The selection is
// persisted and announced before the redirect, so the page rendered next
// already uses the new locale.
func (s *Server) handleLocaleSelect(w http.ResponseWriter, r *http.Request) {
	requested := r.FormValue("locale")

	loc, err := locale.Select(requested)
	if err != nil {
		s.log.WarnContext(r.Context(), "unsupported locale selected, using default",
			"requested", requested, "fallback", string(loc))
	}

	s.setLocaleCookie(w, loc)
	s.localeChanged.Publish(locale.Changed{Locale: loc})

	http.Redirect(w, r, localRedirectTarget(r.Referer()), http.StatusSeeOther)
}

// localRedirectTarget reduces a referer to a same-site rooted path,
// defaulting to the home page. Keeps the post-selection redirect from leaving
// the site.
func localRedirectTarget(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}

// handleReviewsPartial serves the marquee fragment alone. The client script
// requests it when a resize crosses the layout breakpoint.
func (s *Server) handleReviewsPartial(w http.ResponseWriter, r *http.Request) {
	loc := localeFrom(r.Context())
	wide := r.URL.Query().Get("viewport") != "narrow"

	reviews := s.store.ReviewsFor(loc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.ReviewMarquee(reviews, wide).Render(r.Context(), w); err != nil {
		s.log.ErrorContext(r.Context(), "rendering reviews partial", "error", err)
	}
}

// handleMarkdownPage builds a handler for one markdown-backed page such as
// the privacy policy. The body is fetched from the content source and
// rendered inside the shared layout.
func (s *Server) handleMarkdownPage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := localeFrom(r.Context())

		s.renderPage(w, r, "page:"+name+":"+string(loc), func() (templ.Component, error) {
			raw, err := s.store.Page(r.Context(), name)
			if err != nil {
				return nil, err
			}
			html, err := views.RenderMarkdown(raw)
			if err != nil {
				return nil, err
			}

			page := s.basePage(loc)
			page.Title = s.store.Lookup("pages."+name+".title", loc)
			return views.Layout(page, views.MarkdownPage(page.Title, html)), nil
		})
	}
}

// basePage assembles the layout data shared by every page.
func (s *Server) basePage(loc locale.Locale) views.Page {
	return views.Page{
		Locale:          string(loc),
		Title:           s.store.Lookup("meta.title", loc),
		MetaDescription: s.store.Lookup("meta.description", loc),
		Locales:         views.LocaleOptions(loc),
	}
}

// renderPage serves a full page through the page cache. Concurrent misses on
// the same key render once via singleflight; the rendered bytes are cached
// until the TTL passes or content reloads.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, key string, build func() (templ.Component, error)) {
	ctx := r.Context()

	if s.pages != nil {
		data, err := s.pages.Get(ctx, key)
		if err == nil {
			writeHTML(w, data)
			return
		}
		if !errors.Is(err, cache.ErrNotFound) {
			s.log.WarnContext(ctx, "page cache read failed", "key", key, "error", err)
		}
	}

	v, err, _ := s.renderGroup.Do(key, func() (any, error) {
		c, err := build()
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := c.Render(ctx, &buf); err != nil {
			return nil, err
		}
		data := buf.Bytes()

		if s.pages != nil {
			if err := s.pages.Set(ctx, key, data, s.cfg.PageCacheTTL); err != nil {
				s.log.WarnContext(ctx, "page cache write failed", "key", key, "error", err)
			}
		}
		return data, nil
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	writeHTML(w, v.([]byte))
}

func writeHTML(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong."
	if errors.Is(err, content.ErrDocumentNotFound) {
		status = http.StatusNotFound
		message = "Page not found."
	}

	s.log.ErrorContext(r.Context(), "rendering page failed",
		"path", r.URL.Path, "status", status, "error", err)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := views.ErrorPage(status, message).Render(r.Context(), w); err != nil {
		s.log.ErrorContext(r.Context(), "rendering error page", "error", err)
	}
}
