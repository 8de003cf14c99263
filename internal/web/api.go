package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
)

// reviewResponse is the API shape of one localized review.
type reviewResponse struct {
	ID               string `json:"id"`
	Author           string `json:"author"`
	Date             string `json:"date"`
	Rating           int    `json:"rating"`
	OriginalLanguage string `json:"originalLanguage"`
	Title            string `json:"title"`
	Text             string `json:"text"`
}

// apiLocale validates the {locale} URL parameter. Unknown codes are a 404,
// not a silent fallback: API clients asked for that locale specifically.
func (s *Server) apiLocale(w http.ResponseWriter, r *http.Request) (locale.Locale, bool) {
	code := chi.URLParam(r, "locale")
	loc, err := locale.Select(code)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unsupported locale: " + code})
		return loc, false
	}
	return loc, true
}

func (s *Server) handleAPITranslations(w http.ResponseWriter, r *http.Request) {
	loc, ok := s.apiLocale(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.store.TranslationsFor(loc))
}

func (s *Server) handleAPIFeatures(w http.ResponseWriter, r *http.Request) {
	loc, ok := s.apiLocale(w, r)
	if !ok {
		return
	}

	features := s.store.FeaturesFor(loc)
	if features == nil {
		features = []content.Feature{}
	}
	writeJSON(w, http.StatusOK, features)
}

func (s *Server) handleAPIReviews(w http.ResponseWriter, r *http.Request) {
	loc, ok := s.apiLocale(w, r)
	if !ok {
		return
	}

	localized := s.store.ReviewsFor(loc)
	out := make([]reviewResponse, 0, len(localized))
	for _, lr := range localized {
		out = append(out, reviewResponse{
			ID:               lr.Review.ID,
			Author:           lr.Review.Author,
			Date:             lr.Review.Date,
			Rating:           lr.Review.Rating,
			OriginalLanguage: lr.Review.OriginalLanguage,
			Title:            lr.Title,
			Text:             lr.Text,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleReload re-fetches the content documents. Guarded by a bearer token;
// the route is only mounted when one is configured.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.ReloadToken)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if err := s.store.Reload(r.Context()); err != nil {
		// Partial failures degrade the affected document but the site keeps
		// serving; the operator still needs to know.
		s.log.ErrorContext(r.Context(), "content reload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
