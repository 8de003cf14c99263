package web

import (
	"context"
	"net/http"

	"github.com/pennyhq/website/internal/locale"
)

type localeKey struct{}

// localeFrom returns the locale resolved for the request. The resolveLocale
// middleware runs on every route, so the fallback only matters for handlers
// exercised outside the router.
func localeFrom(ctx context.Context) locale.Locale {
	if l, ok := ctx.Value(localeKey{}).(locale.Locale); ok {
		return l
	}
	return locale.Default
}

// resolveLocale determines the active locale for the request and stores it
// in the context. Precedence: explicit ?lang= selection, then the preference
// cookie, then Accept-Language, then the default. A valid ?lang= selection
// is persisted so the choice survives navigation.
func (s *Server) resolveLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, persist := s.requestLocale(r)
		if persist {
			s.setLocaleCookie(w, loc)
		}

		ctx := context.WithValue(r.Context(), localeKey{}, loc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLocale(r *http.Request) (loc locale.Locale, persist bool) {
	if raw := r.URL.Query().Get("lang"); raw != "" {
		loc, err := locale.Select(raw)
		if err == nil {
			return loc, true
		}
		s.log.WarnContext(r.Context(), "unsupported locale in query", "requested", raw)
	}

	var pref string
	if c, err := r.Cookie(s.cfg.LocaleCookie); err == nil {
		pref = c.Value
	}

	// A stored preference that is still a supported code wins over header
	// detection; anything else defers to Accept-Language.
	detected := locale.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	return locale.Detect(string(detected), pref), false
}

// setLocaleCookie persists the visitor's locale preference.
func (s *Server) setLocaleCookie(w http.ResponseWriter, loc locale.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.LocaleCookie,
		Value:    string(loc),
		Path:     "/",
		MaxAge:   int(s.cfg.LocaleCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
}
