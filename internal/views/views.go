// Package views renders the site's HTML as templ components. Components are
// pure functions of their inputs: rendering the same data twice produces
// byte-identical output. All interpolated text is escaped here; upstream
// layers hand the views plain strings.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
)

// ReviewsBreakpoint is the viewport width (logical pixels) at which the
// review marquee switches between one and two rows. Published to the client
// so resize handling agrees with the server.
const ReviewsBreakpoint = 768

// Content is the subset of the content store the views consume.
type Content interface {
	Lookup(key string, loc locale.Locale) string
	FeaturesFor(loc locale.Locale) []content.Feature
	ReviewsFor(loc locale.Locale) []content.LocalizedReview
}

// LocaleOption is one entry of the language selector.
type LocaleOption struct {
	Code   string
	Name   string
	Active bool
}

// LocaleOptions builds selector entries for every supported locale, with the
// active one marked.
func LocaleOptions(active locale.Locale) []LocaleOption {
	supported := locale.Supported()
	opts := make([]LocaleOption, 0, len(supported))
	for _, l := range supported {
		opts = append(opts, LocaleOption{
			Code:   string(l),
			Name:   locale.DisplayName(l),
			Active: l == active,
		})
	}
	return opts
}

// esc HTML-escapes interpolated text. Safe for element content and for
// attribute values inside double quotes.
func esc(s string) string {
	return templ.EscapeString(s)
}

// hw accumulates writes and remembers the first error, so component bodies
// read as a sequence of writes instead of error pyramids.
type hw struct {
	w   io.Writer
	err error
}

func (h *hw) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *hw) f(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

// component adapts a write function to templ.Component.
func component(fn func(ctx context.Context, h *hw)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &hw{w: w}
		fn(ctx, h)
		return h.err
	})
}
