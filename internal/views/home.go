package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/pennyhq/website/internal/locale"
)

// Home renders the landing page body for one locale. wide selects the
// two-row review marquee; narrow viewports get a single row.
func Home(c Content, loc locale.Locale, wide bool) templ.Component {
	return component(func(ctx context.Context, h *hw) {
		hero(h, c, loc)
		featureSection(h, c, loc)
		if h.err == nil {
			h.err = reviewSection(c, loc, wide).Render(ctx, h.w)
		}
	})
}

// hero paints the top section. Elements keep a data-i18n attribute naming the
// dot-path key their text came from, which content editors use to trace copy
// back to the translations document.
func hero(h *hw, c Content, loc locale.Locale) {
	h.raw("<section class=\"hero\">\n")
	h.f("<h1 data-i18n=\"hero.title\">%s</h1>\n", esc(c.Lookup("hero.title", loc)))
	h.f("<p class=\"subtitle\" data-i18n=\"hero.subtitle\">%s</p>\n", esc(c.Lookup("hero.subtitle", loc)))
	h.f("<a class=\"store-badge\" href=\"https://apps.apple.com/app/penny\" aria-label=%q>", esc(c.Lookup("hero.cta", loc)))
	h.f("<img src=%q alt=%q></a>\n", BadgePath(loc), esc(c.Lookup("hero.badge", loc)))
	h.raw("</section>\n")
}

// BadgePath returns the localized App Store badge asset path. The locale code
// is used verbatim as the file name, so every supported locale needs a
// matching asset under static/badges.
func BadgePath(loc locale.Locale) string {
	return "/static/badges/" + string(loc) + ".svg"
}

func featureSection(h *hw, c Content, loc locale.Locale) {
	h.raw("<section class=\"features\">\n")
	h.f("<h2 data-i18n=\"features.title\">%s</h2>\n", esc(c.Lookup("features.title", loc)))
	h.raw("<div class=\"feature-grid\">\n")
	for _, f := range c.FeaturesFor(loc) {
		h.raw("<article class=\"feature\">\n")
		h.f("<img class=\"feature-icon\" src=\"/static/icons/%s.svg\" alt=\"\">\n", esc(f.Icon))
		h.f("<h3>%s</h3>\n", esc(f.Title))
		h.f("<p>%s</p>\n", esc(f.Description))
		h.raw("</article>\n")
	}
	h.raw("</div>\n</section>\n")
}

func reviewSection(c Content, loc locale.Locale, wide bool) templ.Component {
	return component(func(ctx context.Context, h *hw) {
		h.raw("<section class=\"reviews\">\n")
		h.f("<h2 data-i18n=\"reviews.title\">%s</h2>\n", esc(c.Lookup("reviews.title", loc)))
		if h.err == nil {
			h.err = ReviewMarquee(c.ReviewsFor(loc), wide).Render(ctx, h.w)
		}
		h.raw("</section>\n")
	})
}
