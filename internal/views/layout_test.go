package views_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyhq/website/internal/content"
	"github.com/pennyhq/website/internal/locale"
	"github.com/pennyhq/website/internal/views"
)

// stubContent is a fixed-answer Content implementation for view tests.
type stubContent struct {
	strings  map[string]string
	features []content.Feature
	reviews  []content.LocalizedReview
}

func (s stubContent) Lookup(key string, _ locale.Locale) string {
	if v, ok := s.strings[key]; ok {
		return v
	}
	return key
}

func (s stubContent) FeaturesFor(locale.Locale) []content.Feature        { return s.features }
func (s stubContent) ReviewsFor(locale.Locale) []content.LocalizedReview { return s.reviews }

func testPage() views.Page {
	return views.Page{
		Locale:          "de",
		Title:           "Penny — Ausgaben im Griff",
		MetaDescription: "Die Ausgaben-App",
		Locales:         views.LocaleOptions(locale.De),
	}
}

func TestLayout(t *testing.T) {
	t.Parallel()

	body := views.MarkdownPage("Hello", "<p>world</p>")
	html := renderComponent(t, func(sb *strings.Builder) error {
		return views.Layout(testPage(), body).Render(context.Background(), sb)
	})

	assert.Contains(t, html, "<html lang=\"de\">")
	assert.Contains(t, html, "<title>Penny — Ausgaben im Griff</title>")
	assert.Contains(t, html, "content=\"Die Ausgaben-App\"")
	assert.Contains(t, html, "<p>world</p>")
	assert.Contains(t, html, "id=\"locale-form\"")

	// Selector lists every supported locale, active one marked.
	assert.Equal(t, len(locale.Supported()), strings.Count(html, "<option "))
	assert.Contains(t, html, "<option value=\"de\" selected>")
	assert.Contains(t, html, ">Deutsch</option>")
}

func TestHome(t *testing.T) {
	t.Parallel()

	c := stubContent{
		strings: map[string]string{
			"hero.title":     "Track every penny",
			"hero.subtitle":  "Budgets that stick",
			"hero.cta":       "Download",
			"hero.badge":     "Download on the App Store",
			"features.title": "Why Penny",
			"reviews.title":  "Loved worldwide",
		},
		features: []content.Feature{
			{Icon: "chart", Title: "Smart budgets", Description: "Plan ahead."},
		},
		reviews: makeReviews(2),
	}

	html := renderComponent(t, func(sb *strings.Builder) error {
		return views.Home(c, locale.ZhHant, true).Render(context.Background(), sb)
	})

	assert.Contains(t, html, "data-i18n=\"hero.title\">Track every penny<")
	assert.Contains(t, html, "src=\"/static/badges/zh-Hant.svg\"")
	assert.Contains(t, html, "/static/icons/chart.svg")
	assert.Contains(t, html, "Smart budgets")
	assert.Contains(t, html, "id=\"reviews-marquee\"")
}

func TestHomeIdempotent(t *testing.T) {
	t.Parallel()

	c := stubContent{strings: map[string]string{}, reviews: makeReviews(3)}

	first := renderComponent(t, func(sb *strings.Builder) error {
		return views.Home(c, locale.EN, false).Render(context.Background(), sb)
	})
	second := renderComponent(t, func(sb *strings.Builder) error {
		return views.Home(c, locale.EN, false).Render(context.Background(), sb)
	})
	assert.Equal(t, first, second)
}

func TestHomeMissingKeysRenderAsKeys(t *testing.T) {
	t.Parallel()

	c := stubContent{strings: map[string]string{}}
	html := renderComponent(t, func(sb *strings.Builder) error {
		return views.Home(c, locale.EN, false).Render(context.Background(), sb)
	})

	// Keys double as placeholder copy; the page never renders blank.
	assert.Contains(t, html, ">hero.title<")
	assert.Contains(t, html, ">features.title<")
}

func TestLocaleOptions(t *testing.T) {
	t.Parallel()

	opts := views.LocaleOptions(locale.Ja)
	require.Len(t, opts, len(locale.Supported()))

	var activeCount int
	for _, opt := range opts {
		if opt.Active {
			activeCount++
			assert.Equal(t, "ja", opt.Code)
		}
		assert.NotEmpty(t, opt.Name)
	}
	assert.Equal(t, 1, activeCount)
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	html, err := views.RenderMarkdown([]byte("# Title\n\nSome *emphasis* here.\n"))
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
}
