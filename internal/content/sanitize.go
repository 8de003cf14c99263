package content

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// sanitizeText strips all markup from user-generated text, returning plain
// text. bluemonday entity-escapes its output, so the result is unescaped
// again: the store holds plain strings and the renderer owns escaping.
func sanitizeText(s string) string {
	policyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// sanitizeReviews cleans every user-supplied field of the loaded reviews and
// clamps ratings into the documented 0..5 range.
func sanitizeReviews(reviews []Review) []Review {
	for i := range reviews {
		r := &reviews[i]

		r.Author = sanitizeText(r.Author)
		if r.Rating < 0 {
			r.Rating = 0
		}
		if r.Rating > 5 {
			r.Rating = 5
		}

		for code, tr := range r.Translations {
			tr.Title = sanitizeText(tr.Title)
			tr.Text = sanitizeText(tr.Text)
			r.Translations[code] = tr
		}
	}
	return reviews
}
