package views

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/pennyhq/website/internal/content"
)

// marqueeRepeat is how many times each marquee row repeats its reviews so the
// horizontal scroll loops without a visible seam. Purely a rendering trick:
// the underlying review count is unchanged.
const marqueeRepeat = 3

// SplitReviews distributes reviews across marquee rows. Wide viewports get
// two rows split by index parity (row sizes differ by at most one, every
// review appears exactly once); narrow viewports get a single row.
func SplitReviews(reviews []content.LocalizedReview, wide bool) [][]content.LocalizedReview {
	if !wide {
		return [][]content.LocalizedReview{reviews}
	}

	groups := make([][]content.LocalizedReview, 2)
	for i, r := range reviews {
		groups[i%2] = append(groups[i%2], r)
	}
	return groups
}

// ReviewMarquee renders the looping review rows. The container carries the
// breakpoint so the client script knows when a resize crosses it.
func ReviewMarquee(reviews []content.LocalizedReview, wide bool) templ.Component {
	return component(func(_ context.Context, h *hw) {
		h.f("<div id=\"reviews-marquee\" data-breakpoint=\"%d\">\n", ReviewsBreakpoint)
		for _, group := range SplitReviews(reviews, wide) {
			h.raw("<div class=\"marquee-row\">\n")
			for range marqueeRepeat {
				for _, r := range group {
					reviewCard(h, r)
				}
			}
			h.raw("</div>\n")
		}
		h.raw("</div>\n")
	})
}

func reviewCard(h *hw, r content.LocalizedReview) {
	h.raw("<article class=\"review\">\n")
	h.f("<div class=\"review-rating\" aria-label=\"%d/5\">%s</div>\n", r.Review.Rating, stars(r.Review.Rating))
	h.f("<h3>%s</h3>\n", esc(r.Title))
	h.f("<p>%s</p>\n", esc(r.Text))
	h.f("<footer>%s · <time datetime=%q>%s</time></footer>\n",
		esc(r.Review.Author), esc(r.Review.Date), esc(r.Review.Date))
	h.raw("</article>\n")
}

// stars renders a 0..5 rating as filled and hollow stars. Out-of-range values
// are clamped at load time, but clamp again rather than panic on a bad slice.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
