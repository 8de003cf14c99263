package views

import (
	"context"

	"github.com/a-h/templ"
)

// Page carries the per-request data every page shares.
type Page struct {
	Locale          string
	Title           string
	MetaDescription string
	Locales         []LocaleOption
}

// reflowScript keeps the client's review marquee in sync with the breakpoint:
// the partial is re-requested only when a resize crosses it. The same script
// auto-submits the language selector.
const reflowScript = `(function () {
	var form = document.getElementById('locale-form');
	if (form) {
		var sel = form.querySelector('select');
		if (sel) sel.addEventListener('change', function () { form.submit(); });
	}
	var marquee = document.getElementById('reviews-marquee');
	if (!marquee) return;
	var bp = parseInt(marquee.getAttribute('data-breakpoint'), 10) || 768;
	var mode = window.innerWidth >= bp ? 'wide' : 'narrow';
	window.addEventListener('resize', function () {
		var next = window.innerWidth >= bp ? 'wide' : 'narrow';
		if (next === mode) return;
		mode = next;
		fetch('/partials/reviews?viewport=' + mode)
			.then(function (r) { return r.text(); })
			.then(function (html) {
				marquee.outerHTML = html;
				marquee = document.getElementById('reviews-marquee');
			});
	});
})();`

// Layout wraps body in the shared document chrome: head metadata, header with
// the language selector, and footer.
func Layout(page Page, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *hw) {
		h.raw("<!DOCTYPE html>\n")
		h.f("<html lang=%q>\n<head>\n", esc(page.Locale))
		h.raw("<meta charset=\"utf-8\">\n")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		h.f("<title>%s</title>\n", esc(page.Title))
		h.f("<meta name=\"description\" content=%q>\n", esc(page.MetaDescription))
		h.raw("<link rel=\"stylesheet\" href=\"/static/css/site.css\">\n")
		h.raw("</head>\n<body>\n")

		h.raw("<header class=\"site-header\">\n")
		h.raw("<a class=\"logo\" href=\"/\">Penny</a>\n")
		localeSelector(h, page)
		h.raw("</header>\n")

		h.raw("<main>\n")
		if h.err == nil {
			h.err = body.Render(ctx, h.w)
		}
		h.raw("\n</main>\n")

		h.raw("<footer class=\"site-footer\">\n")
		h.raw("<nav><a href=\"/privacy\">Privacy</a> · <a href=\"/terms\">Terms</a></nav>\n")
		h.raw("</footer>\n")

		h.f("<script>%s</script>\n", reflowScript)
		h.raw("</body>\n</html>\n")
	})
}

// localeSelector renders the language form. Works without JavaScript via the
// submit button; the inline script upgrades it to submit-on-change.
func localeSelector(h *hw, page Page) {
	h.raw("<form id=\"locale-form\" class=\"locale-form\" method=\"post\" action=\"/locale\">\n")
	h.raw("<select name=\"locale\" aria-label=\"Language\">\n")
	for _, opt := range page.Locales {
		selected := ""
		if opt.Active {
			selected = " selected"
		}
		h.f("<option value=%q%s>%s</option>\n", esc(opt.Code), selected, esc(opt.Name))
	}
	h.raw("</select>\n")
	h.raw("<noscript><button type=\"submit\">Go</button></noscript>\n")
	h.raw("</form>\n")
}

// ErrorPage is the minimal chrome-free error document.
func ErrorPage(status int, message string) templ.Component {
	return component(func(_ context.Context, h *hw) {
		h.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head><meta charset=\"utf-8\">")
		h.f("<title>%d</title></head>\n", status)
		h.f("<body><h1>%d</h1><p>%s</p></body>\n</html>\n", status, esc(message))
	})
}
