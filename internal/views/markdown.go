package views

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
)

// RenderMarkdown converts trusted first-party markdown (privacy policy,
// terms) to HTML. Not for user-generated content; nothing here sanitizes.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("views: rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownPage renders a long-form page from pre-converted HTML.
func MarkdownPage(title, html string) templ.Component {
	return component(func(_ context.Context, h *hw) {
		h.raw("<article class=\"prose\">\n")
		h.f("<h1>%s</h1>\n", esc(title))
		h.raw(html)
		h.raw("</article>\n")
	})
}
