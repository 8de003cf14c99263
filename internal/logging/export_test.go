package logging

import "log/slog"

// DecorateForTest exposes the context decorator to external tests.
func DecorateForTest(h slog.Handler, extractors ...Extractor) slog.Handler {
	return decorate(h, extractors)
}
