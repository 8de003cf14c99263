package web

import "net/http"

// LocalRedirectTargetForTest exposes the referer reduction to external tests.
func LocalRedirectTargetForTest(referer string) string {
	return localRedirectTarget(referer)
}

// NewStatusWriterForTest exposes the request logger's response writer. The
// returned func reports the status that would be logged.
func NewStatusWriterForTest(w http.ResponseWriter) (http.ResponseWriter, func() int) {
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	return sw, func() int { return sw.status }
}
