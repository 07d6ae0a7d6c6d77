package server

import (
	"net/http"
	"time"

	"energy-dashboard/metrics"
	"energy-dashboard/utils"
)

// statusWriter wraps ResponseWriter to capture the status code and bytes
// written; the standard library does not expose them to middleware.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// accessMiddleware logs every request and records the request counter and
// duration histogram.
func accessMiddleware(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			dur := time.Since(start)

			metrics.RequestsTotal.Inc()
			metrics.RequestDurationMs.Observe(float64(dur.Milliseconds()))
			logger.Debug("[http] %s %s → %d (%d bytes, %dms, %s)",
				r.Method, r.URL.Path, sw.status, sw.bytes, dur.Milliseconds(), r.RemoteAddr)
		})
	}
}
