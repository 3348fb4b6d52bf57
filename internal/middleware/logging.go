package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"scholarportal/internal/httputil"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one line per request with method, path, status and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if uid := httputil.GetUserID(r); uid != "" {
				attrs = append(attrs, "user_id", uid)
			}

			switch {
			case rec.status >= 500:
				logger.Error("request completed", attrs...)
			case rec.status >= 400:
				logger.Info("request completed", attrs...)
			default:
				logger.Debug("request completed", attrs...)
			}
		})
	}
}
