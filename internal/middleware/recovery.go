package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"scholarportal/internal/httputil"
)

// headerTracker remembers whether the wrapped handler started its response.
type headerTracker struct {
	http.ResponseWriter
	started bool
}

func (t *headerTracker) WriteHeader(status int) {
	t.started = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.started = true
	return t.ResponseWriter.Write(b)
}

func (t *headerTracker) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}

// Recovery turns a handler panic into the same generic 500 that unexpected
// errors get. The stack goes to the log only. When the handler had already
// started writing, the response is left truncated rather than corrupted with
// a second body.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &headerTracker{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				logger.Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"response_started", tw.started,
					"stack", string(debug.Stack()),
				)
				if !tw.started {
					httputil.RespondError(w, http.StatusInternalServerError, "internal server error; please try again")
				}
			}()

			next.ServeHTTP(tw, r)
		})
	}
}
