package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"scholarportal/internal/auth"
	"scholarportal/internal/httputil"
)

// RequireAuth is the access gate for admin routes. A request passes only with
// a bearer token the verifier accepts; the verified claims are put on the
// request context for handlers and logs.
func RequireAuth(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.Warn("unauthorized: missing or invalid bearer token",
					"method", r.Method,
					"path", r.URL.Path,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}

			claims, err := verifier.VerifyToken(strings.TrimSpace(token))
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "token verification failed")
				return
			}

			r = httputil.WithClaims(r, claims)
			next.ServeHTTP(w, r)
		})
	}
}
