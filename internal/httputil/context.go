package httputil

import (
	"context"
	"net/http"

	"scholarportal/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	claimsKey contextKey = "claims"
)

// WithClaims stores verified token claims on the request context
func WithClaims(r *http.Request, claims *models.IdentityClaims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims returns the verified claims, or nil on unauthenticated routes
func GetClaims(r *http.Request) *models.IdentityClaims {
	claims, _ := r.Context().Value(claimsKey).(*models.IdentityClaims)
	return claims
}

// GetUserID returns the verified subject, or "" when the request is anonymous
func GetUserID(r *http.Request) string {
	if claims := GetClaims(r); claims != nil {
		return claims.GetUserID()
	}
	return ""
}
