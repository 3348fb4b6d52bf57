package auth

import "scholarportal/internal/domain/models"

// JWTVerifier defines the interface for ID token verification.
// The Access Gate middleware depends only on this, so tests can swap in a fake.
type JWTVerifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Returns domain.ErrUnauthorized if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.IdentityClaims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
