package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

// allowedAlgorithms guards against algorithm confusion. Identity providers
// sign ID tokens with RS256.
var allowedAlgorithms = []string{"RS256"}

// IdentityVerifier implements JWTVerifier against the identity provider's JWKS.
type IdentityVerifier struct {
	keyfunc  jwt.Keyfunc
	issuer   string
	audience string
	logger   *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from jwksURL.
// keyfunc v3 caches the key set and refreshes it on unknown key ids.
func NewJWTVerifier(jwksURL, issuer, audience string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}
	if issuer == "" || audience == "" {
		return nil, errors.New("token issuer and audience are required")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL, "issuer", issuer)

	return NewJWTVerifierWithKeyfunc(jwks.Keyfunc, issuer, audience, logger), nil
}

// NewJWTVerifierWithKeyfunc builds a verifier around an existing key lookup.
func NewJWTVerifierWithKeyfunc(kf jwt.Keyfunc, issuer, audience string, logger *slog.Logger) *IdentityVerifier {
	return &IdentityVerifier{
		keyfunc:  kf,
		issuer:   issuer,
		audience: audience,
		logger:   logger,
	}
}

// VerifyToken validates signature, algorithm, issuer, audience and expiry.
func (v *IdentityVerifier) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.keyfunc,
		jwt.WithValidMethods(allowedAlgorithms),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		v.logger.Warn("token rejected", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		v.logger.Warn("token is invalid after parsing")
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok {
		v.logger.Error("failed to extract claims from token")
		return nil, domain.ErrUnauthorized
	}

	// sub carries the account uid and must be present
	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	return claims, nil
}

// Close is a no-op: keyfunc v3 stops refreshing when its context ends.
func (v *IdentityVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}
