package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarportal/internal/domain"
	"scholarportal/internal/domain/models"
)

const (
	testIssuer   = "https://securetoken.google.com/portal-test"
	testAudience = "portal-test"
)

func newTestVerifier(t *testing.T) (*IdentityVerifier, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	kf := func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	}
	return NewJWTVerifierWithKeyfunc(kf, testIssuer, testAudience, slog.Default()), key
}

func validClaims() *models.IdentityClaims {
	now := time.Now()
	return &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-1",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "admin@example.com",
	}
}

func sign(t *testing.T, key *rsa.PrivateKey, claims *models.IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyToken(t *testing.T) {
	verifier, key := newTestVerifier(t)

	claims, err := verifier.VerifyToken(sign(t, key, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.GetUserID())
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestVerifyTokenRejects(t *testing.T) {
	verifier, key := newTestVerifier(t)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token func() string
	}{
		{"garbage", func() string { return "not-a-token" }},
		{"wrong issuer", func() string {
			c := validClaims()
			c.Issuer = "https://evil.example.com"
			return sign(t, key, c)
		}},
		{"wrong audience", func() string {
			c := validClaims()
			c.Audience = jwt.ClaimStrings{"other-project"}
			return sign(t, key, c)
		}},
		{"expired", func() string {
			c := validClaims()
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return sign(t, key, c)
		}},
		{"missing expiry", func() string {
			c := validClaims()
			c.ExpiresAt = nil
			return sign(t, key, c)
		}},
		{"missing subject", func() string {
			c := validClaims()
			c.Subject = ""
			return sign(t, key, c)
		}},
		{"foreign key", func() string { return sign(t, otherKey, validClaims()) }},
		{"hmac algorithm", func() string {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims()).SignedString([]byte("secret"))
			require.NoError(t, err)
			return token
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(tt.token())
			assert.True(t, errors.Is(err, domain.ErrUnauthorized), "got %v", err)
		})
	}
}

func TestNewJWTVerifierValidatesArguments(t *testing.T) {
	_, err := NewJWTVerifier("", testIssuer, testAudience, slog.Default())
	assert.Error(t, err)

	_, err = NewJWTVerifier("https://example.com/jwks", "", testAudience, slog.Default())
	assert.Error(t, err)
}
