package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims is the claim set of an identity-provider ID token
// (Firebase-style: iss/aud carry the project, sub carries the uid).
type IdentityClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string `json:"email"`
	EmailVerified        bool   `json:"email_verified"`
	AuthTime             int64  `json:"auth_time"`
	UserID               string `json:"user_id"`
	Name                 string `json:"name,omitempty"`
}

// GetUserID returns the verified subject.
func (c *IdentityClaims) GetUserID() string {
	return c.Subject
}
