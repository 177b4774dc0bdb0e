package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planet-nakshatra/consultation-api/internal/core/domain"
)

// TokenClaims are the facts embedded in a signed token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// TokenIssuer creates and verifies self-contained HS256 tokens. Access and
// refresh tokens use the same mechanics but are signed with distinct secrets,
// so the caller picks the secret per token class.
type TokenIssuer struct{}

func NewTokenIssuer() TokenIssuer {
	return TokenIssuer{}
}

// Issue produces a signed token embedding claims with an expiry ttl from now.
func (TokenIssuer) Issue(claims TokenClaims, secret string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a token under secret. Signature mismatch,
// malformed structure, a non-HS256 alg header, a missing expiry claim, and
// past expiry all collapse to domain.ErrInvalidToken.
func (TokenIssuer) Verify(token, secret string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidToken
	}

	return &TokenClaims{UserID: sub, Email: email, Role: role}, nil
}
