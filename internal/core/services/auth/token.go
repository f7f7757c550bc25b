package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edukit/coursehub/internal/core/domain"
)

// DefaultTokenLifetime applies when no lifetime is configured.
const DefaultTokenLifetime = 24 * time.Hour

// Claims carries the registered claim set; the subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless: validity is determined solely by signature and expiry.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	method   jwt.SigningMethod
}

// NewTokenService creates a token service signing with HS256. A non-positive
// lifetime falls back to DefaultTokenLifetime.
func NewTokenService(secret []byte, lifetime time.Duration) *TokenService {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenService{
		secret:   secret,
		lifetime: lifetime,
		method:   jwt.SigningMethodHS256,
	}
}

// Issue produces a signed token embedding subjectID as the subject claim and
// an expiry of issue time plus the configured lifetime.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry. Malformed, tampered and expired tokens
// all surface as domain.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != s.method {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
