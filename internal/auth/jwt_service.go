package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token fails signature, algorithm
// or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by access tokens. Subject is the stringified user id.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens. The signing
// algorithm is chosen by name (HS256 by default) and the lifetime is
// configured in minutes, both from the environment.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService builds a TokenService. Unknown algorithm names fall
// back to HS256.
func NewTokenService(secret, algorithm string, ttlMinutes int) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// GenerateAccessToken signs a token for the given subject with the
// configured lifetime. Each token carries a unique jti.
func (s *TokenService) GenerateAccessToken(subject string) (string, error) {
	return s.generate(subject, s.ttl)
}

// GenerateAccessTokenWithTTL signs a token with an explicit lifetime.
func (s *TokenService) GenerateAccessTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	return s.generate(subject, ttl)
}

func (s *TokenService) generate(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm and expiry, returning
// the embedded claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != s.method.Alg() {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
