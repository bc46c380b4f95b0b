package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", "HS256", 60)

	token, err := svc.GenerateAccessToken("42")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestTokenService_DistinctTokenIDs(t *testing.T) {
	svc := NewTokenService("test-secret", "HS256", 60)

	first, err := svc.GenerateAccessToken("42")
	assert.NoError(t, err)
	second, err := svc.GenerateAccessToken("42")
	assert.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	assert.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	assert.NoError(t, err)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", "HS256", 60)

	token, err := svc.GenerateAccessTokenWithTTL("42", -time.Minute)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", "HS256", 60)
	verifier := NewTokenService("other-secret", "HS256", 60)

	token, err := issuer.GenerateAccessToken("42")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsAlgorithmMismatch(t *testing.T) {
	issuer := NewTokenService("test-secret", "HS512", 60)
	verifier := NewTokenService("test-secret", "HS256", 60)

	token, err := issuer.GenerateAccessToken("42")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_RejectsTampering(t *testing.T) {
	svc := NewTokenService("test-secret", "HS256", 60)

	token, err := svc.GenerateAccessToken("42")
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.ValidateToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestNewTokenService_UnknownAlgorithmFallsBack(t *testing.T) {
	svc := NewTokenService("test-secret", "NOT_AN_ALG", 60)

	token, err := svc.GenerateAccessToken("42")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
}
