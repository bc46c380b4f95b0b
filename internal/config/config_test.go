package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "change-me", cfg.JWTSecret)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 60, cfg.AccessTokenMinutes)
	assert.Empty(t, cfg.CORSAllowOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")

	cfg := Load()
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 15, cfg.AccessTokenMinutes)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	cfg := Load()
	assert.Equal(t, 60, cfg.AccessTokenMinutes)
}

func TestGetEnvCSV(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "unset", value: "", want: nil},
		{name: "single origin", value: "https://app.example.com", want: []string{"https://app.example.com"}},
		{
			name:  "trims and drops blanks",
			value: " https://a.example.com , ,https://b.example.com,",
			want:  []string{"https://a.example.com", "https://b.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CORS_ALLOW_ORIGINS", tt.value)
			assert.Equal(t, tt.want, getEnvCSV("CORS_ALLOW_ORIGINS"))
		})
	}
}

func TestRuntime_Sanitized(t *testing.T) {
	cfg := &Config{
		DatabaseDSN:        "user:password@tcp(localhost:3306)/recipehub",
		JWTSecret:          "super-secret",
		JWTAlgorithm:       "HS256",
		AccessTokenMinutes: 60,
	}

	view := cfg.Runtime()
	assert.Equal(t, []string{"*"}, view.CORSAllowOrigins)
	assert.Equal(t, "HS256", view.JWTAlgorithm)
	assert.Equal(t, 60, view.AccessTokenMinutes)
	assert.True(t, view.DatabaseConfigured)
}
