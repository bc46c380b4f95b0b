package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	DatabaseDSN        string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	JWTSecret          string
	JWTAlgorithm       string
	AccessTokenMinutes int
	CORSAllowOrigins   []string
	SwaggerHost        string
}

// Load builds Config from environment with sensible defaults. The JWT
// secret default exists for local development only and must be rotated
// in any deployment.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "user:password@tcp(localhost:3306)/recipehub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm:       getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenMinutes: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		CORSAllowOrigins:   getEnvCSV("CORS_ALLOW_ORIGINS"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
}

// RuntimeView is the sanitized configuration exposed by the
// diagnostics endpoint. It never carries the secret or the DSN.
type RuntimeView struct {
	CORSAllowOrigins   []string `json:"cors_allow_origins"`
	JWTAlgorithm       string   `json:"jwt_algorithm"`
	AccessTokenMinutes int      `json:"access_token_expire_minutes"`
	DatabaseConfigured bool     `json:"database_configured"`
	RedisConfigured    bool     `json:"redis_configured"`
}

// Runtime returns the sanitized view of the loaded configuration.
func (c *Config) Runtime() RuntimeView {
	origins := c.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return RuntimeView{
		CORSAllowOrigins:   origins,
		JWTAlgorithm:       c.JWTAlgorithm,
		AccessTokenMinutes: c.AccessTokenMinutes,
		DatabaseConfigured: c.DatabaseDSN != "",
		RedisConfigured:    c.RedisAddr != "",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

// getEnvCSV splits a comma-separated variable, dropping blank entries.
func getEnvCSV(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
