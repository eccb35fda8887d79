package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBUrl   string
	GinMode string
	// JWT Configuration
	JWTSecret     string
	JWTTTLSeconds int
	// Redis Configuration (optional; rate limiting and GitHub cache degrade without it)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
	// GitHub lookup Configuration
	GithubAPIURL       string
	GithubToken        string
	GithubCacheSeconds int
	// CORS
	FrontendURL string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "5000"),
		DBUrl:   getEnv("DATABASE_URL", ""),
		GinMode: getEnv("GIN_MODE", "debug"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTTTLSeconds: getEnvInt("JWT_TTL_SECONDS", 360000),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),

		GithubAPIURL:       getEnv("GITHUB_API_URL", "https://api.github.com"),
		GithubToken:        getEnv("GITHUB_TOKEN", ""),
		GithubCacheSeconds: getEnvInt("GITHUB_CACHE_SECONDS", 300),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// The token service cannot run without a signing secret.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DBUrl == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
