package config

import (
	"errors"
	"os"
)

type Config struct {
	DBDriver   string // "postgres" or "mysql"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	GinMode    string
	Port       string
}

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. The token codec
// cannot run without it, so startup must fail rather than limp along.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "conduit"),
		DBPassword: getEnv("DB_PASSWORD", "conduit"),
		DBName:     getEnv("DB_NAME", "conduit"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Port:       getEnv("PORT", "8080"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
