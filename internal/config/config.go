// Package config loads process-wide settings once at startup. Every
// component receives its settings through this struct; nothing reads the
// environment after Load returns.
package config

import (
	"errors"
	"os"
)

// DefaultSecretKey is the development fallback for the token signing
// secret. Production refuses to start with it.
const DefaultSecretKey = "your-secret-key"

type Config struct {
	Addr         string
	SecretKey    string
	DatabasePath string
	RedisAddr    string
	UploadDir    string
	Env          string
}

// Load reads the configuration from the environment, applying development
// defaults. It fails when running in production without an explicit
// signing secret.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:         getEnv("ADDR", ":8080"),
		SecretKey:    os.Getenv("SECRET_KEY"),
		DatabasePath: getEnv("DATABASE_PATH", "./studio.db"),
		RedisAddr:    getEnv("REDIS_CONNSTRING", "localhost:6379"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		Env:          getEnv("APP_ENV", "development"),
	}

	if cfg.SecretKey == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SECRET_KEY must be set in production")
		}
		cfg.SecretKey = DefaultSecretKey
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDefaultSecret reports whether the insecure development secret is in
// effect, so startup can log a warning.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
