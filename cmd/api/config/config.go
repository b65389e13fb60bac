package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port           string
	DatabasePath   string
	SecretKey      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	StaticDir      string
}

func NewConfig() *Config {
	return &Config{
		Port:           getenv("PORT", "5000"),
		DatabasePath:   getenv("DATABASE_PATH", "contentflow.db"),
		SecretKey:      getenv("SECRET_KEY", "contentflow_ai_secret_key_2024_secure"),
		TokenTTL:       30 * 24 * time.Hour,
		AllowedOrigins: strings.Split(getenv("ALLOWED_ORIGINS", "*"), ","),
		StaticDir:      getenv("STATIC_DIR", "static"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
