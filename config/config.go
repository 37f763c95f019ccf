package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	ContentDir     string
	DemoMode       bool
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file is usually absent and system environment variables are used.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		ContentDir:     os.Getenv("CONTENT_DIR"),
		DemoMode:       parseBool(os.Getenv("DEMO_MODE")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		RequestTimeout: 5 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = "content"
	}
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			cfg.RequestTimeout = d
		} else {
			log.Printf("Warning: invalid REQUEST_TIMEOUT %q, using %s", s, cfg.RequestTimeout)
		}
	}

	return cfg, nil
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
