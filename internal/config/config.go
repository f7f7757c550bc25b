package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. It is loaded once at process
// start and passed down explicitly; nothing reads the environment after Load.
type Config struct {
	Addr          string
	DBPath        string
	JWTSecret     string
	TokenLifetime time.Duration
	AdminEmail    string
	AdminPassword string
	Debug         bool
}

// Load reads an optional .env file, then environment variables, then command
// line flags. Flags take precedence over environment variables.
func Load() (*Config, error) {
	// Best effort; absence of a .env file is normal outside development.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Addr = getEnv("COURSEHUB_ADDR", ":8080")
	cfg.DBPath = getEnv("COURSEHUB_DB", "coursehub.db")
	cfg.JWTSecret = getEnv("COURSEHUB_JWT_SECRET", "")
	cfg.AdminEmail = getEnv("COURSEHUB_ADMIN_EMAIL", "")
	cfg.AdminPassword = getEnv("COURSEHUB_ADMIN_PASSWORD", "")
	cfg.Debug = getEnvBool("COURSEHUB_DEBUG", false)
	expiry := getEnv("COURSEHUB_JWT_EXPIRY", "1d")

	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Token signing secret")
	flag.StringVar(&expiry, "jwt-expiry", expiry, "Token lifetime (e.g. 1d, 12h, 30m)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable verbose debug logging")
	flag.Parse()

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("COURSEHUB_JWT_SECRET is required")
	}

	lifetime, err := ParseLifetime(expiry)
	if err != nil {
		return nil, fmt.Errorf("invalid token lifetime %q: %w", expiry, err)
	}
	cfg.TokenLifetime = lifetime

	return cfg, nil
}

// ParseLifetime parses a duration, additionally accepting a trailing "d" for
// days ("1d", "7d") as the legacy expiry notation.
func ParseLifetime(s string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("day count must be a positive integer")
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("lifetime must be positive")
	}
	return d, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
