package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ShakirChaya0/IPP-Prototype/database"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const defaultJWTSecret = "DevelopmentSecretCafe2024"

type Config struct {
	Port               string
	GinMode            string
	DatabaseDSN        string
	JWTSecret          string
	TokenTTL           time.Duration
	NotificationTTL    time.Duration
	LoginRatePerMinute int
	RequestRate        int
	CORSOrigins        []string
	SeedMockData       bool
	LogLevel           string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debugf(".env not loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply values.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:        valueOr(getenv("PORT"), "8080"),
		GinMode:     getenv("GIN_MODE"),
		DatabaseDSN: valueOr(getenv("DATABASE_DSN"), database.InMemoryDSN("cafe")),
		JWTSecret:   getenv("JWT_SECRET"),
		LogLevel:    valueOr(getenv("LOG_LEVEL"), "info"),
		CORSOrigins: splitList(valueOr(getenv("CORS_ORIGINS"), "http://localhost:5173")),
	}

	var err error
	if cfg.TokenTTL, err = durationOr(getenv("TOKEN_TTL"), 24*time.Hour); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if cfg.NotificationTTL, err = durationOr(getenv("NOTIFICATION_TTL"), 3*time.Second); err != nil {
		return nil, fmt.Errorf("NOTIFICATION_TTL: %w", err)
	}
	if cfg.LoginRatePerMinute, err = intOr(getenv("LOGIN_RATE_PER_MINUTE"), 5); err != nil {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MINUTE: %w", err)
	}
	if cfg.RequestRate, err = intOr(getenv("REQUEST_RATE"), 50); err != nil {
		return nil, fmt.Errorf("REQUEST_RATE: %w", err)
	}
	if cfg.SeedMockData, err = boolOr(getenv("SEED_MOCK_DATA"), true); err != nil {
		return nil, fmt.Errorf("SEED_MOCK_DATA: %w", err)
	}

	if cfg.JWTSecret == "" {
		utils.InfoLogger.Warn("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = defaultJWTSecret
	}
	return cfg, nil
}

// InitDB opens the store described by the config and seeds it when asked to.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if cfg.SeedMockData {
		if err := database.Seed(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

func intOr(v string, def int) (int, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func boolOr(v string, def bool) (bool, error) {
	if strings.TrimSpace(v) == "" {
		return def, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
