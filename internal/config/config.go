package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string

	LogLevel string
	LogFile  string

	RulesFile string

	ContentTimeout  time.Duration
	ContentMaxBytes int64

	BlacklistRefresh time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	MigrateOnStart bool
	CORSOrigins    []string
}

func (c Config) Production() bool { return c.Env == "production" }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present) and the process environment. A missing
// DATABASE_URL is reported through ErrNoDatabase so callers can fall back.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var errs []error
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":5000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		RulesFile:        os.Getenv("RULES_FILE"),
		ContentTimeout:   time.Duration(getenvInt("CONTENT_TIMEOUT_SECONDS", 5, &errs)) * time.Second,
		ContentMaxBytes:  int64(getenvInt("CONTENT_MAX_BYTES", 2<<20, &errs)),
		BlacklistRefresh: time.Duration(getenvInt("BLACKLIST_REFRESH_SECONDS", 0, &errs)) * time.Second,
		RateLimitRPS:     getenvFloat("RATE_LIMIT_RPS", 0, &errs),
		RateLimitBurst:   getenvInt("RATE_LIMIT_BURST", 0, &errs),
		MigrateOnStart:   getenvBool("MIGRATE_ON_START", true, &errs),
		CORSOrigins:      splitList(getenv("CORS_ORIGINS", "*")),
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		cfg.RateLimitBurst = max(1, int(cfg.RateLimitRPS))
	}
	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}

var ErrNoDatabase = errors.New("DATABASE_URL not set")

func getenvInt(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}

func getenvFloat(key string, def float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}

func getenvBool(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
