package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ClientID       string        `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret   string        `envconfig:"CLIENT_SECRET" required:"true"`
	APIBaseURL     string        `envconfig:"INTRA_API_URL" default:"https://api.intra.42.fr"`
	Port           int           `envconfig:"PORT" default:"10000"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	HolidayCountry string        `envconfig:"HOLIDAY_COUNTRY" default:"fr"`
	DailyTarget    time.Duration `envconfig:"DAILY_TARGET" default:"7h"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"1m"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"5m"`
	Dir            string        `envconfig:"LOGTIME_DIR"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env files (if any) and then the environment. Variables already
// set in the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.DailyTarget <= 0 || cfg.DailyTarget%time.Hour != 0 {
		return nil, fmt.Errorf("DAILY_TARGET must be a positive whole number of hours, got %s", cfg.DailyTarget)
	}
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.Dir = filepath.Join(home, ".logtime")
	}
	return &cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EnsureDir creates the data directory when missing and returns it.
func (c *Config) EnsureDir() (string, error) {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return "", err
	}
	return c.Dir, nil
}
