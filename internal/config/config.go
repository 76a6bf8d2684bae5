package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIBaseURL   = "http://localhost:8000"
	DefaultPollInterval = 1200 * time.Millisecond
	DefaultPollTimeout  = 120 * time.Second
)

// Config is resolved once at startup and passed into constructors; nothing
// below the CLI layer reads the environment.
type Config struct {
	APIBaseURL   string
	StateDir     string
	PollInterval time.Duration
	PollTimeout  time.Duration
	Debug        bool
}

// Load reads an optional .env from the working directory, then the process
// environment, and normalizes the result.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:   os.Getenv("YTSC_API_BASE_URL"),
		StateDir:     os.Getenv("YTSC_STATE_DIR"),
		PollInterval: DefaultPollInterval,
		PollTimeout:  DefaultPollTimeout,
		Debug:        parseBool(os.Getenv("YTSC_DEBUG")),
	}

	if raw := strings.TrimSpace(os.Getenv("YTSC_POLL_INTERVAL_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("invalid YTSC_POLL_INTERVAL_MS %q", raw)
		}
		cfg.PollInterval = time.Duration(ms) * time.Millisecond
	}
	if raw := strings.TrimSpace(os.Getenv("YTSC_POLL_TIMEOUT_MS")); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return Config{}, fmt.Errorf("invalid YTSC_POLL_TIMEOUT_MS %q", raw)
		}
		cfg.PollTimeout = time.Duration(ms) * time.Millisecond
	}

	return Normalize(cfg)
}

// Normalize fills defaults and canonicalizes values. It is exposed so tests
// and the doctor command can run it against explicit inputs.
func Normalize(raw Config) (Config, error) {
	cfg := raw

	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return Config{}, fmt.Errorf("api base URL must be http(s): %q", cfg.APIBaseURL)
	}

	cfg.StateDir = strings.TrimSpace(cfg.StateDir)
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory for state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".yt-study-copilot")
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}

	return cfg, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
