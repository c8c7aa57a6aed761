package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env         string
	ListenAddr  string
	DatabaseURL string
	// MaxConns caps concurrent HTTP connections; 0 means unlimited.
	MaxConns int

	ProfilesDir   string
	ProfilesWatch bool

	SweepWorkers  int
	SweepInterval time.Duration
	SweepBatch    int
	SweepRecheck  time.Duration

	NATSURL           string
	NATSSubjectPrefix string

	LogLevel  string
	LogFormat string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads configuration from the environment. A missing DATABASE_URL is
// reported as an error alongside a usable config so callers can decide
// whether to run without persistence.
func Load() (Config, error) {
	cfg := Config{
		Env:               getenv("APP_ENV", "development"),
		ListenAddr:        getenv("LISTEN_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MaxConns:          getenvInt("MAX_CONNS", 0),
		ProfilesDir:       os.Getenv("PROFILES_DIR"),
		ProfilesWatch:     getenvBool("PROFILES_WATCH", false),
		SweepWorkers:      getenvInt("SWEEP_WORKERS", 2),
		SweepInterval:     getenvDuration("SWEEP_INTERVAL", time.Minute),
		SweepBatch:        getenvInt("SWEEP_BATCH", 50),
		SweepRecheck:      getenvDuration("SWEEP_RECHECK", 15*time.Minute),
		NATSURL:           os.Getenv("NATS_URL"),
		NATSSubjectPrefix: getenv("NATS_SUBJECT_PREFIX", "cases.escalated"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		LogFormat:         getenv("LOG_FORMAT", "text"),
	}
	if cfg.DatabaseURL == "" {
		// Not fatal: scoring endpoints work without a case store.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseBool(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil && out > 0 {
			return out
		}
	}
	return def
}
