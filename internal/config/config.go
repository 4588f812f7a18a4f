package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	SnapshotPath       string
	AllowedOrigins     []string
	CheckpointInterval time.Duration
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultSnapshotPath       = "freshbulk.snapshot"
	defaultAllowedOrigins     = "http://localhost:5173"
	defaultCheckpointInterval = 0
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables, and flags, with flags taking precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	origins := getString(lookup, "ALLOWED_ORIGINS", defaultAllowedOrigins)
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		SnapshotPath:       getString(lookup, "SNAPSHOT_PATH", defaultSnapshotPath),
		CheckpointInterval: getDuration(lookup, "CHECKPOINT_INTERVAL", defaultCheckpointInterval),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("freshbulk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		checkpointIntervalStr = cfg.CheckpointInterval.String()
		shutdownTimeoutStr    = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.SnapshotPath, "f", cfg.SnapshotPath, "Snapshot file path")
	fs.StringVar(&origins, "origins", origins, "Comma-separated CORS origins")
	fs.StringVar(&checkpointIntervalStr, "checkpoint-interval", checkpointIntervalStr, "Interval between periodic checkpoints (0 disables)")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CheckpointInterval, err = time.ParseDuration(checkpointIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid checkpoint interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CheckpointInterval < 0 {
		cfg.CheckpointInterval = 0
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SnapshotPath == "" {
		return nil, fmt.Errorf("snapshot path must be provided")
	}

	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("at least one CORS origin must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
