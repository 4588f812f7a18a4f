package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("expected default run address %q, got %q", defaultRunAddress, cfg.RunAddress)
	}
	if cfg.SnapshotPath != defaultSnapshotPath {
		t.Errorf("expected default snapshot path %q, got %q", defaultSnapshotPath, cfg.SnapshotPath)
	}
	if cfg.CheckpointInterval != 0 {
		t.Errorf("expected periodic checkpointing disabled by default, got %v", cfg.CheckpointInterval)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("expected default shutdown timeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != defaultAllowedOrigins {
		t.Errorf("expected default origin %q, got %v", defaultAllowedOrigins, cfg.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":         ":3000",
		"SNAPSHOT_PATH":       "/var/lib/freshbulk/store.snapshot",
		"ALLOWED_ORIGINS":     "https://shop.example.com, https://www.shop.example.com",
		"CHECKPOINT_INTERVAL": "5m",
		"SHUTDOWN_TIMEOUT":    "30s",
	}

	cfg, err := load(nil, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":3000" {
		t.Errorf("expected run address :3000, got %q", cfg.RunAddress)
	}
	if cfg.SnapshotPath != "/var/lib/freshbulk/store.snapshot" {
		t.Errorf("unexpected snapshot path %q", cfg.SnapshotPath)
	}
	if cfg.CheckpointInterval != 5*time.Minute {
		t.Errorf("expected 5m checkpoint interval, got %v", cfg.CheckpointInterval)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected 30s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://www.shop.example.com" {
		t.Errorf("expected two trimmed origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadFlagOverridesBeatEnv(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":   ":3000",
		"SNAPSHOT_PATH": "/env/path",
	}

	args := []string{
		"-a", ":9090",
		"-f", "/flag/path",
		"-origins", "https://flag.example.com",
		"-checkpoint-interval", "90s",
		"-shutdown-timeout", "20s",
	}

	cfg, err := load(args, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("expected run address :9090, got %q", cfg.RunAddress)
	}
	if cfg.SnapshotPath != "/flag/path" {
		t.Errorf("expected flag snapshot path, got %q", cfg.SnapshotPath)
	}
	if cfg.CheckpointInterval != 90*time.Second {
		t.Errorf("expected 90s interval, got %v", cfg.CheckpointInterval)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://flag.example.com" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	if _, err := load([]string{"-checkpoint-interval", "soon"}, func(string) (string, bool) { return "", false }); err == nil {
		t.Fatal("expected error for unparseable interval")
	}
	if _, err := load([]string{"-f", ""}, func(string) (string, bool) { return "", false }); err == nil {
		t.Fatal("expected error for empty snapshot path")
	}
	if _, err := load([]string{"-origins", " , "}, func(string) (string, bool) { return "", false }); err == nil {
		t.Fatal("expected error for empty origins list")
	}
}

func TestLoadNegativeIntervalDisablesCheckpointing(t *testing.T) {
	cfg, err := load([]string{"-checkpoint-interval", "-5s"}, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("load returned unexpected error: %v", err)
	}
	if cfg.CheckpointInterval != 0 {
		t.Errorf("expected negative interval coerced to 0, got %v", cfg.CheckpointInterval)
	}
}
