package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestLoadDefaultsMatchDefault(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "DEAD_ZONE", "MIN_ZOOM", "MAX_ZOOM", "ROTATE_SNAP_DEGREES", "HISTORY_ENABLED"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEAD_ZONE", "8")
	t.Setenv("HISTORY_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DeadZone != 8 {
		t.Errorf("DeadZone = %v, want 8", cfg.DeadZone)
	}
	if cfg.HistoryEnabled {
		t.Error("HistoryEnabled should be false")
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("MAX_ZOOM", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric MAX_ZOOM")
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "chatty"
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
}
