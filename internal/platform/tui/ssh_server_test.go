package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveHostKeyPathCreatesDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}

	info, err := os.Stat(filepath.Dir(want))
	if err != nil {
		t.Fatalf("key directory should exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("key directory should be a directory")
	}
}

func TestResolveHostKeyPathDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolveHostKeyPath("")
	if err != nil {
		t.Fatalf("resolveHostKeyPath: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "host_key"); got != want {
		t.Errorf("path = %q, expected %q", got, want)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("idle timeout = %v, expected 30m", cfg.IdleTimeout)
	}
	if cfg.TickRate != 60 {
		t.Errorf("tick rate = %d, expected 60", cfg.TickRate)
	}
}
