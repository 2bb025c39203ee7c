package config

import (
	"strings"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.SSHAddr != "localhost:2222" {
		t.Errorf("SSHAddr = %q, expected localhost:2222", e.SSHAddr)
	}
	if e.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", e.FPS)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MAZE_DB_PATH", "/tmp/m.db")
	t.Setenv("MAZE_LOG_LEVEL", "debug")
	t.Setenv("MAZE_FPS", "60")
	t.Setenv("MAZE_MONO", "true")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.DBPath != "/tmp/m.db" || e.LogLevel != "debug" || e.FPS != 60 || !e.Mono {
		t.Errorf("LoadEnv() = %+v", e)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("MAZE_FPS", "fast")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
