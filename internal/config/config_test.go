package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gridgames/pkg/core"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	c := NewConfig()
	c.Sim = "ant"
	c.EnvFile = filepath.Join(t.TempDir(), "missing.env")
	cfg, err := c.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardSize != 60 || cfg.Interval != 10*time.Millisecond || cfg.MaxIterations != core.DefaultMaxIterations {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestResolveLayersEnvThenFlags(t *testing.T) {
	env := writeEnv(t, "CA_SIZE=80\nCA_INTERVAL_MS=120\nCA_UNTOUCHED=right\nOTHER=1\n")
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-sim", "ant", "-env", env, "-interval_ms", "30", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := c.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BoardSize != 80 {
		t.Fatalf("size=%d, expected the .env value", cfg.BoardSize)
	}
	if cfg.Interval != 30*time.Millisecond {
		t.Fatalf("interval=%v, expected the flag to win", cfg.Interval)
	}
	if cfg.UntouchedTurn != core.TurnRight {
		t.Fatalf("untouched=%v", cfg.UntouchedTurn)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed=%d", cfg.Seed)
	}
}

func TestReadEnvFiltersPrefix(t *testing.T) {
	path := writeEnv(t, "CA_MAX_ITERATIONS=50\nHOME=/tmp\n")
	got, err := ReadEnv(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["max_iterations"] != "50" {
		t.Fatalf("env = %v", got)
	}
}

func TestResolveUnknownSim(t *testing.T) {
	c := NewConfig()
	c.Sim = "hexlife"
	if _, err := c.Resolve(); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("log output %q", buf.String())
	}
	if _, err := NewLogger(&buf, "loud"); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
