// Package config resolves command-line flags and an optional .env file into
// a game configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// EnvPrefix marks the .env keys this package reads, e.g. CA_SIZE=80.
const EnvPrefix = "CA_"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim      string
	Scale    int
	Seed     int64
	EnvFile  string
	LogLevel string

	// Rule settings given on the command line, keyed like core.ApplyMap.
	overrides map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 8, EnvFile: ".env", LogLevel: "off", overrides: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the simulation RNG (0 picks one)")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "optional .env file with "+EnvPrefix+"* settings")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level: debug, info, warn, error or off")
	c.bindOverride(fs, "size", "board side length")
	c.bindOverride(fs, "interval_ms", "tick interval in milliseconds")
	c.bindOverride(fs, "max_iterations", "stop after this many ticks")
	c.bindOverride(fs, "seq_min", "shortest ant color sequence")
	c.bindOverride(fs, "seq_max", "longest ant color sequence")
	c.bindOverride(fs, "untouched", "ant turn on unvisited cells (none, right, around, left)")
	c.bindOverride(fs, "density_min", "lowest randomize density")
	c.bindOverride(fs, "density_max", "highest randomize density")
}

func (c *Config) bindOverride(fs *flag.FlagSet, key, usage string) {
	fs.Func(key, usage, func(v string) error {
		c.overrides[key] = v
		return nil
	})
}

// Set records a rule setting as if it was given on the command line.
func (c *Config) Set(key, value string) { c.overrides[key] = value }

// Resolve layers the variant defaults, the .env file and the command line, in
// that order. A missing .env file is not an error.
func (c *Config) Resolve() (core.Config, error) {
	cfg, err := game.DefaultConfig(c.Sim)
	if err != nil {
		return cfg, err
	}
	env, err := ReadEnv(c.EnvFile)
	if err != nil {
		return cfg, err
	}
	cfg = core.ApplyMap(cfg, env)
	cfg = core.ApplyMap(cfg, c.overrides)
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}

// ReadEnv loads path and returns its CA_* entries keyed like core.ApplyMap,
// e.g. CA_INTERVAL_MS becomes interval_ms.
func ReadEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		out[strings.ToLower(strings.TrimPrefix(k, EnvPrefix))] = v
	}
	return out, nil
}

// Logger builds the logger for the configured level, writing text records to
// stderr. Level "off" discards everything.
func (c *Config) Logger() (*slog.Logger, error) {
	return NewLogger(os.Stderr, c.LogLevel)
}

// NewLogger returns a text logger on w at level.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	if level == "" || level == "off" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, core.ErrInvalidConfig)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}
