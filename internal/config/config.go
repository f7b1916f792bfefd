// SPDX-License-Identifier: EPL-2.0

// Package config holds the extract-lector settings. Defaults are overridden
// by LECTORX_* environment variables, and those by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ik5/lectorx/align"
	"github.com/ik5/lectorx/lag"
	"github.com/ik5/lectorx/mix"
	"github.com/ik5/lectorx/signal"
)

// Config holds all runtime configuration.
type Config struct {
	// Lag search
	MaxLag   int
	FixedLag *int // manual lag override; nil searches
	Scoring  string
	Method   string
	Workers  int

	// Alignment and combination
	Align  string
	Policy string

	// Tracks
	Rate          int // Hz, used for ms reporting, WAV output and container checks
	InputChannels int // interleaved channels of raw inputs

	// Output
	LogLevel  string
	LogFormat string
	Quiet     bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxLag:        signal.DefaultSampleRate,
		Scoring:       "raw",
		Method:        "direct",
		Workers:       1,
		Align:         "skip",
		Policy:        "halving",
		Rate:          signal.DefaultSampleRate,
		InputChannels: 1,
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// Load returns Default overridden by the environment.
func Load() Config {
	d := Default()

	cfg := Config{
		MaxLag:        envInt("LECTORX_MAX_LAG", d.MaxLag),
		FixedLag:      envIntPtr("LECTORX_LAG"),
		Scoring:       envStr("LECTORX_SCORING", d.Scoring),
		Method:        envStr("LECTORX_METHOD", d.Method),
		Workers:       envInt("LECTORX_WORKERS", d.Workers),
		Align:         envStr("LECTORX_ALIGN", d.Align),
		Policy:        envStr("LECTORX_POLICY", d.Policy),
		Rate:          envInt("LECTORX_RATE", d.Rate),
		InputChannels: envInt("LECTORX_INPUT_CHANNELS", d.InputChannels),
		LogLevel:      envStr("LECTORX_LOG_LEVEL", d.LogLevel),
		LogFormat:     envStr("LECTORX_LOG_FORMAT", d.LogFormat),
		Quiet:         envBool("LECTORX_QUIET", d.Quiet),
	}

	return cfg
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.MaxLag < 0 {
		errs = append(errs, fmt.Errorf("max lag %d: %w", c.MaxLag, lag.ErrNegativeWindow))
	}
	if c.FixedLag != nil {
		if _, err := (lag.Fixed{Value: *c.FixedLag, MaxLag: c.MaxLag}).Lag(nil, nil); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := lag.ParseScoring(c.Scoring); err != nil {
		errs = append(errs, fmt.Errorf("scoring: %w", err))
	}
	if _, err := lag.ParseMethod(c.Method); err != nil {
		errs = append(errs, fmt.Errorf("method: %w", err))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if _, err := align.ParseStrategy(c.Align); err != nil {
		errs = append(errs, fmt.Errorf("align: %w", err))
	}
	if _, err := mix.ParsePolicy(c.Policy); err != nil {
		errs = append(errs, fmt.Errorf("policy: %w", err))
	}
	if c.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate must be positive, got %d", c.Rate))
	}
	if c.InputChannels != 1 && c.InputChannels != 2 {
		errs = append(errs, fmt.Errorf("input channels must be 1 or 2, got %d", c.InputChannels))
	}
	switch strings.ToLower(strings.TrimSpace(c.LogFormat)) {
	case "console", "json", "":
	default:
		errs = append(errs, fmt.Errorf("log format: unsupported value %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// LagStrategy builds the lag.Strategy the settings describe. progress may
// be nil.
func (c Config) LagStrategy(progress func(done, total int)) (lag.Strategy, error) {
	if c.FixedLag != nil {
		return lag.Fixed{Value: *c.FixedLag, MaxLag: c.MaxLag}, nil
	}

	scoring, err := lag.ParseScoring(c.Scoring)
	if err != nil {
		return nil, err
	}
	method, err := lag.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}

	return lag.Correlator{
		MaxLag:   c.MaxLag,
		Scoring:  scoring,
		Method:   method,
		Workers:  c.Workers,
		Progress: progress,
	}, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envIntPtr(key string) *int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
