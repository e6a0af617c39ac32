// Package config loads the tunables the demo CLI (cmd/dntcnstrntm) uses to
// configure a Network: log level, a numeric-lattice epsilon override, and a
// backtracking node-visit cap. No part of the kernel itself depends on a
// config file existing — this is consumed only by the CLI, the same way
// the proof tool's internal/config is consumed only by its own cmd/af.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultBacktrackVisitCap bounds how many assignment attempts
// solver.Solve will make before giving up, so a pathological CLI input
// can't hang the demo forever.
const DefaultBacktrackVisitCap = 1_000_000

// Config holds CLI-level tunables for a dntcnstrntm session.
type Config struct {
	// LogLevel is a zerolog level string: "debug", "info", "warn", "error".
	LogLevel string `json:"log_level"`

	// Epsilon overrides lattice.DefaultEpsilon when non-zero.
	Epsilon float64 `json:"epsilon"`

	// BacktrackVisitCap overrides DefaultBacktrackVisitCap when non-zero.
	BacktrackVisitCap int `json:"backtrack_visit_cap"`

	// MetricsAddr, when non-empty, is the address the CLI's serveMetrics
	// helper binds for a Prometheus /metrics endpoint.
	MetricsAddr string `json:"metrics_addr,omitempty"`
}

// Default returns a Config populated with the kernel's defaults.
func Default() Config {
	return Config{
		LogLevel:          "info",
		Epsilon:           0,
		BacktrackVisitCap: DefaultBacktrackVisitCap,
	}
}

// Load reads and parses a JSON config file at path, filling any missing
// fields with defaults. An empty path returns Default() directly — a
// missing config file is not an error for this CLI.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if loaded.LogLevel != "" {
		cfg.LogLevel = loaded.LogLevel
	}
	if loaded.Epsilon != 0 {
		cfg.Epsilon = loaded.Epsilon
	}
	if loaded.BacktrackVisitCap != 0 {
		cfg.BacktrackVisitCap = loaded.BacktrackVisitCap
	}
	if loaded.MetricsAddr != "" {
		cfg.MetricsAddr = loaded.MetricsAddr
	}

	return cfg, nil
}
