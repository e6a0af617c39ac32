// Package obs wires the kernel's ambient observability: structured logging
// via zerolog and Prometheus metrics. Neither ever affects control flow —
// a Network behaves identically with logging/metrics disabled.
package obs

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing to w (os.Stderr if nil) at the
// given level. Mirrors the level-from-config pattern the proof tool's
// internal/config uses for its own tunables.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a config string ("debug", "info", "warn", ...) to a
// zerolog.Level, defaulting to zerolog.InfoLevel for an unrecognized or
// empty string.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
