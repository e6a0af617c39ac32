package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/network"
	"github.com/cryptix/dntcnstrntm/internal/obs"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// session holds the one live Network a CLI process works against. Every
// subcommand invocation within the same process (in particular, every line
// typed at the "repl" subcommand) shares it, so a named cell created by one
// invocation is visible to the next — the CLI's only notion of state is
// "still the same process", since persistent storage is explicitly out of
// scope for the kernel.
type session struct {
	net      *network.Network
	names    map[string]types.CellID
	lattices map[string]lattice.Lattice
}

var sess = newSession()

func newSession() *session {
	logger := obs.NewLogger(nil, obs.ParseLevel(cfg.LogLevel))
	opts := []network.Option{network.WithLogger(logger), network.WithHistory(1000)}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, network.WithMetrics(obs.NewMetrics(reg)))
		serveMetrics(cfg.MetricsAddr, reg, logger)
	}

	return &session{
		net:      network.New(opts...),
		names:    make(map[string]types.CellID),
		lattices: make(map[string]lattice.Lattice),
	}
}

// serveMetrics starts a background HTTP server exposing reg's collectors
// at /metrics, for the --config "metrics_addr" setting. A failure to bind
// is logged, not fatal — the CLI's main purpose is driving the network,
// not serving metrics.
func serveMetrics(addr string, reg *prometheus.Registry, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
}

// cellByName resolves a user-facing cell name to its id, or an error
// naming the unknown cell.
func (s *session) cellByName(name string) (types.CellID, error) {
	id, ok := s.names[name]
	if !ok {
		return 0, fmt.Errorf("unknown cell %q (create it first with \"cell %s --lattice ...\")", name, name)
	}
	return id, nil
}

// latticeOf returns the lattice a named cell was created with, so add/read
// commands can parse raw CLI strings into the right lattice.Value kind.
func (s *session) latticeOf(name string) (lattice.Lattice, error) {
	lat, ok := s.lattices[name]
	if !ok {
		return nil, fmt.Errorf("unknown cell %q", name)
	}
	return lat, nil
}

// latticeByName maps a --lattice flag value to a concrete lattice.Lattice.
func latticeByName(name string) (lattice.Lattice, error) {
	switch strings.ToLower(name) {
	case "number", "num", "n":
		return lattice.NumberLattice{Epsilon: cfg.Epsilon}, nil
	case "set", "s":
		return lattice.SetLattice{}, nil
	default:
		return nil, fmt.Errorf("unknown lattice %q: must be \"number\" or \"set\"", name)
	}
}

// parseValue parses a CLI value string into a lattice.Value appropriate for
// lat: a float for NumberLattice, a comma-separated member list for
// SetLattice.
func parseValue(lat lattice.Lattice, raw string) (lattice.Value, error) {
	switch lat.(type) {
	case lattice.NumberLattice:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing number value %q: %w", raw, err)
		}
		return lattice.Number(f), nil
	case lattice.SetLattice:
		members := strings.Split(raw, ",")
		for i, m := range members {
			members[i] = strings.TrimSpace(m)
		}
		return lattice.NewSet(members...), nil
	default:
		return nil, fmt.Errorf("unsupported lattice type")
	}
}
