// Package export renders a network.Snapshot to an output format, the way
// the proof tool's internal/export dispatches a proof state to
// markdown/LaTeX — here the only destination format is JSON, since a
// snapshot's purpose is machine consumption (tooling, the "export" CLI
// subcommand piping into jq) rather than a human-readable document.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cryptix/dntcnstrntm/internal/network"
)

// ValidateFormat checks if the given format string is valid. Only "json"
// is supported today; the function exists so a future format can be added
// without changing every call site's error handling.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "json":
		return nil
	default:
		return fmt.Errorf("invalid export format %q: must be one of: json", format)
	}
}

// ToJSON renders snap as indented JSON.
func ToJSON(snap network.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot: %w", err)
	}
	return string(data), nil
}

// Export renders n's current snapshot in the given format.
func Export(n *network.Network, format string) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}
	return ToJSON(n.Snapshot())
}
