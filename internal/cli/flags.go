// Package cli holds small helpers shared by cmd/dntcnstrntm's subcommands:
// panic-on-programmer-error flag accessors and a destructive-action
// confirmation prompt, the same division of labor as the proof tool's own
// internal/cli.
package cli

import "github.com/spf13/cobra"

// MustString retrieves a string flag's value. Panics if name was never
// registered on cmd — a programming error caught the first time the
// command runs, not a condition callers should handle.
func MustString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("flag not registered: " + name)
	}
	return val
}

// MustBool retrieves a boolean flag's value. Panics if name was never
// registered on cmd.
func MustBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("flag not registered: " + name)
	}
	return val
}

// MustFloat64 retrieves a float64 flag's value. Panics if name was never
// registered on cmd.
func MustFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic("flag not registered: " + name)
	}
	return val
}

// MustStringSlice retrieves a string-slice flag's value. Panics if name was
// never registered on cmd.
func MustStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("flag not registered: " + name)
	}
	return val
}

// MustUint64 retrieves a uint64 flag's value. Panics if name was never
// registered on cmd.
func MustUint64(cmd *cobra.Command, name string) uint64 {
	val, err := cmd.Flags().GetUint64(name)
	if err != nil {
		panic("flag not registered: " + name)
	}
	return val
}
