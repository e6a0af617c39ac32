package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cryptix/dntcnstrntm/internal/config"
	"github.com/cryptix/dntcnstrntm/internal/fuzzy"
)

// cfg is the CLI's loaded configuration, populated before rootCmd.Execute
// runs (see the PersistentPreRunE below) from the --config flag or
// defaults.
var cfg = config.Default()

// unknownFlagPattern matches "unknown flag: --flagname" or "unknown
// shorthand flag: 'x' in -xyz", the same way the proof tool's cmd/af/root.go
// does for its own fuzzy flag suggestions.
var unknownFlagPattern = regexp.MustCompile(`unknown (?:shorthand )?flag: (?:'([^']+)' in )?-+(\w+)?`)

var rootCmd = &cobra.Command{
	Use:           "dntcnstrntm",
	Short:         "A belief-tracking constraint propagation kernel",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `dntcnstrntm drives a single in-process belief network: cells hold
lattice values justified by a truth maintenance system, propagators derive
new beliefs from existing ones, and retracting a belief cascades through
every derived consequence automatically.

The network lives only as long as the process, so separate shell
invocations do not share cells. Typical workflow, typed line by line at
the 'dntcnstrntm repl' prompt:
  1. Create cells:
       cell a --lattice number
       cell b --lattice number
       cell sum --lattice number

  2. Wire a constraint between them:
       adder a b sum --informant adder-1

  3. Add beliefs and watch them propagate:
       add a 3 sensor-a
       add b 4 sensor-b
       read sum

  4. Retract a belief and watch derived consequences disappear:
       retract a sensor-a
       read sum

  Run 'dntcnstrntm <command> --help' for details on any one subcommand.`,
	Version: Version,
	// PersistentPreRunE loads config and builds the process-lifetime
	// session exactly once. The repl subcommand re-enters rootCmd.Execute
	// for every line a user types, and each of those must see the SAME
	// session — only the very first Execute call (the process's own
	// invocation, or the repl's first line) gets to rebuild it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if sessionInitialized {
			return nil
		}
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
			loaded.MetricsAddr = addr
		}
		if isVerbose(cmd) {
			loaded.LogLevel = "debug"
		}
		cfg = loaded
		sess = newSession()
		sessionInitialized = true
		return nil
	},
}

// isVerbose reports whether the --verbose persistent flag is set.
func isVerbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

var sessionInitialized bool

func init() {
	rootCmd.SetVersionTemplate("dntcnstrntm version {{.Version}}\n")
	rootCmd.PersistentFlags().String("config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
	rootCmd.PersistentFlags().String("metrics-addr", "", "address to serve Prometheus /metrics on (overrides config)")

	AddFuzzyMatchingRecursive(rootCmd)
}

// commandNames lists every registered subcommand name, for the repl's
// fuzzy "did you mean" suggestions.
func commandNames() []string {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		if !sub.Hidden && sub.Name() != "help" {
			names = append(names, sub.Name())
		}
	}
	return names
}

// AddFuzzyMatching configures cmd to suggest a close subcommand name when
// an unknown one is entered, and a close flag name on an unknown-flag
// error — ported from the proof tool's cmd/af/root.go, repointed at this
// kernel's internal/fuzzy package.
func AddFuzzyMatching(cmd *cobra.Command) {
	originalRunE := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if originalRunE != nil {
			return originalRunE(c, args)
		}
		if len(args) > 0 {
			return unknownCommandError(c, args[0])
		}
		return c.Help()
	}
	cmd.SetFlagErrorFunc(flagErrorWithSuggestions)
}

func flagErrorWithSuggestions(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	matches := unknownFlagPattern.FindStringSubmatch(errStr)
	if matches == nil {
		return err
	}

	unknownFlag := matches[2]
	if unknownFlag == "" && matches[1] != "" {
		unknownFlag = matches[1]
	}
	if unknownFlag == "" {
		return err
	}

	candidates := collectFlags(cmd)
	if len(candidates) == 0 {
		return err
	}

	result := fuzzy.SuggestFlag(unknownFlag, candidates)
	suggestions := result.Suggestions
	if result.AutoCorrect {
		suggestions = []string{result.Match}
	}

	var msg strings.Builder
	msg.WriteString(errStr)
	if len(suggestions) > 0 {
		msg.WriteString("\n\nDid you mean")
		if len(suggestions) == 1 {
			msg.WriteString(fmt.Sprintf(": --%s", suggestions[0]))
		} else {
			msg.WriteString(" one of these?")
			for _, s := range suggestions {
				msg.WriteString(fmt.Sprintf("\n  --%s", s))
			}
		}
	}
	return fmt.Errorf("%s", msg.String())
}

func collectFlags(cmd *cobra.Command) []string {
	flags := make(map[string]bool)
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			flags[f.Name] = true
		}
	})
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			flags[f.Name] = true
		}
	})
	result := make([]string, 0, len(flags))
	for name := range flags {
		result = append(result, name)
	}
	return result
}

func unknownCommandError(cmd *cobra.Command, unknown string) error {
	candidates := make([]string, 0)
	for _, sub := range cmd.Commands() {
		if !sub.Hidden && sub.Name() != "help" {
			candidates = append(candidates, sub.Name())
		}
	}

	result := fuzzy.SuggestCommand(unknown, candidates)
	suggestions := result.Suggestions
	if result.AutoCorrect {
		suggestions = []string{result.Match}
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("unknown command %q for %q", unknown, cmd.Name()))
	if len(suggestions) > 0 {
		msg.WriteString("\n\nDid you mean")
		if len(suggestions) == 1 {
			msg.WriteString(fmt.Sprintf(": %s", suggestions[0]))
		} else {
			msg.WriteString(" one of these?")
			for _, s := range suggestions {
				msg.WriteString(fmt.Sprintf("\n  %s", s))
			}
		}
	}
	return fmt.Errorf("%s", msg.String())
}

// AddFuzzyMatchingRecursive wires AddFuzzyMatching onto cmd and every
// subcommand registered under it so far. Subcommands registered by a later
// init() (cobra's usual pattern, which this CLI follows) must call
// AddFuzzyMatching on themselves if added after this runs; every
// subcommand file in this package does so in its own init().
func AddFuzzyMatchingRecursive(cmd *cobra.Command) {
	AddFuzzyMatching(cmd)
	for _, sub := range cmd.Commands() {
		AddFuzzyMatchingRecursive(sub)
	}
}

// enhanceUnknownCommandError appends usage examples to cobra's unknown
// command errors, the way the proof tool's cmd/af/main.go does.
var suggestionPattern = regexp.MustCompile(`Did you mean (?:this|one of these)\?\s*\n((?:\s*[\w-]+\s*\n?)+)`)

func enhanceUnknownCommandError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	matches := suggestionPattern.FindStringSubmatch(errStr)
	if matches == nil {
		return err
	}

	suggestions := strings.Fields(matches[1])
	if len(suggestions) == 0 {
		return err
	}

	subCmds := make(map[string]*cobra.Command)
	for _, sub := range cmd.Commands() {
		if !sub.Hidden && sub.Name() != "help" {
			subCmds[sub.Name()] = sub
		}
	}

	var usageLines []string
	for _, s := range suggestions {
		if subCmd, ok := subCmds[s]; ok && subCmd.Use != "" {
			usageLines = append(usageLines, fmt.Sprintf("  %s %s", cmd.CommandPath(), subCmd.Use))
		}
	}
	if len(usageLines) == 0 {
		return err
	}

	return fmt.Errorf("%s\n\nUsage:\n%s", errStr, strings.Join(usageLines, "\n"))
}
