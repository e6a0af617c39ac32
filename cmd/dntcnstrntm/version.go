package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags, e.g.:
//
//	go build -ldflags "-X main.VersionInfo=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	VersionInfo = "dev"
	GitCommit   = "unknown"
	BuildDate   = "unknown"
)

// Version is the version string reported by "dntcnstrntm --version".
const Version = "0.1.0"

type versionJSON struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version and build information",
		RunE:  runVersion,
	}
	cmd.Flags().Bool("json", false, "output version information in JSON format")
	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	goVersion := runtime.Version()
	if jsonOutput {
		return outputVersionJSON(cmd, goVersion)
	}
	return outputVersionText(cmd, goVersion)
}

func outputVersionJSON(cmd *cobra.Command, goVersion string) error {
	data, err := json.Marshal(versionJSON{
		Version:   VersionInfo,
		Commit:    GitCommit,
		BuildDate: BuildDate,
		GoVersion: goVersion,
	})
	if err != nil {
		return fmt.Errorf("marshaling version: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputVersionText(cmd *cobra.Command, goVersion string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dntcnstrntm version %s\n", VersionInfo)
	fmt.Fprintf(out, "  Commit:  %s\n", GitCommit)
	fmt.Fprintf(out, "  Built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  Go:      %s\n", goVersion)
	return nil
}

func init() {
	cmd := newVersionCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
