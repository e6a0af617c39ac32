package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/cli"
	"github.com/cryptix/dntcnstrntm/internal/export"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the session's network as a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cli.MustString(cmd, "format")
			out, err := export.Export(sess.net, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().String("format", "json", "output format")
	return cmd
}

func init() {
	cmd := newExportCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
