package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/cli"
)

func newCompactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Discard long-out, unreferenced beliefs to bound memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			confirmed, err := cli.ConfirmAction(out, "permanently discard long-retracted belief history", cli.MustBool(cmd, "yes"))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(out, "aborted")
				return nil
			}

			dropped := sess.net.Compact()
			fmt.Fprintf(out, "discarded %d beliefs\n", dropped)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}

func init() {
	cmd := newCompactCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
