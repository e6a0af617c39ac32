package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <cell>",
		Short: "Print a cell's active value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			id, err := sess.cellByName(name)
			if err != nil {
				return err
			}
			active, err := sess.net.ReadCell(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, active)
			return nil
		},
	}
	return cmd
}

func init() {
	cmd := newReadCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
