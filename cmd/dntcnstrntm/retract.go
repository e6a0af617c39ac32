package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/types"
)

func newRetractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retract <cell> <informant>",
		Short: "Retract a belief and print the cell's active value afterward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, informant := args[0], args[1]

			id, err := sess.cellByName(name)
			if err != nil {
				return err
			}
			if err := sess.net.RetractContent(id, types.Informant(informant)); err != nil {
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
	cmd := newRetractCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
