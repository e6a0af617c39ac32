package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/types"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <cell> <value> <informant>",
		Short: "Add a belief to a cell and print its resulting active value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, raw, informant := args[0], args[1], args[2]

			id, err := sess.cellByName(name)
			if err != nil {
				return err
			}
			lat, err := sess.latticeOf(name)
			if err != nil {
				return err
			}
			value, err := parseValue(lat, raw)
			if err != nil {
				return err
			}

			if err := sess.net.AddContent(id, value, types.Informant(informant)); err != nil {
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
	cmd := newAddCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
