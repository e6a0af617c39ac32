package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/cli"
	"github.com/cryptix/dntcnstrntm/internal/lattice"
)

func newCellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cell <name>",
		Short: "Create a named cell over a lattice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, exists := sess.names[name]; exists {
				return fmt.Errorf("cell %q already exists", name)
			}

			latticeName := cli.MustString(cmd, "lattice")
			lat, err := latticeByName(latticeName)
			if err != nil {
				return err
			}
			if nl, ok := lat.(lattice.NumberLattice); ok {
				if epsilon := cli.MustFloat64(cmd, "epsilon"); epsilon != 0 {
					nl.Epsilon = epsilon
					lat = nl
				}
			}

			id := sess.net.CreateCell(lat)
			sess.names[name] = id
			sess.lattices[name] = lat
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (lattice=%s)\n", name, id, latticeName)
			return nil
		},
	}
	cmd.Flags().String("lattice", "number", `lattice for the new cell: "number" or "set"`)
	cmd.Flags().Float64("epsilon", 0, "override the number lattice's equality tolerance (0 uses the session default)")
	return cmd
}

func init() {
	cmd := newCellCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
