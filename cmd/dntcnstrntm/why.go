package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/diagnose"
)

func newWhyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "why <cell>",
		Short: "Explain the justification behind a cell's active value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			id, err := sess.cellByName(name)
			if err != nil {
				return err
			}
			nodes, err := sess.net.ActiveNodes(id)
			if err != nil {
				return err
			}
			if len(nodes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no active belief\n", name)
				return nil
			}

			out := cmd.OutOrStdout()
			jtms := sess.net.JTMS()
			for _, node := range nodes {
				fmt.Fprintf(out, "node %s:\n", node)
				if just := jtms.Why(node); just != nil {
					fmt.Fprintf(out, "  informant: %s\n", just.Informant)
					fmt.Fprintf(out, "  supported by: %v\n", just.InList)
				} else if jtms.IsAssumption(node) {
					fmt.Fprintf(out, "  assumption (no justification)\n")
				}

				if cycle := diagnose.DetectSupportCycle(jtms, node); cycle.HasCycle {
					fmt.Fprintf(out, "  WARNING: %s\n", cycle.Error())
				}

				assumptions := diagnose.Assumptions(jtms, node)
				fmt.Fprintf(out, "  rests on assumptions: %v\n", assumptions)
			}
			return nil
		},
	}
	return cmd
}

func init() {
	cmd := newWhyCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
