package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/arith"
	"github.com/cryptix/dntcnstrntm/internal/cli"
)

func newAdderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adder <a> <b> <sum>",
		Short: "Wire a + b = sum over three existing number cells",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			aID, err := sess.cellByName(args[0])
			if err != nil {
				return err
			}
			bID, err := sess.cellByName(args[1])
			if err != nil {
				return err
			}
			sumID, err := sess.cellByName(args[2])
			if err != nil {
				return err
			}

			informant := cli.MustString(cmd, "informant")
			if err := arith.Adder(sess.net, aID, bID, sumID, informant); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wired %s + %s = %s (informant=%s)\n", args[0], args[1], args[2], informant)
			return nil
		},
	}
	cmd.Flags().String("informant", "adder", "informant prefix tagging the three installed propagators")
	return cmd
}

func init() {
	cmd := newAdderCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
