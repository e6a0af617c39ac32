package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/arith"
	"github.com/cryptix/dntcnstrntm/internal/cli"
)

func newMultiplierCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiplier <a> <b> <product>",
		Short: "Wire a * b = product over three existing number cells",
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
			productID, err := sess.cellByName(args[2])
			if err != nil {
				return err
			}

			informant := cli.MustString(cmd, "informant")
			if err := arith.Multiplier(sess.net, aID, bID, productID, informant); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wired %s * %s = %s (informant=%s)\n", args[0], args[1], args[2], informant)
			return nil
		},
	}
	cmd.Flags().String("informant", "multiplier", "informant prefix tagging the three installed propagators")
	return cmd
}

func init() {
	cmd := newMultiplierCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
