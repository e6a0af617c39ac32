package main

import (
	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/repl"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session sharing one network across commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := repl.New(
				repl.WithCommands(commandNames()),
				repl.WithExecutor(func(args []string) error {
					rootCmd.SetArgs(args)
					return rootCmd.Execute()
				}),
			)
			return shell.Run()
		},
	}
	return cmd
}

func init() {
	cmd := newReplCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
