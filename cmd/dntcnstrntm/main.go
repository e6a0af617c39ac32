// Command dntcnstrntm is a CLI front end for a single in-process belief
// network: create cells and propagators, add and retract beliefs, read a
// cell's active value, run the constraint solver, and inspect a belief's
// justification chain.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		enhanced := enhanceUnknownCommandError(rootCmd, err)
		fmt.Fprintln(os.Stderr, enhanced)
		os.Exit(1)
	}
}
