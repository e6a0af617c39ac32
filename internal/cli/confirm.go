package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotInteractive indicates stdin is not a terminal, so a confirmation
// prompt cannot be answered interactively.
var ErrNotInteractive = errors.New("stdin is not a terminal")

// ConfirmAction prompts the user to confirm a destructive action (retract
// on a cell with many dependents, for instance). If skipConfirm is true
// (the CLI's --yes flag), it returns true without prompting.
func ConfirmAction(out io.Writer, action string, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}
	if err := requireInteractiveStdin(os.Stdin, action); err != nil {
		return false, err
	}
	return confirmFromReader(out, os.Stdin, action)
}

// ConfirmActionWithReader is ConfirmAction without the terminal check, for
// tests that supply their own reader.
func ConfirmActionWithReader(out io.Writer, in io.Reader, action string, skipConfirm bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}
	return confirmFromReader(out, in, action)
}

func requireInteractiveStdin(stdin *os.File, action string) error {
	stat, err := stdin.Stat()
	if err != nil {
		return fmt.Errorf("%w: use --yes to confirm %s non-interactively", ErrNotInteractive, action)
	}
	mode := stat.Mode()
	isTerminal := mode&os.ModeCharDevice != 0
	isPipe := mode&os.ModeNamedPipe != 0
	if !isTerminal || isPipe {
		return fmt.Errorf("%w: use --yes to confirm %s non-interactively", ErrNotInteractive, action)
	}
	return nil
}

func confirmFromReader(out io.Writer, in io.Reader, action string) (bool, error) {
	fmt.Fprintf(out, "Are you sure you want to %s? [y/N]: ", action)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, ErrNotInteractive
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
