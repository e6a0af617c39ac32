// Package repl provides the interactive shell behind `dntcnstrntm repl`, the
// way the proof tool's internal/shell backs its own interactive mode: a
// read-eval-print loop that parses a line into a command and arguments and
// either handles it as a builtin or hands it to an Executor (the cobra root
// command, in production).
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cryptix/dntcnstrntm/internal/fuzzy"
)

// ErrExit is returned by Execute (from executeBuiltin) when the user asks to leave
// the shell.
var ErrExit = errors.New("exit requested")

// Shell is an interactive REPL session.
type Shell struct {
	Prompt string

	// Executor runs a non-builtin command line's arguments (typically the
	// cobra root command's Execute, with the arguments set via SetArgs).
	Executor func(args []string) error

	// Commands lists the known subcommand names, used only to offer fuzzy
	// "did you mean" suggestions when Executor returns an unknown-command
	// error.
	Commands []string

	input   io.Reader
	output  io.Writer
	scanner *bufio.Scanner
}

// Option configures a Shell at construction.
type Option func(*Shell)

func WithPrompt(prompt string) Option        { return func(s *Shell) { s.Prompt = prompt } }
func WithInput(r io.Reader) Option           { return func(s *Shell) { s.input = r } }
func WithOutput(w io.Writer) Option          { return func(s *Shell) { s.output = w } }
func WithExecutor(f func([]string) error) Option {
	return func(s *Shell) { s.Executor = f }
}
func WithCommands(names []string) Option { return func(s *Shell) { s.Commands = names } }

// New returns a Shell with the given options applied over sensible
// defaults (prompt "dntcnstrntm> ", stdin/stdout).
func New(opts ...Option) *Shell {
	s := &Shell{
		Prompt: "dntcnstrntm> ",
		input:  os.Stdin,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads lines until EOF or an exit command, executing each.
func (s *Shell) Run() error {
	s.scanner = bufio.NewScanner(s.input)

	for {
		fmt.Fprint(s.output, s.Prompt)

		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			fmt.Fprintln(s.output)
			return nil
		}

		if err := s.Execute(s.scanner.Text()); err != nil {
			if err == ErrExit {
				return nil
			}
			fmt.Fprintf(s.output, "error: %v\n", s.withSuggestion(err))
		}
	}
}

// Execute parses and runs one line.
func (s *Shell) Execute(line string) error {
	cmd, args := ParseLine(line)
	if cmd == "" {
		return nil
	}
	if IsBuiltin(cmd) {
		return s.executeBuiltin(cmd)
	}
	if s.Executor == nil {
		return fmt.Errorf("no executor configured for command: %s", cmd)
	}
	return s.Executor(append([]string{cmd}, args...))
}

func (s *Shell) executeBuiltin(cmd string) error {
	switch strings.ToLower(cmd) {
	case "help":
		s.printHelp()
		return nil
	case "exit", "quit":
		return ErrExit
	default:
		return fmt.Errorf("unknown builtin command: %s", cmd)
	}
}

// withSuggestion appends a fuzzy "did you mean" hint to err when it looks
// like an unknown-command error and a close match exists among s.Commands.
func (s *Shell) withSuggestion(err error) error {
	if len(s.Commands) == 0 {
		return err
	}
	msg := err.Error()
	const marker = "unknown command"
	idx := strings.Index(msg, marker)
	if idx < 0 {
		return err
	}
	fields := strings.Fields(msg[idx:])
	if len(fields) < 3 {
		return err
	}
	unknown := strings.Trim(fields[2], "\"'")

	result := fuzzy.SuggestCommand(unknown, s.Commands)
	if len(result.Suggestions) == 0 && result.Match == "" {
		return err
	}
	if result.AutoCorrect {
		return fmt.Errorf("%s (did you mean %q?)", err, result.Match)
	}
	return fmt.Errorf("%s (did you mean one of %v?)", err, result.Suggestions)
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.output, `Interactive dntcnstrntm shell

Builtins:
  help        Show this help message
  exit, quit  Leave the shell

Any other line is run as a dntcnstrntm subcommand, without the
"dntcnstrntm" prefix — e.g. "read cell-1" runs "dntcnstrntm read cell-1".
`)
}

// ParseLine splits a line into a command and its arguments on whitespace.
func ParseLine(line string) (cmd string, args []string) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// IsBuiltin reports whether cmd names a shell builtin.
func IsBuiltin(cmd string) bool {
	switch strings.ToLower(cmd) {
	case "help", "exit", "quit":
		return true
	default:
		return false
	}
}
