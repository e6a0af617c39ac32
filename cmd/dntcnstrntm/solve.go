package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/cli"
	"github.com/cryptix/dntcnstrntm/internal/solver"
)

// solveProblem is the on-disk shape of a CSP handed to "dntcnstrntm solve".
// Domain selects which of the two generic solver.Problem instantiations to
// build: "number" (float64 domains, constraints given as expr-lang strings
// over the two endpoint variable names) or "string" (discrete domains,
// constraints restricted to "eq"/"neq", the shape a map-coloring problem
// needs).
type solveProblem struct {
	Domain      string            `json:"domain"`
	Variables   map[string][]any  `json:"variables"`
	Constraints []solveConstraint `json:"constraints"`
}

// solveConstraint is either a binary arc constraint (Y set) or a unary,
// scope-1 constraint on X alone (Y empty) — see solver.Problem's
// AddConstraint vs. AddUnaryConstraint.
type solveConstraint struct {
	X     string `json:"x"`
	Y     string `json:"y,omitempty"`
	Expr  string `json:"expr,omitempty"`
	Op    string `json:"op,omitempty"`
	Const any    `json:"const,omitempty"`
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve --file <problem.json>",
		Short: "Run the AC-3 + backtracking solver against a CSP loaded from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cli.MustString(cmd, "file")
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			var def solveProblem
			if err := json.Unmarshal(data, &def); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			switch def.Domain {
			case "number":
				return solveNumberProblem(out, def)
			case "string", "":
				return solveStringProblem(out, def)
			default:
				return fmt.Errorf("unknown domain %q: must be \"number\" or \"string\"", def.Domain)
			}
		},
	}
	cmd.Flags().String("file", "", "path to a JSON problem file (required)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func solveNumberProblem(out io.Writer, def solveProblem) error {
	p := solver.NewProblem[float64]()
	p.VisitCap = cfg.BacktrackVisitCap
	for name, raw := range def.Variables {
		values := make([]float64, 0, len(raw))
		for _, v := range raw {
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("variable %q: domain values must be numbers for domain=\"number\"", name)
			}
			values = append(values, f)
		}
		p.AddVar(solver.Var(name), solver.NewDomain(values...))
	}
	for _, c := range def.Constraints {
		if c.Y == "" {
			check, err := solver.CompileUnaryPredicate(c.Expr, c.X)
			if err != nil {
				return fmt.Errorf("constraint %s: %w", c.X, err)
			}
			p.AddUnaryConstraint(solver.Var(c.X), check)
			continue
		}
		check, err := solver.CompilePredicate(c.Expr, c.X, c.Y)
		if err != nil {
			return fmt.Errorf("constraint %s/%s: %w", c.X, c.Y, err)
		}
		p.AddConstraint(solver.Var(c.X), solver.Var(c.Y), check)
	}

	solution, err := solver.Solve(p)
	if err != nil {
		return err
	}
	return printSolution(out, solution)
}

func solveStringProblem(out io.Writer, def solveProblem) error {
	p := solver.NewProblem[string]()
	p.VisitCap = cfg.BacktrackVisitCap
	for name, raw := range def.Variables {
		values := make([]string, 0, len(raw))
		for _, v := range raw {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("variable %q: domain values must be strings for domain=\"string\"", name)
			}
			values = append(values, s)
		}
		p.AddVar(solver.Var(name), solver.NewDomain(values...))
	}
	for _, c := range def.Constraints {
		if c.Y == "" {
			constVal, ok := c.Const.(string)
			if !ok {
				return fmt.Errorf("constraint %s: a unary constraint needs a string \"const\"", c.X)
			}
			switch c.Op {
			case "neq":
				p.AddUnaryConstraint(solver.Var(c.X), func(v string) bool { return v != constVal })
			case "eq", "":
				p.AddUnaryConstraint(solver.Var(c.X), func(v string) bool { return v == constVal })
			default:
				return fmt.Errorf("constraint %s: unknown op %q (must be \"eq\" or \"neq\")", c.X, c.Op)
			}
			continue
		}
		switch c.Op {
		case "neq", "":
			p.AddConstraint(solver.Var(c.X), solver.Var(c.Y), func(a, b string) bool { return a != b })
		case "eq":
			p.AddConstraint(solver.Var(c.X), solver.Var(c.Y), func(a, b string) bool { return a == b })
		default:
			return fmt.Errorf("constraint %s/%s: unknown op %q (must be \"eq\" or \"neq\")", c.X, c.Y, c.Op)
		}
	}

	solution, err := solver.Solve(p)
	if err != nil {
		return err
	}
	return printSolution(out, solution)
}

// printSolution prints a solved assignment with variables in sorted order,
// so output is deterministic across runs.
func printSolution[V comparable](out io.Writer, solution solver.Solution[V]) error {
	names := make([]string, 0, len(solution))
	for v := range solution {
		names = append(names, string(v))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "%s = %v\n", name, solution[solver.Var(name)])
	}
	return nil
}

func init() {
	cmd := newSolveCmd()
	rootCmd.AddCommand(cmd)
	AddFuzzyMatching(cmd)
}
