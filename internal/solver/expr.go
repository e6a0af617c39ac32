package solver

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompilePredicate compiles an expr-lang expression string (e.g. "x < y",
// "x != y") into a binary Check function usable with Problem.AddConstraint.
// The expression is evaluated with xName and yName bound to the arc's two
// operands and must return a bool.
func CompilePredicate(exprStr, xName, yName string) (func(x, y float64) bool, error) {
	env := map[string]any{xName: 0.0, yName: 0.0}
	program, err := expr.Compile(exprStr, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling constraint %q: %w", exprStr, err)
	}
	return predicateFn(program, xName, yName), nil
}

func predicateFn(program *vm.Program, xName, yName string) func(x, y float64) bool {
	return func(x, y float64) bool {
		out, err := expr.Run(program, map[string]any{xName: x, yName: y})
		if err != nil {
			return false
		}
		result, ok := out.(bool)
		return ok && result
	}
}

// CompileUnaryPredicate compiles an expr-lang expression string (e.g.
// "x > 0") into a unary Check function usable with
// Problem.AddUnaryConstraint. The expression is evaluated with xName bound
// to the variable's candidate value and must return a bool.
func CompileUnaryPredicate(exprStr, xName string) (func(x float64) bool, error) {
	env := map[string]any{xName: 0.0}
	program, err := expr.Compile(exprStr, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling constraint %q: %w", exprStr, err)
	}
	return func(x float64) bool {
		out, err := expr.Run(program, map[string]any{xName: x})
		if err != nil {
			return false
		}
		result, ok := out.(bool)
		return ok && result
	}, nil
}
