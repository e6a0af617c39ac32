package solver_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/solver"
)

func TestCompilePredicate_LessThan(t *testing.T) {
	check, err := solver.CompilePredicate("x < y", "x", "y")
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}
	if !check(1, 2) {
		t.Fatal("want 1 < 2 to hold")
	}
	if check(2, 1) {
		t.Fatal("want 2 < 1 to not hold")
	}
}

func TestCompilePredicate_UsedInProblem(t *testing.T) {
	check, err := solver.CompilePredicate("x != y", "x", "y")
	if err != nil {
		t.Fatalf("CompilePredicate: %v", err)
	}

	p := solver.NewProblem[float64]()
	p.AddVar("x", solver.NewDomain(1.0))
	p.AddVar("y", solver.NewDomain(1.0))
	p.AddConstraint("x", "y", check)

	_, err = solver.Solve(p)
	if err == nil {
		t.Fatal("want NoSolution: x and y share the only value and must differ")
	}
}

func TestCompilePredicate_InvalidExpression(t *testing.T) {
	if _, err := solver.CompilePredicate("x +++ y", "x", "y"); err == nil {
		t.Fatal("want compile error for invalid expression")
	}
}

func TestCompileUnaryPredicate_GreaterThan(t *testing.T) {
	check, err := solver.CompileUnaryPredicate("x > 0", "x")
	if err != nil {
		t.Fatalf("CompileUnaryPredicate: %v", err)
	}
	if !check(1) {
		t.Fatal("want 1 > 0 to hold")
	}
	if check(-1) {
		t.Fatal("want -1 > 0 to not hold")
	}
}

func TestCompileUnaryPredicate_InvalidExpression(t *testing.T) {
	if _, err := solver.CompileUnaryPredicate("x +++ 1", "x"); err == nil {
		t.Fatal("want compile error for invalid expression")
	}
}
