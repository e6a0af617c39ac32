package kerr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/kerr"
)

type stringerID string

func (s stringerID) String() string { return string(s) }

func TestCellNotFoundErr_Code(t *testing.T) {
	err := kerr.CellNotFoundErr(stringerID("cell-1"))
	if kerr.CodeOf(err) != kerr.CellNotFound {
		t.Fatalf("CodeOf = %v, want CellNotFound", kerr.CodeOf(err))
	}
}

func TestCellsNotFoundErr_NamesEveryID(t *testing.T) {
	err := kerr.CellsNotFoundErr([]fmt.Stringer{stringerID("cell-1"), stringerID("cell-2")})
	msg := err.Error()
	if !strings.Contains(msg, "cell-1") || !strings.Contains(msg, "cell-2") {
		t.Fatalf("message %q does not name both missing ids", msg)
	}
}

func TestInformantRequiredErr_Code(t *testing.T) {
	err := kerr.InformantRequiredErr()
	if kerr.CodeOf(err) != kerr.InformantRequired {
		t.Fatalf("CodeOf = %v, want InformantRequired", kerr.CodeOf(err))
	}
}

func TestNoSolutionErr_Code(t *testing.T) {
	err := kerr.NoSolutionErr("domain emptied")
	if kerr.CodeOf(err) != kerr.NoSolution {
		t.Fatalf("CodeOf = %v, want NoSolution", kerr.CodeOf(err))
	}
}

func TestLatticeMismatchErr_Code(t *testing.T) {
	err := kerr.LatticeMismatchErr(stringerID("cell-1"), "number", "set")
	if kerr.CodeOf(err) != kerr.LatticeMismatch {
		t.Fatalf("CodeOf = %v, want LatticeMismatch", kerr.CodeOf(err))
	}
}

func TestCodeOf_NilAndForeignError(t *testing.T) {
	if got := kerr.CodeOf(nil); got != 0 {
		t.Fatalf("CodeOf(nil) = %v, want 0", got)
	}
	if got := kerr.CodeOf(errors.New("boom")); got != 0 {
		t.Fatalf("CodeOf(foreign error) = %v, want 0", got)
	}
}

func TestError_IsMatchesByCode(t *testing.T) {
	a := kerr.CellNotFoundErr(stringerID("cell-1"))
	b := kerr.CellNotFoundErr(stringerID("cell-2"))
	if !errors.Is(a, b) {
		t.Fatal("want two CellNotFound errors with different messages to match via errors.Is")
	}

	c := kerr.InformantRequiredErr()
	if errors.Is(a, c) {
		t.Fatal("want CellNotFound and InformantRequired to not match")
	}
}

func TestCode_String(t *testing.T) {
	cases := map[kerr.Code]string{
		kerr.CellNotFound:       "cell_not_found",
		kerr.InformantRequired:  "informant_required",
		kerr.NoSolution:         "no_solution",
		kerr.LatticeMismatch:    "lattice_mismatch",
		kerr.Code(0):            "unknown",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}
