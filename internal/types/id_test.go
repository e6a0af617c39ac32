package types_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/types"
)

func TestCellID_StringAndValid(t *testing.T) {
	var zero types.CellID
	if zero.Valid() {
		t.Fatal("zero CellID must not be Valid")
	}
	if got := zero.String(); got != "cell-0" {
		t.Fatalf("zero.String() = %q, want %q", got, "cell-0")
	}

	id := types.CellID(42)
	if !id.Valid() {
		t.Fatal("non-zero CellID must be Valid")
	}
	if got := id.String(); got != "cell-42" {
		t.Fatalf("id.String() = %q, want %q", got, "cell-42")
	}
}

func TestPropagatorID_StringAndValid(t *testing.T) {
	var zero types.PropagatorID
	if zero.Valid() {
		t.Fatal("zero PropagatorID must not be Valid")
	}

	id := types.PropagatorID(7)
	if !id.Valid() {
		t.Fatal("non-zero PropagatorID must be Valid")
	}
	if got := id.String(); got != "prop-7" {
		t.Fatalf("id.String() = %q, want %q", got, "prop-7")
	}
}
