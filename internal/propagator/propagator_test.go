package propagator_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/propagator"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

func TestFn_ReturnsWritesOnSuccess(t *testing.T) {
	var fn propagator.Fn = func(in []lattice.Value) ([]propagator.Write, bool) {
		v, ok := lattice.AsNumber(in[0])
		if !ok {
			return nil, false
		}
		return []propagator.Write{{Cell: types.CellID(1), Value: lattice.Number(v * 2)}}, true
	}

	writes, ok := fn([]lattice.Value{lattice.Number(3)})
	if !ok {
		t.Fatal("want ok=true for a numeric input")
	}
	if len(writes) != 1 {
		t.Fatalf("len(writes) = %d, want 1", len(writes))
	}
	got, _ := lattice.AsNumber(writes[0].Value)
	if got != 6 {
		t.Fatalf("writes[0].Value = %v, want 6", got)
	}
	if writes[0].Cell != types.CellID(1) {
		t.Fatalf("writes[0].Cell = %v, want cell-1", writes[0].Cell)
	}
}

func TestFn_SkipsOnIncompatibleInput(t *testing.T) {
	var fn propagator.Fn = func(in []lattice.Value) ([]propagator.Write, bool) {
		_, ok := lattice.AsNumber(in[0])
		if !ok {
			return nil, false
		}
		return []propagator.Write{{Cell: types.CellID(1), Value: in[0]}}, true
	}

	writes, ok := fn([]lattice.Value{lattice.Nothing})
	if ok {
		t.Fatalf("want ok=false for Nothing input, got writes %v", writes)
	}
}

func TestPropagator_FieldsRoundTrip(t *testing.T) {
	a := types.CellID(1)
	b := types.CellID(2)
	out := types.CellID(3)
	id := types.PropagatorID(7)

	fn := func(in []lattice.Value) ([]propagator.Write, bool) {
		return nil, false
	}

	p := propagator.Propagator{
		ID:        id,
		Inputs:    []types.CellID{a, b},
		Outputs:   []types.CellID{out},
		Informant: "adder-fwd",
		Fn:        fn,
	}

	if p.ID != id {
		t.Fatalf("ID = %v, want %v", p.ID, id)
	}
	if len(p.Inputs) != 2 || p.Inputs[0] != a || p.Inputs[1] != b {
		t.Fatalf("Inputs = %v, want [%v %v]", p.Inputs, a, b)
	}
	if len(p.Outputs) != 1 || p.Outputs[0] != out {
		t.Fatalf("Outputs = %v, want [%v]", p.Outputs, out)
	}
	if p.Informant != "adder-fwd" {
		t.Fatalf("Informant = %q, want %q", p.Informant, "adder-fwd")
	}
}

func TestWrite_CarriesCellAndValue(t *testing.T) {
	w := propagator.Write{Cell: types.CellID(5), Value: lattice.Number(42)}
	if w.Cell != types.CellID(5) {
		t.Fatalf("Cell = %v, want cell-5", w.Cell)
	}
	got, ok := lattice.AsNumber(w.Value)
	if !ok || got != 42 {
		t.Fatalf("Value = %v, want 42", w.Value)
	}
}
