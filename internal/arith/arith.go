// Package arith supplies the two worked constraints spec.md §8 uses as its
// running examples: a 3-cell adder (a + b = sum) and a 3-cell multiplier
// (a * b = product), each wired as three propagators so a value written to
// any two cells derives the third. Every Fn here is pure and
// side-effect-free, per spec.md §5 — they only read their inputs and
// return writes.
package arith

import (
	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/network"
	"github.com/cryptix/dntcnstrntm/internal/propagator"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// anyContradiction reports whether any of in is lattice.Contradiction.
func anyContradiction(in []lattice.Value) bool {
	for _, v := range in {
		if v.Kind() == lattice.KindContradiction {
			return true
		}
	}
	return false
}

// contradictionWrites writes lattice.Contradiction to every one of outputs,
// per spec.md §4.6: a propagator forwards contradiction through its
// outputs whenever any input is already contradiction.
func contradictionWrites(outputs ...types.CellID) ([]propagator.Write, bool) {
	writes := make([]propagator.Write, len(outputs))
	for i, out := range outputs {
		writes[i] = propagator.Write{Cell: out, Value: lattice.Contradiction}
	}
	return writes, true
}

// Adder installs a+b=sum over three existing cells, as three propagators:
// forward (a,b -> sum) and both inverses (sum,b -> a and sum,a -> b). The
// informant passed is used as a prefix so callers can distinguish which
// direction derived a given belief.
func Adder(n *network.Network, a, b, sum types.CellID, informant string) error {
	fwd := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(sum)
		}
		av, aok := lattice.AsNumber(in[0])
		bv, bok := lattice.AsNumber(in[1])
		if !aok || !bok {
			return nil, false
		}
		return []propagator.Write{{Cell: sum, Value: lattice.Number(av + bv)}}, true
	}
	backA := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(a)
		}
		sv, sok := lattice.AsNumber(in[0])
		bv, bok := lattice.AsNumber(in[1])
		if !sok || !bok {
			return nil, false
		}
		return []propagator.Write{{Cell: a, Value: lattice.Number(sv - bv)}}, true
	}
	backB := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(b)
		}
		sv, sok := lattice.AsNumber(in[0])
		av, aok := lattice.AsNumber(in[1])
		if !sok || !aok {
			return nil, false
		}
		return []propagator.Write{{Cell: b, Value: lattice.Number(sv - av)}}, true
	}

	if _, err := n.CreatePropagator([]types.CellID{a, b}, []types.CellID{sum}, fwd, types.Informant(informant+"/fwd")); err != nil {
		return err
	}
	if _, err := n.CreatePropagator([]types.CellID{sum, b}, []types.CellID{a}, backA, types.Informant(informant+"/back-a")); err != nil {
		return err
	}
	if _, err := n.CreatePropagator([]types.CellID{sum, a}, []types.CellID{b}, backB, types.Informant(informant+"/back-b")); err != nil {
		return err
	}
	return nil
}

// Multiplier installs a*b=product over three existing cells, the same way
// Adder does for addition. The inverse propagators skip (rather than
// divide) whenever the known factor is zero, since 0*b=0 carries no
// information about b — spec.md §7's "a propagator skips when it cannot
// determine a value" applies directly here.
func Multiplier(n *network.Network, a, b, product types.CellID, informant string) error {
	fwd := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(product)
		}
		av, aok := lattice.AsNumber(in[0])
		bv, bok := lattice.AsNumber(in[1])
		if !aok || !bok {
			return nil, false
		}
		return []propagator.Write{{Cell: product, Value: lattice.Number(av * bv)}}, true
	}
	backA := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(a)
		}
		pv, pok := lattice.AsNumber(in[0])
		bv, bok := lattice.AsNumber(in[1])
		if !pok || !bok || bv == 0 {
			return nil, false
		}
		return []propagator.Write{{Cell: a, Value: lattice.Number(pv / bv)}}, true
	}
	backB := func(in []lattice.Value) ([]propagator.Write, bool) {
		if anyContradiction(in) {
			return contradictionWrites(b)
		}
		pv, pok := lattice.AsNumber(in[0])
		av, aok := lattice.AsNumber(in[1])
		if !pok || !aok || av == 0 {
			return nil, false
		}
		return []propagator.Write{{Cell: b, Value: lattice.Number(pv / av)}}, true
	}

	if _, err := n.CreatePropagator([]types.CellID{a, b}, []types.CellID{product}, fwd, types.Informant(informant+"/fwd")); err != nil {
		return err
	}
	if _, err := n.CreatePropagator([]types.CellID{product, b}, []types.CellID{a}, backA, types.Informant(informant+"/back-a")); err != nil {
		return err
	}
	if _, err := n.CreatePropagator([]types.CellID{product, a}, []types.CellID{b}, backB, types.Informant(informant+"/back-b")); err != nil {
		return err
	}
	return nil
}
