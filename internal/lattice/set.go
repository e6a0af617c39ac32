package lattice

// SetLattice is the Set lattice from the spec: values are finite sets under
// intersection. There is no separate "no information" element distinct
// from Contradiction here — an empty domain means infeasible, in either
// direction — so both Bottom and Top collapse to Contradiction.
type SetLattice struct{}

func (SetLattice) Bottom() Value { return Contradiction }
func (SetLattice) Top() Value    { return Contradiction }

// Merge intersects two sets. Nothing is still treated as an identity
// element (a cell that has received no Set belief yet contributes no
// constraint), Contradiction is absorbing, and an empty intersection is
// reported as Contradiction rather than as the empty SetValue.
func (SetLattice) Merge(a, b Value) Value {
	if a.Kind() == KindContradiction || b.Kind() == KindContradiction {
		return Contradiction
	}
	if a.Kind() == KindNothing {
		return b
	}
	if b.Kind() == KindNothing {
		return a
	}
	as, aok := AsSet(a)
	bs, bok := AsSet(b)
	if !aok || !bok {
		return Contradiction
	}
	out := make(SetValue)
	for k := range as {
		if _, ok := bs[k]; ok {
			out[k] = struct{}{}
		}
	}
	if len(out) == 0 {
		return Contradiction
	}
	return out
}

// Equal reports strict set equality (or both Nothing, or both Contradiction).
func (SetLattice) Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNothing, KindContradiction:
		return true
	case KindSet:
		as, _ := AsSet(a)
		bs, _ := AsSet(b)
		if len(as) != len(bs) {
			return false
		}
		for k := range as {
			if _, ok := bs[k]; !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
