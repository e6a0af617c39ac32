// Package lattice implements the value algebra parameterizing a BeliefCell:
// a bottom ("no information") element, a top ("contradiction") element, and
// a commutative, associative, idempotent merge. Two concrete lattices are
// provided: Number (with epsilon-tolerant equality) and Set (intersection,
// used by the solver's finite domains).
package lattice

import "fmt"

// Kind discriminates the dynamic type of a Value without a type switch at
// every call site.
type Kind int

const (
	KindNothing Kind = iota
	KindContradiction
	KindNumber
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindContradiction:
		return "contradiction"
	case KindNumber:
		return "number"
	case KindSet:
		return "set"
	default:
		return "unknown"
	}
}

// Value is any element a cell can hold: the universal Nothing and
// Contradiction sentinels, or a lattice-specific Number/SetValue.
type Value interface {
	Kind() Kind
	String() string
}

// nothing is the singleton "no information" value, shared by every
// lattice. A cell with no beliefs reads as Nothing.
type nothing struct{}

func (nothing) Kind() Kind     { return KindNothing }
func (nothing) String() string { return "nothing" }

// Nothing is the bottom element common to every lattice.
var Nothing Value = nothing{}

// contradiction is the singleton "top" value, shared by every lattice. It is
// a first-class value, not an error: callers observe it via read_cell and
// resolve it by retracting the offending informant.
type contradiction struct{}

func (contradiction) Kind() Kind     { return KindContradiction }
func (contradiction) String() string { return "contradiction" }

// Contradiction is the top element common to every lattice.
var Contradiction Value = contradiction{}

// Number is a Number-lattice element.
type Number float64

func (Number) Kind() Kind       { return KindNumber }
func (n Number) String() string { return fmt.Sprintf("%v", float64(n)) }

// SetValue is a Set-lattice element: a finite set of strings.
type SetValue map[string]struct{}

func (SetValue) Kind() Kind { return KindSet }

func (s SetValue) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return fmt.Sprintf("%v", keys)
}

// NewSet builds a SetValue from the given members.
func NewSet(members ...string) SetValue {
	s := make(SetValue, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Clone returns a shallow copy of s, so callers can mutate the result
// without aliasing the original domain.
func (s SetValue) Clone() SetValue {
	out := make(SetValue, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Lattice is the contract every cell's value algebra must satisfy: Merge is
// total (it never panics; contradiction is a value, not a failure) and
// commutative, associative and idempotent, and Equal is an equivalence
// relation compatible with Merge (Equal(a,b) implies Merge(a,b) equals a).
type Lattice interface {
	Bottom() Value
	Top() Value
	Merge(a, b Value) Value
	Equal(a, b Value) bool
}

// AsNumber extracts the float64 underlying a Number value.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsSet extracts the SetValue underlying a Set value.
func AsSet(v Value) (SetValue, bool) {
	s, ok := v.(SetValue)
	return s, ok
}
