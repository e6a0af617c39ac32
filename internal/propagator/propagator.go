// Package propagator defines the Propagator value type: a stateless,
// pure function from input cell values to a list of output writes,
// installed on a Network with an informant that tags every value it
// derives.
package propagator

import (
	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// Write is one (output cell, value) pair a Fn asks the network to derive.
type Write struct {
	Cell  types.CellID
	Value lattice.Value
}

// Fn is a propagator's function: given input active values (in input
// order; any may be Nothing or Contradiction), it returns either (nil,
// false) to skip, or the writes to apply. Fn must be deterministic and
// side-effect-free; it must not perform blocking I/O (spec.md §5). A Fn
// that panics is caught by the network and treated as skip.
type Fn func(inputs []lattice.Value) ([]Write, bool)

// Propagator bundles inputs, outputs, a function, and the informant tagging
// every value it derives. It has no mutable state of its own.
type Propagator struct {
	ID        types.PropagatorID
	Inputs    []types.CellID
	Outputs   []types.CellID
	Informant types.Informant
	Fn        Fn
}
