// Package types provides the opaque handle types shared across the kernel:
// cell and propagator ids and informant names. The JTMS node names the
// Network mints for beliefs are built in the network package, not here.
package types

import "fmt"

// CellID identifies a BeliefCell within a Network. Ids are assigned in
// monotonically increasing order starting at 1 and are never reused within
// a Network's lifetime; the zero value is never a valid id.
type CellID uint64

// String renders the id in the "cell-N" form used in logs and error
// messages.
func (c CellID) String() string {
	return fmt.Sprintf("cell-%d", uint64(c))
}

// Valid reports whether c was ever assigned by a Network (the zero value is
// reserved and never handed out).
func (c CellID) Valid() bool {
	return c != 0
}

// PropagatorID identifies a Propagator within a Network, with the same
// monotonic, never-reused allocation discipline as CellID.
type PropagatorID uint64

// String renders the id in the "prop-N" form used in logs and error
// messages.
func (p PropagatorID) String() string {
	return fmt.Sprintf("prop-%d", uint64(p))
}

// Valid reports whether p was ever assigned by a Network.
func (p PropagatorID) Valid() bool {
	return p != 0
}

// Informant is a caller-supplied label identifying the source of a belief:
// a sensor name, a rule name, or a propagator's own identity. Beliefs are
// retracted by informant, so the same informant used across two add_content
// calls refers to the same logical source.
type Informant string
