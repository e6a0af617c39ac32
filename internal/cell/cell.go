// Package cell implements BeliefCell: a set of {value, justification-node}
// beliefs whose active value is a derived view over the JTMS's current
// labeling, not a lattice merge — this is what lets retraction shrink a
// cell's reading instead of only ever sharpening it.
package cell

import (
	"github.com/cryptix/dntcnstrntm/internal/jtms"
	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// Belief is a single (value, justification-node, informant) triple owned by
// a cell.
type Belief struct {
	Value     lattice.Value
	Node      string
	Informant types.Informant
}

// Cell is a BeliefCell: an append-only (within compaction, see Compact) bag
// of beliefs plus the set of propagators subscribed to changes in its
// active value.
type Cell struct {
	ID          types.CellID
	Lattice     lattice.Lattice
	Beliefs     []Belief
	Subscribers []types.PropagatorID
}

// New returns an empty cell over the given lattice.
func New(id types.CellID, lat lattice.Lattice) *Cell {
	return &Cell{ID: id, Lattice: lat}
}

// Subscribe registers pid as a subscriber, if not already present.
func (c *Cell) Subscribe(pid types.PropagatorID) {
	for _, existing := range c.Subscribers {
		if existing == pid {
			return
		}
	}
	c.Subscribers = append(c.Subscribers, pid)
}

// ActiveValue computes the cell's active value: Nothing if no belief's node
// is currently `in`; that value if every `in` belief's value compares equal
// under the lattice; Contradiction otherwise. This is the projection
// described in spec.md §3 — it is deliberately not a lattice merge over all
// beliefs, only over the ones the JTMS currently backs.
func (c *Cell) ActiveValue(j *jtms.JTMS) lattice.Value {
	var first lattice.Value
	have := false

	for _, b := range c.Beliefs {
		if j.NodeLabel(b.Node) != jtms.In {
			continue
		}
		if !have {
			first = b.Value
			have = true
			continue
		}
		if !c.Lattice.Equal(first, b.Value) {
			return lattice.Contradiction
		}
	}

	if !have {
		return lattice.Nothing
	}
	return first
}

// ActiveBeliefs returns the beliefs currently backing the active value (the
// ones whose node is `in`), used by the network to pick justification
// antecedents for derived writes.
func (c *Cell) ActiveBeliefs(j *jtms.JTMS) []Belief {
	var out []Belief
	for _, b := range c.Beliefs {
		if j.NodeLabel(b.Node) == jtms.In {
			out = append(out, b)
		}
	}
	return out
}

// FindByInformantValue returns the belief with the given informant whose
// Value compares equal to target, if any. It searches every belief from
// that informant rather than stopping at the first, so a node is reused
// correctly even when the same informant has re-derived three or more
// distinct values over time (e.g. 8 -> 9 -> 10 -> 9): without scanning the
// whole run, a lookup for value 9 would stop at the stale value-8 belief
// and mint a needless fresh node instead of reusing the one from step 2,
// breaking the "equal-value derivations share a node identity" guarantee.
func (c *Cell) FindByInformantValue(lat lattice.Lattice, informant types.Informant, target lattice.Value) (Belief, bool) {
	for _, b := range c.Beliefs {
		if b.Informant == informant && ValuesEqual(lat, b.Value, target) {
			return b, true
		}
	}
	return Belief{}, false
}

// ValuesEqual compares two values the way ActiveValue does: Nothing equals
// Nothing, Contradiction equals Contradiction, and same-kind concrete values
// defer to the lattice's Equal.
func ValuesEqual(lat lattice.Lattice, a, b lattice.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case lattice.KindNothing, lattice.KindContradiction:
		return true
	default:
		return lat.Equal(a, b)
	}
}
