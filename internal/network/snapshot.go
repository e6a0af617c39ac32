package network

import (
	"sort"

	"github.com/cryptix/dntcnstrntm/internal/cell"
	"github.com/cryptix/dntcnstrntm/internal/jtms"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// CellSnapshot is a read-only view of one cell's current state.
type CellSnapshot struct {
	ID          types.CellID        `json:"id"`
	Active      string              `json:"active_value"`
	Beliefs     []BeliefSnapshot    `json:"beliefs"`
	Subscribers []types.PropagatorID `json:"subscribers"`
}

// BeliefSnapshot is a read-only view of one belief within a cell.
type BeliefSnapshot struct {
	Value     string          `json:"value"`
	Node      string          `json:"node"`
	Informant types.Informant `json:"informant"`
	Label     string          `json:"label"`
}

// PropagatorSnapshot is a read-only view of one installed propagator.
type PropagatorSnapshot struct {
	ID        types.PropagatorID `json:"id"`
	Inputs    []types.CellID     `json:"inputs"`
	Outputs   []types.CellID     `json:"outputs"`
	Informant types.Informant    `json:"informant"`
}

// Snapshot is a read-only export of an entire network's state, used by
// internal/export to render a point-in-time view of a session (spec.md
// §9's "network snapshot export" supplemented feature).
type Snapshot struct {
	Cells       []CellSnapshot       `json:"cells"`
	Propagators []PropagatorSnapshot `json:"propagators"`
}

// Snapshot captures the network's current state. Cells and propagators are
// ordered by id for deterministic output.
func (n *Network) Snapshot() Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]types.CellID, 0, len(n.cells))
	for id := range n.cells {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	cells := make([]CellSnapshot, 0, len(ids))
	for _, id := range ids {
		cells = append(cells, snapshotCell(n.jtms, n.cells[id]))
	}

	pids := make([]types.PropagatorID, 0, len(n.propagators))
	for pid := range n.propagators {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	props := make([]PropagatorSnapshot, 0, len(pids))
	for _, pid := range pids {
		p := n.propagators[pid]
		props = append(props, PropagatorSnapshot{
			ID:        p.ID,
			Inputs:    append([]types.CellID(nil), p.Inputs...),
			Outputs:   append([]types.CellID(nil), p.Outputs...),
			Informant: p.Informant,
		})
	}

	return Snapshot{Cells: cells, Propagators: props}
}

func snapshotCell(j *jtms.JTMS, c *cell.Cell) CellSnapshot {
	beliefs := make([]BeliefSnapshot, 0, len(c.Beliefs))
	for _, b := range c.Beliefs {
		beliefs = append(beliefs, BeliefSnapshot{
			Value:     b.Value.String(),
			Node:      b.Node,
			Informant: b.Informant,
			Label:     j.NodeLabel(b.Node).String(),
		})
	}
	return CellSnapshot{
		ID:          c.ID,
		Active:      c.ActiveValue(j).String(),
		Beliefs:     beliefs,
		Subscribers: append([]types.PropagatorID(nil), c.Subscribers...),
	}
}
