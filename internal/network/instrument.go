package network

import (
	"time"

	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// observeLatency records op's wall-clock duration since start, if metrics
// are attached.
func (n *Network) observeLatency(op string, start time.Time) {
	if n.metrics == nil {
		return
	}
	n.metrics.OpLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// bumpFirings increments the propagator-firing counter for informant, if
// metrics are attached.
func (n *Network) bumpFirings(informant types.Informant) {
	if n.metrics == nil {
		return
	}
	n.metrics.PropagatorFirings.WithLabelValues(string(informant)).Inc()
}

// bumpLiveNodes refreshes the live-node gauge to the JTMS's current node
// count, if metrics are attached.
func (n *Network) bumpLiveNodes() {
	if n.metrics == nil {
		return
	}
	n.metrics.LiveNodes.Set(float64(n.liveNodeCount()))
}

// bumpLabelFlips advances the label-flip counter by however many flips the
// JTMS has recorded since the last call, if metrics are attached.
func (n *Network) bumpLabelFlips() {
	if n.metrics == nil {
		return
	}
	total := n.jtms.FlipCount()
	n.metrics.LabelFlips.Add(float64(total - n.lastFlips))
	n.lastFlips = total
}

// liveNodeCount sums the belief count across every known cell, a cheap
// proxy for JTMS node count since every belief owns exactly one node.
func (n *Network) liveNodeCount() int {
	total := 0
	for _, c := range n.cells {
		total += len(c.Beliefs)
	}
	return total
}

// observeContradiction increments the contradiction counter when after is
// lattice.Contradiction, if metrics are attached.
func (n *Network) observeContradiction(after lattice.Value) {
	if n.metrics == nil {
		return
	}
	if after.Kind() == lattice.KindContradiction {
		n.metrics.Contradictions.Inc()
	}
}

// recordHistory appends an event to the network's history recorder, if one
// is attached.
func (n *Network) recordHistory(op string, cellID types.CellID, informant types.Informant, node string) {
	if n.history == nil {
		return
	}
	n.history.Record(op, cellID, informant, node)
}
