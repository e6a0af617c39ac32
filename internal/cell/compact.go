package cell

import "github.com/cryptix/dntcnstrntm/internal/jtms"

// Compact sweeps beliefs whose node has been `out` since before horizonSeq
// (a value of the JTMS's Seq counter, which advances each time a node
// flips to out; not a wall-clock time — see
// spec.md §9 "Belief accumulation") and whose consequences set is empty, so
// dropping them cannot invalidate a justification elsewhere. It returns the
// number of beliefs discarded.
//
// This is not part of the kernel's semantics: read_cell and add_content
// behave identically whether or not Compact is ever called. It exists only
// to bound memory for long-running networks, per spec.md §9.
func (c *Cell) Compact(j *jtms.JTMS, horizonSeq uint64) int {
	kept := c.Beliefs[:0]
	dropped := 0

	for _, b := range c.Beliefs {
		if eligibleForCompaction(j, b.Node, horizonSeq) {
			dropped++
			continue
		}
		kept = append(kept, b)
	}
	c.Beliefs = kept
	return dropped
}

func eligibleForCompaction(j *jtms.JTMS, node string, horizonSeq uint64) bool {
	if j.NodeLabel(node) == jtms.In {
		return false
	}
	if len(j.Consequences(node)) != 0 {
		return false
	}
	return j.OutSince(node) != 0 && j.OutSince(node) <= horizonSeq
}
