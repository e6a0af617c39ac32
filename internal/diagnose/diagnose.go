// Package diagnose implements spec.md §9's dependency-directed backtracking
// helper: given a node that is `in` (or was, before a contradiction),
// trace its support justification back to the assumption nodes it
// ultimately rests on, so a caller deciding what to retract can act on "the
// real culprit" instead of guessing. It also detects support cycles among
// justifications with the same three-color DFS the proof tool's
// internal/cycle package uses for dependency graphs, repointed at JTMS
// support edges instead of proof-node dependencies.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/cryptix/dntcnstrntm/internal/jtms"
)

// color constants for DFS-based cycle detection using the three-color
// algorithm: white (unvisited), gray (on the current path), black (fully
// explored, known acyclic).
const (
	white = 0
	gray  = 1
	black = 2
)

// Assumptions walks node's support justification (and transitively, every
// node named in each ancestor's support in-list) back to the assumption
// nodes it ultimately depends on. A node that is currently Out, or that has
// no support, contributes nothing. The returned slice is de-duplicated and
// ordered by first encounter (breadth-first from node).
func Assumptions(j *jtms.JTMS, node string) []string {
	seen := make(map[string]bool)
	var order []string

	queue := []string{node}
	visited := map[string]bool{node: true}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if j.IsAssumption(n) && j.NodeLabel(n) == jtms.In {
			if !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
			continue
		}

		support := j.Why(n)
		if support == nil {
			continue
		}
		for _, ancestor := range support.InList {
			if !visited[ancestor] {
				visited[ancestor] = true
				queue = append(queue, ancestor)
			}
		}
	}
	return order
}

// CycleResult reports whether a support cycle was found among node's
// ancestors, and if so, the path that closes it.
type CycleResult struct {
	HasCycle bool
	Path     []string
}

func (r CycleResult) Error() string {
	if !r.HasCycle {
		return ""
	}
	return fmt.Sprintf("support cycle detected: %s", strings.Join(r.Path, " -> "))
}

// DetectSupportCycle runs a three-color DFS over node's support in-list
// edges, starting from node, reporting the first back-edge found. A JTMS
// built correctly from JustifyNode/AssumeNode calls should never have one —
// this exists as a diagnostic for constructing propagator networks whose
// justifications accidentally reference their own consequence.
func DetectSupportCycle(j *jtms.JTMS, node string) CycleResult {
	colors := make(map[string]int)
	hasCycle, path := dfs(j, node, colors, nil)
	return CycleResult{HasCycle: hasCycle, Path: path}
}

func dfs(j *jtms.JTMS, node string, colors map[string]int, path []string) (bool, []string) {
	switch colors[node] {
	case gray:
		cyclePath := make([]string, 0, len(path)+1)
		inCycle := false
		for _, p := range path {
			if p == node {
				inCycle = true
			}
			if inCycle {
				cyclePath = append(cyclePath, p)
			}
		}
		cyclePath = append(cyclePath, node)
		return true, cyclePath
	case black:
		return false, nil
	}

	colors[node] = gray
	newPath := append(append([]string(nil), path...), node)

	support := j.Why(node)
	if support != nil {
		for _, ancestor := range support.InList {
			if hasCycle, cyclePath := dfs(j, ancestor, colors, newPath); hasCycle {
				return true, cyclePath
			}
		}
	}

	colors[node] = black
	return false, nil
}
