// Package solver implements the finite-domain CSP solver described in
// spec.md §6: AC-3 arc consistency followed by chronological backtracking
// with a minimum-remaining-values (MRV) variable ordering. It is generic
// over the value type so the same algorithm serves both the numeric
// ordering example (spec.md §8 scenario 6) and map-coloring-style
// set-of-symbol problems.
package solver

import (
	"fmt"
	"sort"

	"github.com/cryptix/dntcnstrntm/internal/config"
	"github.com/cryptix/dntcnstrntm/internal/kerr"
)

// Var identifies a variable by name.
type Var string

// Domain is a variable's current candidate set.
type Domain[V comparable] map[V]struct{}

// NewDomain builds a Domain from the given values.
func NewDomain[V comparable](values ...V) Domain[V] {
	d := make(Domain[V], len(values))
	for _, v := range values {
		d[v] = struct{}{}
	}
	return d
}

func (d Domain[V]) clone() Domain[V] {
	out := make(Domain[V], len(d))
	for v := range d {
		out[v] = struct{}{}
	}
	return out
}

func (d Domain[V]) slice() []V {
	out := make([]V, 0, len(d))
	for v := range d {
		out = append(out, v)
	}
	return out
}

// Arc is a binary constraint between two variables: Check(x, y) reports
// whether the pairing is allowed. Constraints need not be symmetric in how
// they're supplied — Problem.AddConstraint registers both directions.
type Arc[V comparable] struct {
	X, Y  Var
	Check func(x, y V) bool
}

// Problem is a finite-domain CSP: a set of variables, each with a domain,
// plus a set of binary arc constraints and unary constraints between them.
type Problem[V comparable] struct {
	order   []Var
	domains map[Var]Domain[V]
	arcs    map[Var][]Arc[V]
	unary   map[Var][]func(V) bool

	// VisitCap bounds how many backtracking assignment attempts Solve will
	// make before giving up with a NoSolution error, so a pathological
	// problem can't hang the caller forever. Zero means use
	// config.DefaultBacktrackVisitCap.
	VisitCap int
}

// NewProblem returns an empty Problem.
func NewProblem[V comparable]() *Problem[V] {
	return &Problem[V]{
		domains: make(map[Var]Domain[V]),
		arcs:    make(map[Var][]Arc[V]),
	}
}

// AddVar registers a variable with its initial domain. Panics if the
// variable is already registered — problems are assembled once, not
// mutated incrementally.
func (p *Problem[V]) AddVar(v Var, domain Domain[V]) {
	if _, ok := p.domains[v]; ok {
		panic("solver: variable " + string(v) + " already registered")
	}
	p.order = append(p.order, v)
	p.domains[v] = domain
}

// AddConstraint registers a symmetric binary constraint between x and y:
// check(a, b) must hold for x=a, y=b, and its argument-flipped form must
// hold for y=b, x=a. Both directions are installed as arcs so AC-3 can
// revise either variable's domain from the other.
func (p *Problem[V]) AddConstraint(x, y Var, check func(a, b V) bool) {
	p.arcs[x] = append(p.arcs[x], Arc[V]{X: x, Y: y, Check: check})
	p.arcs[y] = append(p.arcs[y], Arc[V]{X: y, Y: x, Check: func(b, a V) bool { return check(a, b) }})
}

// AddUnaryConstraint registers a scope-1 constraint on x: check(val) must
// hold for x's final assignment. Solve revises every unary constraint
// before seeding the binary arc queue, per spec.md §6's unary pre-pass.
func (p *Problem[V]) AddUnaryConstraint(x Var, check func(v V) bool) {
	if p.unary == nil {
		p.unary = make(map[Var][]func(V) bool)
	}
	p.unary[x] = append(p.unary[x], check)
}

// Solution maps every variable to its assigned value.
type Solution[V comparable] map[Var]V

// Solve runs AC-3 to prune domains, then backtracking search with MRV
// variable ordering to find a single satisfying assignment. It returns a
// kerr.NoSolution error if arc consistency empties a domain or no complete
// assignment satisfies every constraint.
func Solve[V comparable](p *Problem[V]) (Solution[V], error) {
	domains := make(map[Var]Domain[V], len(p.domains))
	for v, d := range p.domains {
		domains[v] = d.clone()
	}

	if !reviseUnary(p, domains) {
		return nil, kerr.NoSolutionErr("a unary constraint pruned a domain to empty")
	}

	if !ac3(p, domains) {
		return nil, kerr.NoSolutionErr("arc consistency pruned a domain to empty")
	}

	visitCap := p.VisitCap
	if visitCap <= 0 {
		visitCap = config.DefaultBacktrackVisitCap
	}
	visits := 0
	assignment := make(Solution[V], len(p.order))

	ok := backtrack(p, domains, assignment, &visits, visitCap)
	if !ok {
		if visits >= visitCap {
			return nil, kerr.NoSolutionErr("backtracking visit cap exceeded")
		}
		return nil, kerr.NoSolutionErr("no assignment satisfies every constraint")
	}
	return assignment, nil
}

// reviseUnary runs a single pass over every registered unary constraint,
// removing any domain value that fails it, before the binary arc queue is
// ever seeded. It returns false if any domain is pruned to empty.
func reviseUnary[V comparable](p *Problem[V], domains map[Var]Domain[V]) bool {
	for v, checks := range p.unary {
		for val := range domains[v] {
			for _, check := range checks {
				if !check(val) {
					delete(domains[v], val)
					break
				}
			}
		}
		if len(domains[v]) == 0 {
			return false
		}
	}
	return true
}

// ac3 revises every arc's domain until no further pruning occurs, or a
// domain goes empty. It mutates domains in place.
func ac3[V comparable](p *Problem[V], domains map[Var]Domain[V]) bool {
	type pair struct{ x, y Var }
	var queue []pair
	for _, arcs := range p.arcs {
		for _, a := range arcs {
			queue = append(queue, pair{a.X, a.Y})
		}
	}

	inQueue := make(map[pair]bool, len(queue))
	for _, pr := range queue {
		inQueue[pr] = true
	}

	for len(queue) > 0 {
		pr := queue[0]
		queue = queue[1:]
		inQueue[pr] = false

		if revise(p, domains, pr.x, pr.y) {
			if len(domains[pr.x]) == 0 {
				return false
			}
			for _, a := range p.arcs[pr.x] {
				if a.Y == pr.y {
					continue
				}
				np := pair{a.Y, a.X}
				if !inQueue[np] {
					inQueue[np] = true
					queue = append(queue, np)
				}
			}
		}
	}
	return true
}

// revise removes every value from domains[x] that has no supporting value
// in domains[y] under the x->y arc's check, returning whether it removed
// anything.
func revise[V comparable](p *Problem[V], domains map[Var]Domain[V], x, y Var) bool {
	var check func(a, b V) bool
	for _, a := range p.arcs[x] {
		if a.Y == y {
			check = a.Check
			break
		}
	}
	if check == nil {
		return false
	}

	removed := false
	for xv := range domains[x] {
		supported := false
		for yv := range domains[y] {
			if check(xv, yv) {
				supported = true
				break
			}
		}
		if !supported {
			delete(domains[x], xv)
			removed = true
		}
	}
	return removed
}

// backtrack assigns variables in MRV order, trying each domain value in a
// deterministic (sorted-by-string) order for reproducibility, and recurses
// with a forward-checked copy of domains. visits counts assignment
// attempts against cap so a pathological problem can't run unbounded.
func backtrack[V comparable](p *Problem[V], domains map[Var]Domain[V], assignment Solution[V], visits *int, visitCap int) bool {
	if len(assignment) == len(p.order) {
		return true
	}
	if *visits >= visitCap {
		return false
	}

	v := selectUnassigned(p, domains, assignment)
	values := orderedValues(domains[v])

	for _, val := range values {
		*visits++
		if *visits > visitCap {
			return false
		}
		if !consistent(p, assignment, v, val) {
			continue
		}

		assignment[v] = val
		pruned, ok := forwardCheck(p, domains, v, val, assignment)
		if ok {
			if backtrack(p, pruned, assignment, visits, visitCap) {
				return true
			}
		}
		delete(assignment, v)
	}
	return false
}

// selectUnassigned picks the unassigned variable with the smallest current
// domain (MRV), breaking ties by declaration order.
func selectUnassigned[V comparable](p *Problem[V], domains map[Var]Domain[V], assignment Solution[V]) Var {
	var best Var
	bestSize := -1
	for _, v := range p.order {
		if _, done := assignment[v]; done {
			continue
		}
		size := len(domains[v])
		if bestSize == -1 || size < bestSize {
			best = v
			bestSize = size
		}
	}
	return best
}

// consistent reports whether assigning v=val is compatible with every
// already-assigned neighbor under v's constraints.
func consistent[V comparable](p *Problem[V], assignment Solution[V], v Var, val V) bool {
	for _, a := range p.arcs[v] {
		other, done := assignment[a.Y]
		if !done {
			continue
		}
		if !a.Check(val, other) {
			return false
		}
	}
	return true
}

// forwardCheck returns a copy of domains with v fixed to val and every
// neighbor's domain pruned to values consistent with it, or ok=false if any
// neighbor's domain would go empty.
func forwardCheck[V comparable](p *Problem[V], domains map[Var]Domain[V], v Var, val V, assignment Solution[V]) (map[Var]Domain[V], bool) {
	next := make(map[Var]Domain[V], len(domains))
	for k, d := range domains {
		next[k] = d.clone()
	}
	next[v] = NewDomain(val)

	for _, a := range p.arcs[v] {
		if _, done := assignment[a.Y]; done {
			continue
		}
		for yv := range next[a.Y] {
			if !a.Check(val, yv) {
				delete(next[a.Y], yv)
			}
		}
		if len(next[a.Y]) == 0 {
			return nil, false
		}
	}
	return next, true
}

// orderedValues returns d's members in a deterministic order so Solve's
// result is reproducible across runs with the same input.
func orderedValues[V comparable](d Domain[V]) []V {
	out := d.slice()
	sort.Slice(out, func(i, j int) bool {
		return anyLess(out[i], out[j])
	})
	return out
}

// anyLess provides a total order over comparable values for deterministic
// value-ordering in backtrack, falling back to formatted-string comparison
// for types without a natural ordering.
func anyLess[V comparable](a, b V) bool {
	switch av := any(a).(type) {
	case float64:
		return av < any(b).(float64)
	case string:
		return av < any(b).(string)
	case int:
		return av < any(b).(int)
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}
