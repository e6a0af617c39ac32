// Package network implements the Network: the serialized owner of a
// Belief-cell/propagator graph and its associated JTMS. It is the facade a
// caller actually talks to — create_cell, add_content, retract_content,
// read_cell and create_propagator all live here — and it is the component
// that turns a propagator's write into a JTMS justification, which is what
// makes retraction cascade without the network ever being rebuilt.
//
// A Network is logically a single serialized actor (spec.md §5): every
// public method takes the network mutex for its whole body and runs any
// induced propagator firings to completion before returning, so two calls
// from different goroutines never interleave.
package network

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cryptix/dntcnstrntm/internal/cell"
	"github.com/cryptix/dntcnstrntm/internal/history"
	"github.com/cryptix/dntcnstrntm/internal/jtms"
	"github.com/cryptix/dntcnstrntm/internal/kerr"
	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/obs"
	"github.com/cryptix/dntcnstrntm/internal/propagator"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

// Network owns every cell and propagator it creates, plus the JTMS backing
// their beliefs. Ids are monotonically increasing and never reused.
type Network struct {
	mu sync.Mutex

	jtms *jtms.JTMS

	cells       map[types.CellID]*cell.Cell
	propagators map[types.PropagatorID]*propagator.Propagator
	propOrder   []types.PropagatorID

	nextCellID types.CellID
	nextPropID types.PropagatorID

	log       zerolog.Logger
	metrics   *obs.Metrics
	history   *history.Recorder
	lastFlips uint64
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithLogger overrides the Network's logger (zerolog.Nop() by default).
func WithLogger(l zerolog.Logger) Option {
	return func(n *Network) { n.log = l }
}

// WithMetrics attaches a Prometheus metrics set (none by default, in which
// case metric updates are skipped).
func WithMetrics(m *obs.Metrics) Option {
	return func(n *Network) { n.metrics = m }
}

// WithHistory enables in-memory justification history recording, capped at
// capacity events (see internal/history).
func WithHistory(capacity int) Option {
	return func(n *Network) { n.history = history.NewRecorder(capacity) }
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		jtms:        jtms.New(),
		cells:       make(map[types.CellID]*cell.Cell),
		propagators: make(map[types.PropagatorID]*propagator.Propagator),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// JTMS returns the network's underlying JTMS, for callers that need the
// lower-level primitives (internal/diagnose's dependency-directed
// retraction helper, or the CLI's "why" command).
func (n *Network) JTMS() *jtms.JTMS {
	return n.jtms
}

// History returns the network's history recorder, or nil if WithHistory was
// not used.
func (n *Network) History() *history.Recorder {
	return n.history
}

// Compact sweeps every cell's long-out, unreferenced beliefs (see
// cell.Compact), using the JTMS's current sequence number as the horizon,
// and returns the total number of beliefs discarded. It never changes any
// cell's active value — it only bounds memory for a long-running network.
func (n *Network) Compact() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	horizon := n.jtms.Seq()
	total := 0
	for _, c := range n.cells {
		total += c.Compact(n.jtms, horizon)
	}
	return total
}

// CreateCell allocates a new, empty cell over the given lattice and returns
// its id.
func (n *Network) CreateCell(lat lattice.Lattice) types.CellID {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextCellID++
	id := n.nextCellID
	n.cells[id] = cell.New(id, lat)
	n.log.Debug().Stringer("cell", id).Msg("cell created")
	return id
}

// ReadCell returns cell's active value, or a CellNotFound error.
func (n *Network) ReadCell(id types.CellID) (lattice.Value, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	c, ok := n.cells[id]
	if !ok {
		return nil, kerr.CellNotFoundErr(id)
	}
	return c.ActiveValue(n.jtms), nil
}

// ActiveNodes returns the JTMS node names currently backing id's active
// value — the node set internal/diagnose and the CLI's "why" command walk
// to explain a belief's support.
func (n *Network) ActiveNodes(id types.CellID) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	c, ok := n.cells[id]
	if !ok {
		return nil, kerr.CellNotFoundErr(id)
	}
	active := c.ActiveBeliefs(n.jtms)
	nodes := make([]string, len(active))
	for i, b := range active {
		nodes[i] = b.Node
	}
	return nodes, nil
}

// CreatePropagator validates that every input cell exists, registers the
// propagator as a subscriber of each input, assigns it an id, and fires it
// once immediately so any pre-existing values propagate (spec.md §4.3).
func (n *Network) CreatePropagator(inputs, outputs []types.CellID, fn propagator.Fn, informant types.Informant) (types.PropagatorID, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var missing []fmt.Stringer
	for _, in := range inputs {
		if _, ok := n.cells[in]; !ok {
			missing = append(missing, in)
		}
	}
	if len(missing) > 0 {
		return 0, kerr.CellsNotFoundErr(missing)
	}

	n.nextPropID++
	id := n.nextPropID
	p := &propagator.Propagator{
		ID:        id,
		Inputs:    append([]types.CellID(nil), inputs...),
		Outputs:   append([]types.CellID(nil), outputs...),
		Informant: informant,
		Fn:        fn,
	}
	n.propagators[id] = p
	n.propOrder = append(n.propOrder, id)

	for _, in := range inputs {
		n.cells[in].Subscribe(id)
	}

	n.log.Debug().Stringer("propagator", id).Msg("propagator created")
	n.firePropagator(id)
	return id, nil
}

// AddContent adds value to cell under informant, as described in spec.md
// §4.4: a no-op if an equal, currently-in belief from the same informant
// already exists; otherwise a fresh, assumed JTMS node backs a new belief,
// and subscribers are notified if the cell's active value changed.
func (n *Network) AddContent(id types.CellID, value lattice.Value, informant types.Informant) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	start := time.Now()
	defer n.observeLatency("add_content", start)

	c, ok := n.cells[id]
	if !ok {
		return kerr.CellNotFoundErr(id)
	}
	if informant == "" {
		return kerr.InformantRequiredErr()
	}
	if !kindCompatible(c.Lattice, value) {
		return kerr.LatticeMismatchErr(id, latticeKindName(c.Lattice), value.Kind().String())
	}

	for _, b := range c.Beliefs {
		if b.Informant == informant && cell.ValuesEqual(c.Lattice, b.Value, value) && n.jtms.NodeLabel(b.Node) == jtms.In {
			return nil
		}
	}

	before := c.ActiveValue(n.jtms)

	nodeName := freshNodeName(id, informant, value)
	n.jtms.CreateNode(nodeName)
	n.jtms.AssumeNode(nodeName)
	c.Beliefs = append(c.Beliefs, cell.Belief{Value: value, Node: nodeName, Informant: informant})

	n.recordHistory("add_content", id, informant, nodeName)
	n.bumpLiveNodes()
	n.bumpLabelFlips()

	after := c.ActiveValue(n.jtms)
	if !cell.ValuesEqual(c.Lattice, before, after) {
		n.observeContradiction(after)
		n.notifyCellChanged(id)
	}
	return nil
}

// RetractContent retracts every belief in cell whose informant matches,
// lets the JTMS settle, and then re-fires every propagator in the network
// (the "naive rescan" spec.md §4.4/§9 call an acceptable initial design) so
// any cell whose active value changed due to a label flip is reconsidered.
func (n *Network) RetractContent(id types.CellID, informant types.Informant) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	start := time.Now()
	defer n.observeLatency("retract_content", start)

	c, ok := n.cells[id]
	if !ok {
		return kerr.CellNotFoundErr(id)
	}

	retracted := false
	for _, b := range c.Beliefs {
		if b.Informant == informant {
			n.jtms.RetractAssumption(b.Node)
			n.recordHistory("retract_content", id, informant, b.Node)
			retracted = true
		}
	}
	if !retracted {
		return nil
	}

	n.bumpLabelFlips()
	n.refireAll()
	return nil
}

// refireAll is the naive global rescan: one pass over every propagator, in
// creation order, each of which reads current active values and applies any
// resulting writes through the normal derive/notify path (which itself
// recurses depth-first per spec.md §4.5's firing order).
func (n *Network) refireAll() {
	for _, pid := range n.propOrder {
		n.firePropagator(pid)
	}
}

// notifyCellChanged fires every subscriber of id, in subscriber-insertion
// order (spec.md §4.5 O2): a propagator firing may recursively cause
// further cells to change, and this call stack is that depth-first walk.
func (n *Network) notifyCellChanged(id types.CellID) {
	c := n.cells[id]
	for _, pid := range c.Subscribers {
		n.firePropagator(pid)
	}
}

// firePropagator reads p's current input active values, invokes its
// function (catching a panic as skip, per spec.md §7), and applies any
// writes via deriveAdd.
func (n *Network) firePropagator(pid types.PropagatorID) {
	p, ok := n.propagators[pid]
	if !ok {
		return
	}

	inputs := make([]lattice.Value, len(p.Inputs))
	inNodes := make([]string, 0, len(p.Inputs))
	for i, cid := range p.Inputs {
		c := n.cells[cid]
		inputs[i] = c.ActiveValue(n.jtms)
		for _, b := range c.ActiveBeliefs(n.jtms) {
			if cell.ValuesEqual(c.Lattice, b.Value, inputs[i]) {
				inNodes = append(inNodes, b.Node)
				break
			}
		}
	}

	writes, ok := n.invokeFn(p, inputs)
	n.bumpFirings(p.Informant)
	if !ok {
		return
	}

	for _, w := range writes {
		n.deriveAdd(w.Cell, w.Value, p.Informant, inNodes)
	}
}

// invokeFn calls p.Fn, recovering from a panic and treating it as skip —
// spec.md §7: "a propagator function that raises is caught; its firing is
// treated as skip."
func (n *Network) invokeFn(p *propagator.Propagator, inputs []lattice.Value) (writes []propagator.Write, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Warn().Stringer("propagator", p.ID).Interface("panic", r).Msg("propagator panicked; treating as skip")
			writes, ok = nil, false
		}
	}()
	return p.Fn(inputs)
}

// deriveAdd performs a derived add (spec.md §4.4 "Derivation writes"):
// reuse-and-rejustify an existing belief with the same informant and an
// equal value, or create a fresh one; in either case the node's
// justification names inNodes as its in-list. Writes to an unknown cell are
// dropped silently.
func (n *Network) deriveAdd(id types.CellID, value lattice.Value, informant types.Informant, inNodes []string) {
	c, ok := n.cells[id]
	if !ok {
		return
	}

	before := c.ActiveValue(n.jtms)

	var nodeName string
	if existing, ok := c.FindByInformantValue(c.Lattice, informant, value); ok {
		nodeName = existing.Node
	} else {
		nodeName = freshNodeName(id, informant, value)
		c.Beliefs = append(c.Beliefs, cell.Belief{Value: value, Node: nodeName, Informant: informant})
	}
	n.jtms.JustifyNode(nodeName, string(informant), inNodes, nil)
	n.recordHistory("derive", id, informant, nodeName)
	n.bumpLiveNodes()
	n.bumpLabelFlips()

	after := c.ActiveValue(n.jtms)
	if !cell.ValuesEqual(c.Lattice, before, after) {
		n.observeContradiction(after)
		n.notifyCellChanged(id)
	}
}

func freshNodeName(id types.CellID, informant types.Informant, value lattice.Value) string {
	return id.String() + "/" + string(informant) + "/" + value.Kind().String() + "/" + uuid.NewString()
}

func kindCompatible(lat lattice.Lattice, v lattice.Value) bool {
	switch v.Kind() {
	case lattice.KindNothing, lattice.KindContradiction:
		return true
	}
	switch lat.(type) {
	case lattice.NumberLattice:
		return v.Kind() == lattice.KindNumber
	case lattice.SetLattice:
		return v.Kind() == lattice.KindSet
	default:
		return true
	}
}

func latticeKindName(lat lattice.Lattice) string {
	switch lat.(type) {
	case lattice.NumberLattice:
		return "number"
	case lattice.SetLattice:
		return "set"
	default:
		return "unknown"
	}
}
