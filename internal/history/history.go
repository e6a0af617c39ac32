// Package history is the kernel's supplemented feature for in-memory
// justification history: a ring buffer of every add_content, retract_content
// and derivation event a Network processes, kept only for the life of the
// process (no filesystem durability — see SPEC_FULL.md's Non-goals). It is
// modeled on the proof tool's append-only internal/ledger, minus the
// persistence: here the ledger is a bounded ring so a long-running session
// doesn't grow memory without limit.
package history

import (
	"sync"

	"github.com/cryptix/dntcnstrntm/internal/types"
)

// Event is a single recorded occurrence against a cell.
type Event struct {
	Seq       uint64
	Op        string
	Cell      types.CellID
	Informant types.Informant
	Node      string
}

// Recorder is a fixed-capacity, thread-safe ring buffer of Events. Once full,
// the oldest event is evicted to make room for the newest.
type Recorder struct {
	mu       sync.Mutex
	capacity int
	events   []Event
	next     uint64
}

// NewRecorder returns a Recorder holding at most capacity events. A
// non-positive capacity is treated as 1.
func NewRecorder(capacity int) *Recorder {
	if capacity < 1 {
		capacity = 1
	}
	return &Recorder{capacity: capacity}
}

// Record appends a new event, evicting the oldest if at capacity.
func (r *Recorder) Record(op string, cell types.CellID, informant types.Informant, node string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	ev := Event{Seq: r.next, Op: op, Cell: cell, Informant: informant, Node: node}
	if len(r.events) >= r.capacity {
		r.events = append(r.events[1:], ev)
		return
	}
	r.events = append(r.events, ev)
}

// Since returns every recorded event with Seq strictly greater than after,
// oldest first. Pass 0 to get the full retained window.
func (r *Recorder) Since(after uint64) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, 0, len(r.events))
	for _, ev := range r.events {
		if ev.Seq > after {
			out = append(out, ev)
		}
	}
	return out
}

// ForCell returns every retained event touching the given cell, oldest
// first.
func (r *Recorder) ForCell(id types.CellID) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, ev := range r.events {
		if ev.Cell == id {
			out = append(out, ev)
		}
	}
	return out
}
