package history_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/history"
	"github.com/cryptix/dntcnstrntm/internal/types"
)

func TestRecord_SinceReturnsNewerEvents(t *testing.T) {
	r := history.NewRecorder(10)
	r.Record("add_content", types.CellID(1), "user", "n1")
	r.Record("add_content", types.CellID(2), "user", "n2")

	all := r.Since(0)
	if len(all) != 2 {
		t.Fatalf("Since(0) len = %d, want 2", len(all))
	}

	newer := r.Since(all[0].Seq)
	if len(newer) != 1 || newer[0].Node != "n2" {
		t.Fatalf("Since(first) = %+v, want just n2", newer)
	}
}

func TestRecord_EvictsOldestAtCapacity(t *testing.T) {
	r := history.NewRecorder(2)
	r.Record("add_content", types.CellID(1), "a", "n1")
	r.Record("add_content", types.CellID(1), "a", "n2")
	r.Record("add_content", types.CellID(1), "a", "n3")

	all := r.Since(0)
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2 (capacity enforced)", len(all))
	}
	if all[0].Node != "n2" || all[1].Node != "n3" {
		t.Fatalf("events = %+v, want [n2 n3]", all)
	}
}

func TestForCell_FiltersByCell(t *testing.T) {
	r := history.NewRecorder(10)
	r.Record("add_content", types.CellID(1), "a", "n1")
	r.Record("add_content", types.CellID(2), "a", "n2")
	r.Record("retract_content", types.CellID(1), "a", "n1")

	got := r.ForCell(types.CellID(1))
	if len(got) != 2 {
		t.Fatalf("ForCell(1) len = %d, want 2", len(got))
	}
}

func TestNewRecorder_NonPositiveCapacityClampedToOne(t *testing.T) {
	r := history.NewRecorder(0)
	r.Record("add_content", types.CellID(1), "a", "n1")
	r.Record("add_content", types.CellID(1), "a", "n2")

	if got := len(r.Since(0)); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
}
