package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/export"
	"github.com/cryptix/dntcnstrntm/internal/lattice"
	"github.com/cryptix/dntcnstrntm/internal/network"
)

func TestValidateFormat(t *testing.T) {
	if err := export.ValidateFormat("json"); err != nil {
		t.Fatalf("ValidateFormat(json) = %v, want nil", err)
	}
	if err := export.ValidateFormat("yaml"); err == nil {
		t.Fatal("ValidateFormat(yaml) = nil, want error")
	}
}

func TestExport_RoundTripsThroughJSON(t *testing.T) {
	n := network.New()
	c := n.CreateCell(lattice.NumberLattice{})
	if err := n.AddContent(c, lattice.Number(42), "user"); err != nil {
		t.Fatal(err)
	}

	out, err := export.Export(n, "json")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(out, "42") {
		t.Fatalf("output missing expected value: %s", out)
	}

	var snap network.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(snap.Cells) != 1 {
		t.Fatalf("snap.Cells = %d, want 1", len(snap.Cells))
	}
}

func TestExport_InvalidFormat(t *testing.T) {
	n := network.New()
	if _, err := export.Export(n, "xml"); err == nil {
		t.Fatal("want error for unsupported format")
	}
}
