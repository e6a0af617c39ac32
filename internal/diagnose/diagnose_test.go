package diagnose_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/diagnose"
	"github.com/cryptix/dntcnstrntm/internal/jtms"
)

func TestAssumptions_TracesToAssumptionNodes(t *testing.T) {
	j := jtms.New()
	j.AssumeNode("a")
	j.AssumeNode("b")
	j.JustifyNode("derived", "rule", []string{"a", "b"}, nil)

	got := diagnose.Assumptions(j, "derived")
	if len(got) != 2 {
		t.Fatalf("Assumptions = %v, want [a b]", got)
	}
}

func TestAssumptions_EmptyWhenNodeIsOut(t *testing.T) {
	j := jtms.New()
	j.CreateNode("orphan")

	got := diagnose.Assumptions(j, "orphan")
	if len(got) != 0 {
		t.Fatalf("Assumptions = %v, want empty", got)
	}
}

func TestAssumptions_TransitiveChain(t *testing.T) {
	j := jtms.New()
	j.AssumeNode("root")
	j.JustifyNode("mid", "rule", []string{"root"}, nil)
	j.JustifyNode("leaf", "rule", []string{"mid"}, nil)

	got := diagnose.Assumptions(j, "leaf")
	if len(got) != 1 || got[0] != "root" {
		t.Fatalf("Assumptions = %v, want [root]", got)
	}
}

func TestDetectSupportCycle_NoCycleInNormalChain(t *testing.T) {
	j := jtms.New()
	j.AssumeNode("a")
	j.JustifyNode("b", "rule", []string{"a"}, nil)

	result := diagnose.DetectSupportCycle(j, "b")
	if result.HasCycle {
		t.Fatalf("unexpected cycle: %v", result.Path)
	}
}
