package fuzzy_test

import (
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/fuzzy"
)

func TestDistance_IdenticalIsZero(t *testing.T) {
	if d := fuzzy.Distance("solve", "solve"); d != 0 {
		t.Fatalf("Distance = %d, want 0", d)
	}
}

func TestDistance_SingleSubstitution(t *testing.T) {
	if d := fuzzy.Distance("cat", "bat"); d != 1 {
		t.Fatalf("Distance = %d, want 1", d)
	}
}

func TestDistance_EmptyStrings(t *testing.T) {
	if d := fuzzy.Distance("", "abc"); d != 3 {
		t.Fatalf("Distance = %d, want 3", d)
	}
}

func TestMatch_AutoCorrectsCloseTypo(t *testing.T) {
	result := fuzzy.SuggestCommand("slove", []string{"solve", "add", "retract", "read"})
	if !result.AutoCorrect || result.Match != "solve" {
		t.Fatalf("result = %+v, want auto-correct to solve", result)
	}
}

func TestMatch_SuggestsWithoutAutoCorrecting(t *testing.T) {
	result := fuzzy.SuggestCommand("xyz", []string{"solve", "add", "retract"})
	if result.AutoCorrect {
		t.Fatalf("result = %+v, want no auto-correct for a distant input", result)
	}
}

func TestMatch_EmptyInput(t *testing.T) {
	result := fuzzy.Match("", []string{"solve"}, 0.8)
	if result.Match != "" || result.AutoCorrect {
		t.Fatalf("result = %+v, want empty result for empty input", result)
	}
}

func TestMatch_NoCandidates(t *testing.T) {
	result := fuzzy.Match("solve", nil, 0.8)
	if result.Match != "" || result.AutoCorrect {
		t.Fatalf("result = %+v, want empty result for no candidates", result)
	}
}
