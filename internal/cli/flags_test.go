package cli_test

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/cryptix/dntcnstrntm/internal/cli"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("s", "hello", "")
	cmd.Flags().Bool("b", true, "")
	cmd.Flags().Float64("f", 1.5, "")
	cmd.Flags().StringSlice("ss", []string{"a", "b"}, "")
	cmd.Flags().Uint64("u", 7, "")
	return cmd
}

func TestMustString(t *testing.T) {
	if got := cli.MustString(newFlagCmd(), "s"); got != "hello" {
		t.Fatalf("MustString = %q, want %q", got, "hello")
	}
}

func TestMustBool(t *testing.T) {
	if got := cli.MustBool(newFlagCmd(), "b"); got != true {
		t.Fatalf("MustBool = %v, want true", got)
	}
}

func TestMustFloat64(t *testing.T) {
	if got := cli.MustFloat64(newFlagCmd(), "f"); got != 1.5 {
		t.Fatalf("MustFloat64 = %v, want 1.5", got)
	}
}

func TestMustStringSlice(t *testing.T) {
	got := cli.MustStringSlice(newFlagCmd(), "ss")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("MustStringSlice = %v, want [a b]", got)
	}
}

func TestMustUint64(t *testing.T) {
	if got := cli.MustUint64(newFlagCmd(), "u"); got != 7 {
		t.Fatalf("MustUint64 = %v, want 7", got)
	}
}

func TestMustString_PanicsOnUnregisteredFlag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for unregistered flag")
		}
	}()
	cli.MustString(newFlagCmd(), "does-not-exist")
}
