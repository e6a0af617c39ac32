package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cryptix/dntcnstrntm/internal/cli"
)

func TestConfirmAction_SkipReturnsTrueImmediately(t *testing.T) {
	ok, err := cli.ConfirmAction(nil, "retract cell-1", true)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v, want true/nil", ok, err)
	}
}

func TestConfirmActionWithReader_YesAccepted(t *testing.T) {
	var out bytes.Buffer
	ok, err := cli.ConfirmActionWithReader(&out, strings.NewReader("y\n"), "retract cell-1", false)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !ok {
		t.Fatal("want confirmed")
	}
}

func TestConfirmActionWithReader_NoDeclines(t *testing.T) {
	var out bytes.Buffer
	ok, err := cli.ConfirmActionWithReader(&out, strings.NewReader("n\n"), "retract cell-1", false)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ok {
		t.Fatal("want declined")
	}
}

func TestConfirmActionWithReader_EOFIsNotInteractive(t *testing.T) {
	var out bytes.Buffer
	_, err := cli.ConfirmActionWithReader(&out, strings.NewReader(""), "retract cell-1", false)
	if err != cli.ErrNotInteractive {
		t.Fatalf("err = %v, want ErrNotInteractive", err)
	}
}
