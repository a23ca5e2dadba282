// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func parse(t *testing.T, args ...string) (Options, bool, error) {
	t.Helper()
	var got Options
	ran := false
	cmd := NewCommand(func(_ *cobra.Command, o Options) error {
		got, ran = o, true
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return got, ran, err
}

func TestDefaults(t *testing.T) {
	o, ran, err := parse(t)
	if err != nil || !ran {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
	if o.Input != "-" || o.Output != "-" || o.Width != 60 || o.Quiet {
		t.Errorf("bad defaults %+v", o)
	}
}

func TestFlagsAndInput(t *testing.T) {
	o, _, err := parse(t, "-w", "70", "--output", "out.fa", "-q", "in.fa")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if o.Input != "in.fa" || o.Output != "out.fa" || o.Width != 70 || !o.Quiet {
		t.Errorf("bad parse %+v", o)
	}
}

func TestUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--width", "0"},
		{"--bogus"},
		{"a.fa", "b.fa"},
		{"--width", "x"},
	} {
		_, ran, err := parse(t, args...)
		var ue *UsageError
		if !errors.As(err, &ue) {
			t.Errorf("%v: want *UsageError, got %v", args, err)
		}
		if ran {
			t.Errorf("%v: run should not be called", args)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewCommand(func(*cobra.Command, Options) error {
		t.Fatalf("run should not be called for --version")
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "revcomp version ") {
		t.Fatalf("got %q", out.String())
	}
}
