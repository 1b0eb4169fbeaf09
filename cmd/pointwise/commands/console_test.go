// ABOUTME: Tests for the console command
// ABOUTME: Drives a scripted session through the full command stack

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func runScript(t *testing.T, script string) string {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetIn(strings.NewReader(script))
	cmd.SetArgs([]string{"--quiet", "console"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, output.String())
	}
	return output.String()
}

func TestConsole_ManualEntryAndExit(t *testing.T) {
	out := runScript(t, "1\n1\n0,0\n1,1\n5,5\ndone\n2\n1\n3\n")

	for _, want := range []string{
		"POINTWISE: POINT PROCESSING ON THE PLANE",
		"Points entered: 3",
		"Method: Sequential",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestConsole_EOFSaysGoodbye(t *testing.T) {
	out := runScript(t, "1\n")

	if !strings.HasSuffix(strings.TrimSpace(out), "Goodbye!") {
		t.Errorf("output should end with farewell, got tail %q", out[max(0, len(out)-40):])
	}
}

func TestConsole_RejectsArgs(t *testing.T) {
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"console", "extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("console should reject positional arguments")
	}
}
