// ABOUTME: Tests for the one-shot process command
// ABOUTME: Verifies table, JSON and YAML output and argument errors

package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/harper/pointwise/internal/geometry"
)

func runProcessCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(append([]string{"--quiet", "process"}, args...))

	err := cmd.Execute()
	return output.String(), err
}

func TestProcess_JSONSingleMethod(t *testing.T) {
	out, err := runProcessCmd(t, "--format", "json", "--method", "min_x", "1,2", "3,4", "0,5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report processReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(report.Results) != 1 || report.Results[0].Method != "min_x" {
		t.Fatalf("Results = %+v, want one min_x entry", report.Results)
	}
	want := []geometry.Point{geometry.Pt(1, 7), geometry.Pt(3, 9), geometry.Pt(0, 10)}
	if diff := cmp.Diff(want, report.Results[0].Result); diff != "" {
		t.Errorf("min_x result mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_YAMLAllMethods(t *testing.T) {
	out, err := runProcessCmd(t, "--format", "yaml", "--", "-1,0", "1,0")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var report processReport
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}

	var methods []string
	for _, r := range report.Results {
		methods = append(methods, r.Method)
	}
	if diff := cmp.Diff([]string{"original", "sequential", "min_sum", "min_x"}, methods); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}

	// nearest neighbour of each point is the other one
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(0, 0)}
	if diff := cmp.Diff(want, report.Results[0].Result); diff != "" {
		t.Errorf("original result mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_TableOutput(t *testing.T) {
	out, err := runProcessCmd(t, "1,2", "3,4")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"Original (nearest)", "Minimum X", "(4, 6)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output should contain %q:\n%s", want, out)
		}
	}
}

func TestProcess_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no points", []string{}, "requires at least 1 arg"},
		{"bad point", []string{"1;2"}, "invalid input format: '1;2'"},
		{"bad number", []string{"1,y"}, "invalid Y coordinate: 'y'"},
		{"bad method", []string{"--method", "median", "1,2"}, "unknown processing method: 'median'"},
		{"bad format", []string{"--format", "xml", "1,2"}, "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runProcessCmd(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
