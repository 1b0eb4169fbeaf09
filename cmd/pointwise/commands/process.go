// ABOUTME: One-shot command that processes points given as arguments
// ABOUTME: Prints one method's result or a comparison of all methods as table, JSON or YAML
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/pointwise/internal/geometry"
	"github.com/harper/pointwise/internal/points"
	"github.com/harper/pointwise/internal/render"
)

var (
	processMethod string
)

// processReport is the machine-readable form of a process run
type processReport struct {
	Points  []geometry.Point `json:"points" yaml:"points"`
	Results []methodReport   `json:"results" yaml:"results"`
}

type methodReport struct {
	Method string           `json:"method" yaml:"method"`
	Result []geometry.Point `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewProcessCmd creates the process command
func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [x,y]...",
		Short: "Process points given on the command line",
		Long: `Process points given on the command line.

Each argument is one point in x,y form. With --method all (the default)
every method runs and the results are compared; otherwise only the named
method runs and its failure is the command's error.

Put -- before the points when the first one starts with a minus sign.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProcess,
		Example: `  pointwise process 1,2 3,4 0,0
  pointwise process --method min_x 1,2 3,4
  pointwise process --format yaml -- -1.5,2 3,4`,
	}

	cmd.Flags().StringVarP(&processMethod, "method", "m", "all", "Method: original, sequential, min_sum, min_x or all")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	if err := validateFormat(outputFormat); err != nil {
		return err
	}
	if _, err := setup(); err != nil {
		return err
	}

	pts, err := parsePoints(args)
	if err != nil {
		return err
	}

	methods := points.Methods
	if processMethod != "all" {
		m, err := points.ParseMethod(processMethod)
		if err != nil {
			return err
		}
		methods = []points.Method{m}
	}

	outcomes := make([]points.Outcome, 0, len(methods))
	for _, m := range methods {
		result, err := points.Process(pts, m)
		if err != nil && len(methods) == 1 {
			return fmt.Errorf("processing with %s: %w", m, err)
		}
		outcomes = append(outcomes, points.Outcome{Method: m, Result: result, Err: err})
	}

	return writeOutcomes(cmd.OutOrStdout(), outputFormat, pts, outcomes)
}

// parsePoints parses every argument as an x,y point
func parsePoints(args []string) ([]geometry.Point, error) {
	pts := make([]geometry.Point, 0, len(args))
	for _, arg := range args {
		p, err := geometry.ParsePoint(arg)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func writeOutcomes(w io.Writer, format string, pts []geometry.Point, outcomes []points.Outcome) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(pts, outcomes))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(pts, outcomes)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	// Table format
	r := render.Console()
	if len(outcomes) == 1 {
		o := outcomes[0]
		fmt.Fprintf(w, "Method: %s\n", o.Method.Title())
		fmt.Fprintln(w, r.Result(pts, o.Result))
		return nil
	}
	fmt.Fprintln(w, r.Points(pts))
	fmt.Fprintln(w, r.Comparison(outcomes))
	return nil
}

func newReport(pts []geometry.Point, outcomes []points.Outcome) processReport {
	report := processReport{Points: pts, Results: make([]methodReport, 0, len(outcomes))}
	for _, o := range outcomes {
		entry := methodReport{Method: o.Method.String(), Result: o.Result}
		if o.Err != nil {
			entry.Error = o.Err.Error()
		}
		report.Results = append(report.Results, entry)
	}
	return report
}
