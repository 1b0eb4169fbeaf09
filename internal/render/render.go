// ABOUTME: Table rendering for point sequences, results and method comparisons
// ABOUTME: Wraps go-pretty so the console and the bot share one layout
package render

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/harper/pointwise/internal/geometry"
	"github.com/harper/pointwise/internal/points"
)

// Mode controls the output format
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables, for chat clients
)

// Renderer formats engine output for one front end
type Renderer struct {
	Mode Mode

	// Preview limits how many result points a comparison row shows (0 = all)
	Preview int
}

// Console returns the renderer used by the terminal front end
func Console() Renderer {
	return Renderer{Mode: ASCII}
}

// Chat returns the renderer used by the bot front end
func Chat() Renderer {
	return Renderer{Mode: Markdown, Preview: 3}
}

func (r Renderer) newWriter() table.Writer {
	w := table.NewWriter()
	if r.Mode == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return w
}

func (r Renderer) finish(w table.Writer) string {
	if r.Mode == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// Points renders a numbered list of points
func (r Renderer) Points(pts []geometry.Point) string {
	w := r.newWriter()
	w.AppendHeader(table.Row{"#", "Point"})
	for i, p := range pts {
		w.AppendRow(table.Row{i + 1, p.String()})
	}
	w.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	return r.finish(w)
}

// Result renders original points next to their processed counterparts.
// pts and result must have equal length.
func (r Renderer) Result(pts, result []geometry.Point) string {
	w := r.newWriter()
	w.AppendHeader(table.Row{"#", "Point", "Result"})
	for i := range result {
		var src string
		if i < len(pts) {
			src = pts[i].String()
		}
		w.AppendRow(table.Row{i + 1, src, result[i].String()})
	}
	w.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	return r.finish(w)
}

// Comparison renders one row per method with its result or failure
func (r Renderer) Comparison(outcomes []points.Outcome) string {
	w := r.newWriter()
	w.AppendHeader(table.Row{"Method", "Result", "Count"})
	for _, o := range outcomes {
		if o.Err != nil {
			w.AppendRow(table.Row{o.Method.Title(), "error: " + o.Err.Error(), "-"})
			continue
		}
		w.AppendRow(table.Row{o.Method.Title(), r.preview(o.Result), len(o.Result)})
	}
	return r.finish(w)
}

func (r Renderer) preview(pts []geometry.Point) string {
	if r.Preview <= 0 || len(pts) <= r.Preview {
		return geometry.FormatPoints(pts)
	}
	s := geometry.FormatPoints(pts[:r.Preview])
	return strings.TrimSuffix(s, "]") + ", ...]"
}

// Banner renders a boxed section heading
func (r Renderer) Banner(title string) string {
	if r.Mode == Markdown {
		return fmt.Sprintf("**%s**", title)
	}
	rule := strings.Repeat("=", 40)
	return rule + "\n" + title + "\n" + rule
}

// Rule renders a separator line under menus
func (r Renderer) Rule() string {
	if r.Mode == Markdown {
		return ""
	}
	return strings.Repeat("-", 40)
}
