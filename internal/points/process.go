// ABOUTME: Point-processing dispatch and the four pairing strategies
// ABOUTME: Every strategy returns input[i] + partner(i) in input order
package points

import (
	"github.com/harper/pointwise/internal/errs"
	"github.com/harper/pointwise/internal/geometry"
)

// Process applies method to pts and returns a new sequence of the same length.
// pts is never modified. Unknown methods are always a failure; there is no
// default method.
func Process(pts []geometry.Point, method Method) ([]geometry.Point, error) {
	if len(pts) == 0 {
		return nil, errs.EmptyInput()
	}

	switch method {
	case Original:
		return pairNearest(pts), nil
	case Sequential:
		return pairSequential(pts), nil
	case MinSum:
		return pairWith(pts, minBy(pts, lessSum)), nil
	case MinX:
		return pairWith(pts, minBy(pts, lessXY)), nil
	default:
		return nil, errs.UnknownMethod(method.String())
	}
}

// Outcome is the result of one method in Compare
type Outcome struct {
	Method Method           `json:"method" yaml:"method"`
	Result []geometry.Point `json:"result,omitempty" yaml:"result,omitempty"`
	Err    error            `json:"-" yaml:"-"`
}

// Compare runs every method against pts, in menu order
func Compare(pts []geometry.Point) []Outcome {
	outcomes := make([]Outcome, 0, len(Methods))
	for _, m := range Methods {
		result, err := Process(pts, m)
		outcomes = append(outcomes, Outcome{Method: m, Result: result, Err: err})
	}
	return outcomes
}

// pairNearest adds each point to its nearest distinct neighbour.
// A point with no distinct neighbour is added to itself.
func pairNearest(pts []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		partner, ok, err := geometry.Nearest(p, pts)
		if err != nil || !ok {
			partner = p
		}
		out[i] = p.Add(partner)
	}
	return out
}

func pairSequential(pts []geometry.Point) []geometry.Point {
	n := len(pts)
	out := make([]geometry.Point, n)
	for i, p := range pts {
		out[i] = p.Add(pts[(i+1)%n])
	}
	return out
}

func pairWith(pts []geometry.Point, special geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(special)
	}
	return out
}

// minBy returns the first point not beaten by any later one under less.
// pts must be non-empty.
func minBy(pts []geometry.Point, less func(a, b geometry.Point) bool) geometry.Point {
	best := pts[0]
	for _, p := range pts[1:] {
		if less(p, best) {
			best = p
		}
	}
	return best
}

func lessSum(a, b geometry.Point) bool {
	return a.X+a.Y < b.X+b.Y
}

func lessXY(a, b geometry.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
