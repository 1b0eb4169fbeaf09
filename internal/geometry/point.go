// ABOUTME: Point value type and its textual forms
// ABOUTME: Parses "x,y" input and renders points for prompts and results
package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/harper/pointwise/internal/errs"
	"github.com/spf13/cast"
)

// Point is an immutable pair of coordinates. Equality is by value.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the coordinate-wise sum of p and q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String renders the point as "(x, y)"
func (p Point) String() string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatPoints renders a sequence as "[(x, y), (x, y)]"
func FormatPoints(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ParsePoint parses "x,y". Whitespace around either field is ignored.
func ParsePoint(text string) (Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Point{}, errs.InvalidFormat(text)
	}

	x, err := parseCoord(parts[0], "X coordinate")
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoord(parts[1], "Y coordinate")
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseCoord(field, name string) (float64, error) {
	token := strings.TrimSpace(field)
	if token == "" {
		return 0, errs.InvalidNumber(token, name)
	}
	v, err := cast.ToFloat64E(token)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.InvalidNumber(token, name)
	}
	return v, nil
}
