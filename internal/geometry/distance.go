// ABOUTME: Euclidean distance and nearest-neighbour search over point sequences
// ABOUTME: Nearest excludes points equal by value to the query point
package geometry

import (
	"math"

	"github.com/harper/pointwise/internal/errs"
)

// MinNeighbourPoints is the smallest sequence Nearest accepts
const MinNeighbourPoints = 2

// Distance returns the Euclidean distance between a and b
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Nearest returns the point of pts closest to target, skipping every point
// equal to target by value. Ties go to the first occurrence.
//
// ok is false when no point differs from target; callers treat that as
// "pair the point with itself", not as a failure.
func Nearest(target Point, pts []Point) (nearest Point, ok bool, err error) {
	if len(pts) < MinNeighbourPoints {
		return Point{}, false, errs.InsufficientPoints(MinNeighbourPoints, len(pts))
	}

	best := math.Inf(1)
	for _, p := range pts {
		if p == target {
			continue
		}
		if d := Distance(target, p); !ok || d < best {
			nearest, best, ok = p, d, true
		}
	}
	return nearest, ok, nil
}
