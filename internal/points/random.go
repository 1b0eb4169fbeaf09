// ABOUTME: Random point generation for quick experiments
// ABOUTME: Integer coordinates drawn uniformly from a closed range
package points

import (
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/harper/pointwise/internal/errs"
	"github.com/harper/pointwise/internal/geometry"
)

// Default coordinate range for generated points
const (
	DefaultRandomMin = -10
	DefaultRandomMax = 10
)

// Generator produces random points with integer coordinates in [Min, Max].
// It is safe for concurrent use; one Generator serves every session.
type Generator struct {
	Min int
	Max int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewGenerator creates a generator over [min, max].
// A nil rng uses a randomly seeded source.
func NewGenerator(min, max int, rng *rand.Rand) *Generator {
	if min > max {
		min, max = max, min
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{Min: min, Max: max, rng: rng}
}

// Generate returns n random points
func (g *Generator) Generate(n int) ([]geometry.Point, error) {
	if n <= 0 {
		return nil, errs.NotPositive(strconv.Itoa(n), "point count")
	}

	span := g.Max - g.Min + 1
	pts := make([]geometry.Point, n)

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range pts {
		pts[i] = geometry.Point{
			X: float64(g.Min + g.rng.IntN(span)),
			Y: float64(g.Min + g.rng.IntN(span)),
		}
	}
	return pts, nil
}
