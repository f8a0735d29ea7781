package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is the uniform spatial discretization of [XMin, XMax].
type Grid struct {
	// X holds all N+1 points, endpoints included.
	X []float64
	// Interior holds the N-1 points excluding both boundaries. The
	// Hamiltonian acts on this basis (fixed zero-boundary condition).
	Interior []float64
	// Step is the uniform spacing h = (xmax-xmin)/N.
	Step float64
}

// NewGrid builds the full and interior grids for an N-interval domain.
func NewGrid(xmin, xmax float64, n int) (*Grid, error) {
	if xmax <= xmin {
		return nil, fmt.Errorf("%w: xmax (%g) must exceed xmin (%g)", ErrInvalidDomain, xmax, xmin)
	}
	if n < 3 {
		return nil, fmt.Errorf("%w: N must be at least 3, got %d", ErrInvalidDomain, n)
	}

	x := make([]float64, n+1)
	floats.Span(x, xmin, xmax)

	return &Grid{
		X:        x,
		Interior: x[1:n],
		Step:     (xmax - xmin) / float64(n),
	}, nil
}

// BarrierPotential evaluates the rectangular barrier over the full grid:
// height inside (start, end), zero elsewhere. Equal bounds give a free
// particle.
func BarrierPotential(g *Grid, start, end, height float64) []float64 {
	v := make([]float64, len(g.X))
	for i, x := range g.X {
		if x > start && x < end {
			v[i] = height
		}
	}
	return v
}
