package qsim

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(-6.5, 6.5, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.X) != 1001 {
		t.Errorf("expected 1001 grid points, got %d", len(g.X))
	}
	if len(g.Interior) != 999 {
		t.Errorf("expected 999 interior points, got %d", len(g.Interior))
	}
	if g.X[0] != -6.5 || g.X[len(g.X)-1] != 6.5 {
		t.Errorf("endpoints not preserved: [%f, %f]", g.X[0], g.X[len(g.X)-1])
	}

	wantStep := 13.0 / 1000
	if math.Abs(g.Step-wantStep) > 1e-12 {
		t.Errorf("step: got %g, want %g", g.Step, wantStep)
	}
	for i := 1; i < len(g.X); i++ {
		if math.Abs((g.X[i]-g.X[i-1])-wantStep) > 1e-9 {
			t.Fatalf("non-uniform spacing at %d: %g", i, g.X[i]-g.X[i-1])
		}
	}
}

func TestNewGrid_MinimumN(t *testing.T) {
	g, err := NewGrid(0, 1, 3)
	if err != nil {
		t.Fatalf("N=3 must be accepted: %v", err)
	}
	if len(g.Interior) != 2 {
		t.Errorf("expected 2 interior points, got %d", len(g.Interior))
	}
}

func TestNewGrid_InvalidDomain(t *testing.T) {
	tests := []struct {
		name       string
		xmin, xmax float64
		n          int
	}{
		{"reversed bounds", 6.5, -6.5, 100},
		{"equal bounds", 1.0, 1.0, 100},
		{"N too small", -1, 1, 2},
		{"N zero", -1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.xmin, tt.xmax, tt.n); !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("expected ErrInvalidDomain, got %v", err)
			}
		})
	}
}

func TestBarrierPotential(t *testing.T) {
	g, _ := NewGrid(-6.5, 6.5, 1000)
	v := BarrierPotential(g, 0.0, 0.5, 800.0)

	if len(v) != len(g.X) {
		t.Fatalf("potential length %d, grid length %d", len(v), len(g.X))
	}
	for i, x := range g.X {
		want := 0.0
		if x > 0.0 && x < 0.5 {
			want = 800.0
		}
		if v[i] != want {
			t.Fatalf("V(%f) = %f, want %f", x, v[i], want)
		}
	}
}

func TestBarrierPotential_DegenerateBarrier(t *testing.T) {
	g, _ := NewGrid(-6.5, 6.5, 200)
	v := BarrierPotential(g, 0.25, 0.25, 800.0)
	for i, val := range v {
		if val != 0 {
			t.Fatalf("equal bounds must give zero potential, got %f at %d", val, i)
		}
	}
}
