package qsim

import (
	"math"
	"sort"
	"testing"
)

// Free-particle eigenvalues of the discrete Laplacian with zero boundaries
// are known analytically: E_m = 2K(1 - cos(m pi / N)), m = 1..N-1.
func TestDiagonalize_FreeParticleEigenvalues(t *testing.T) {
	const n = 16
	g, err := NewGrid(0, 1, n)
	if err != nil {
		t.Fatal(err)
	}
	v := make([]float64, len(g.X))
	h := AssembleHamiltonian(g, v, 1.0, 1.0)

	sp, err := Diagonalize(h, g.Step)
	if err != nil {
		t.Fatal(err)
	}

	if len(sp.Values) != n-1 || len(sp.Vectors) != n-1 {
		t.Fatalf("expected %d eigenpairs, got %d values, %d vectors", n-1, len(sp.Values), len(sp.Vectors))
	}

	k := 1.0 / (2 * g.Step * g.Step)
	for m := 1; m < n; m++ {
		want := 2 * k * (1 - math.Cos(float64(m)*math.Pi/float64(n)))
		got := sp.Values[m-1]
		if math.Abs(got-want) > 1e-6*want {
			t.Errorf("E_%d = %g, want %g", m, got, want)
		}
	}
}

func TestDiagonalize_AscendingValues(t *testing.T) {
	g, _ := NewGrid(-6.5, 6.5, 64)
	v := BarrierPotential(g, 0.0, 0.5, 800.0)
	sp, err := Diagonalize(AssembleHamiltonian(g, v, 1.0, 1.0), g.Step)
	if err != nil {
		t.Fatal(err)
	}
	if !sort.Float64sAreSorted(sp.Values) {
		t.Error("eigenvalues not in ascending order")
	}
}

func TestDiagonalize_DiscreteOrthonormality(t *testing.T) {
	g, _ := NewGrid(-6.5, 6.5, 40)
	v := BarrierPotential(g, 0.0, 0.5, 800.0)
	sp, err := Diagonalize(AssembleHamiltonian(g, v, 1.0, 1.0), g.Step)
	if err != nil {
		t.Fatal(err)
	}

	for a := range sp.Vectors {
		for b := a; b < len(sp.Vectors); b++ {
			var dot float64
			for i := range sp.Vectors[a] {
				dot += sp.Vectors[a][i] * sp.Vectors[b][i]
			}
			dot *= g.Step

			want := 0.0
			if a == b {
				want = 1.0
			}
			if math.Abs(dot-want) > 1e-9 {
				t.Fatalf("<v_%d, v_%d> = %g, want %g", a, b, dot, want)
			}
		}
	}
}
