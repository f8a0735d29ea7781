package qsim

import "gonum.org/v1/gonum/mat"

// AssembleHamiltonian builds the (N-1)x(N-1) discretized Hamiltonian over the
// interior grid: a second-order finite-difference kinetic operator plus the
// diagonal barrier potential.
//
//	H[i][i]   = 2K + V(x_{i+1})
//	H[i][i±1] = -K        with K = hbar^2 / (2 m h^2)
//
// The matrix is symmetric by construction and never mutated after assembly;
// the potential slice covers the full grid, so interior point i reads v[i+1].
func AssembleHamiltonian(g *Grid, v []float64, mass, hbar float64) *mat.SymDense {
	n := len(g.Interior)
	k := hbar * hbar / (2 * mass * g.Step * g.Step)

	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, 2*k+v[i+1])
		if i+1 < n {
			h.SetSym(i, i+1, -k)
		}
	}
	return h
}
