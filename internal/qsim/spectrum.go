package qsim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Spectrum is the full eigendecomposition of a Hamiltonian: eigenvalues in
// ascending order paired with eigenvectors orthonormal under the discrete
// inner product sum(v*w*h). It is computed exactly once per request and
// shared read-only across all time samples.
type Spectrum struct {
	Values []float64
	// Vectors[k] is the eigenvector for Values[k], length N-1.
	Vectors [][]float64
}

// Diagonalize factorizes a symmetric Hamiltonian. step is the grid spacing
// used to rescale gonum's unit-norm eigenvectors to the discrete inner
// product.
func Diagonalize(h *mat.SymDense, step float64) (*Spectrum, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(h, true); !ok {
		return nil, ErrSolverDivergence
	}

	n, _ := h.Dims()
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// gonum normalizes columns to sum(v^2) = 1; dividing by sqrt(h) makes
	// them orthonormal under sum(v*w*h), matching the packet normalization.
	scale := 1 / math.Sqrt(step)

	sp := &Spectrum{
		Values:  eig.Values(nil),
		Vectors: make([][]float64, n),
	}
	for k := 0; k < n; k++ {
		vec := make([]float64, n)
		for i := 0; i < n; i++ {
			vec[i] = vecs.At(i, k) * scale
		}
		sp.Vectors[k] = vec
	}
	return sp, nil
}
