package qsim

import (
	"math"
	"runtime"
	"sync"
)

// Frame is one snapshot of the evolved wavefunction. Frames are independent
// and never mutated after creation.
type Frame struct {
	Time float64
	Psi  []complex128
}

// Reconstruct evaluates psi(x, t) = sum_k c_k * v_k(x) * exp(-i E_k t / hbar).
// Eigenvectors are time-invariant; only the phase factors change per frame.
func Reconstruct(sp *Spectrum, coeffs []complex128, t, hbar float64) []complex128 {
	n := len(sp.Vectors[0])
	psi := make([]complex128, n)
	for k, vec := range sp.Vectors {
		theta := -sp.Values[k] * t / hbar
		f := coeffs[k] * complex(math.Cos(theta), math.Sin(theta))
		if f == 0 {
			continue
		}
		for i, v := range vec {
			psi[i] += f * complex(v, 0)
		}
	}
	return psi
}

// Evolve reconstructs one frame per time sample. Frames share only the
// read-only spectrum and coefficients, so the work is chunked across CPUs;
// each frame writes its own slot, keeping the output deterministic.
func Evolve(sp *Spectrum, coeffs []complex128, times []float64, hbar float64) []Frame {
	frames := make([]Frame, len(times))
	parallelFor(len(times), 4, func(start, end int) {
		for i := start; i < end; i++ {
			frames[i] = Frame{Time: times[i], Psi: Reconstruct(sp, coeffs, times[i], hbar)}
		}
	})
	return frames
}

// parallelFor executes fn over chunks of [0, n). Small ranges run inline.
func parallelFor(n, minChunk int, fn func(start, end int)) {
	workers := runtime.NumCPU()
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}
	if n/minChunk < workers {
		workers = n / minChunk
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}
