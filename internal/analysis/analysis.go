// Package analysis derives physical observables from evolved wavefunctions:
// scattering probabilities and the momentum-space density.
package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

// Scattering is the probability split of a frame around the barrier.
type Scattering struct {
	Reflected   float64 // probability left of barrier_start
	Inside      float64 // probability within the barrier
	Transmitted float64 // probability right of barrier_end
}

// Split integrates |psi|^2 h over the three regions for one frame.
func Split(r *qsim.Result, f qsim.Frame) Scattering {
	var s Scattering
	for i, x := range r.Interior {
		c := f.Psi[i]
		p := (real(c)*real(c) + imag(c)*imag(c)) * r.Step
		switch {
		case x < r.Params.BarrierStart:
			s.Reflected += p
		case x > r.Params.BarrierEnd:
			s.Transmitted += p
		default:
			s.Inside += p
		}
	}
	return s
}

// CenterOfMass returns the expectation value of position for one frame.
func CenterOfMass(r *qsim.Result, f qsim.Frame) float64 {
	var mean, norm float64
	for i, x := range r.Interior {
		c := f.Psi[i]
		p := real(c)*real(c) + imag(c)*imag(c)
		mean += x * p
		norm += p
	}
	if norm == 0 {
		return 0
	}
	return mean / norm
}

// MomentumDensity returns the momentum grid (ascending) and |phi(k)|^2 for a
// wavefunction sampled at uniform spacing step. The density is normalized so
// sum(|phi|^2 * dk) = sum(|psi|^2 * h).
func MomentumDensity(psi []complex128, step float64) (k, density []float64) {
	n := len(psi)
	phi := fft.FFT(psi)

	// FFT bin frequencies in [0, n/2) then [-n/2, 0); scale to wavenumbers
	// and shift so k ascends.
	dk := 2 * math.Pi / (float64(n) * step)
	half := (n + 1) / 2
	k = make([]float64, n)
	density = make([]float64, n)

	// Continuum normalization: phi(k) = h/sqrt(2 pi) * DFT coefficient.
	scale := step * step / (2 * math.Pi)

	for i := 0; i < n; i++ {
		var freq int
		if i < half {
			freq = i
		} else {
			freq = i - n
		}
		// Index after fftshift.
		j := i + n - half
		if j >= n {
			j -= n
		}
		k[j] = float64(freq) * dk
		re, im := real(phi[i]), imag(phi[i])
		density[j] = (re*re + im*im) * scale
	}
	return k, density
}
