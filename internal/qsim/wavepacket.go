package qsim

import "math"

// InitialWavePacket evaluates the normalized Gaussian packet over the
// interior grid:
//
//	psi0(x) = exp(i p x) * exp(-(x-x0)^2 / (4 sigma^2))
//
// rescaled so the discrete probability sum(|psi0|^2 * h) is 1.
func InitialWavePacket(interior []float64, momentum, sigma, x0, step float64) []complex128 {
	psi := make([]complex128, len(interior))
	for i, x := range interior {
		d := x - x0
		env := math.Exp(-d * d / (4 * sigma * sigma))
		psi[i] = complex(env*math.Cos(momentum*x), env*math.Sin(momentum*x))
	}
	normalize(psi, step)
	return psi
}

// Project computes the eigenbasis coefficients c_k = sum(v_k * psi0 * h).
// The coefficients are computed once and reused for every time sample.
func Project(sp *Spectrum, psi0 []complex128, step float64) []complex128 {
	coeffs := make([]complex128, len(sp.Vectors))
	for k, vec := range sp.Vectors {
		var c complex128
		for i, v := range vec {
			c += complex(v, 0) * psi0[i]
		}
		coeffs[k] = c * complex(step, 0)
	}
	return coeffs
}

// Density returns the probability density |psi|^2 per grid point.
func Density(psi []complex128) []float64 {
	d := make([]float64, len(psi))
	for i, c := range psi {
		re, im := real(c), imag(c)
		d[i] = re*re + im*im
	}
	return d
}

// Norm returns the discrete probability sum(|psi|^2 * h). Unitary evolution
// keeps it at 1 for every frame.
func Norm(psi []complex128, step float64) float64 {
	var sum float64
	for _, c := range psi {
		re, im := real(c), imag(c)
		sum += re*re + im*im
	}
	return sum * step
}

func normalize(psi []complex128, step float64) {
	a := Norm(psi, step)
	if a == 0 {
		return
	}
	s := complex(1/math.Sqrt(a), 0)
	for i := range psi {
		psi[i] *= s
	}
}
