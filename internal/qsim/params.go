package qsim

import "fmt"

// Default parameter values, matching the public request contract.
const (
	DefaultMass      = 1.0
	DefaultHbar      = 1.0
	DefaultXMin      = -6.5
	DefaultXMax      = 6.5
	DefaultN         = 1000
	DefaultMomentum  = 40.0
	DefaultSigma     = 0.15
	DefaultX0        = -3.0
	DefaultBarrierLo = 0.0
	DefaultBarrierHi = 0.5
	DefaultDt        = 0.001
	DefaultTMax      = 2.0
	DefaultMaxFrames = 500
)

// SimulationParameters fully describes one scattering request. The boundary
// layer fills omitted fields from DefaultParameters before handing the struct
// to the engine; the engine treats it as immutable.
type SimulationParameters struct {
	Mass     float64 `json:"mass" yaml:"mass"`
	Hbar     float64 `json:"hbar" yaml:"hbar"`
	XMin     float64 `json:"xmin" yaml:"xmin"`
	XMax     float64 `json:"xmax" yaml:"xmax"`
	N        int     `json:"N" yaml:"n"`
	Momentum float64 `json:"momentum" yaml:"momentum"`
	Sigma    float64 `json:"sigma" yaml:"sigma"`
	X0       float64 `json:"x0" yaml:"x0"`

	BarrierStart float64 `json:"barrier_start" yaml:"barrier_start"`
	BarrierEnd   float64 `json:"barrier_end" yaml:"barrier_end"`

	Dt   float64 `json:"dt" yaml:"dt"`
	TMax float64 `json:"t_max" yaml:"t_max"`

	// NumTimeSteps selects evenly spaced samples in [0, TMax]. Zero means
	// unset: the sample count is derived from Dt and TMax instead.
	NumTimeSteps int `json:"num_time_steps,omitempty" yaml:"num_time_steps"`

	// MaxFrames bounds the number of frames surviving downsampling.
	MaxFrames int `json:"max_frames,omitempty" yaml:"max_frames"`
}

// DefaultParameters returns the canonical parameter set: a packet launched
// from the left at the default barrier.
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		Mass:         DefaultMass,
		Hbar:         DefaultHbar,
		XMin:         DefaultXMin,
		XMax:         DefaultXMax,
		N:            DefaultN,
		Momentum:     DefaultMomentum,
		Sigma:        DefaultSigma,
		X0:           DefaultX0,
		BarrierStart: DefaultBarrierLo,
		BarrierEnd:   DefaultBarrierHi,
		Dt:           DefaultDt,
		TMax:         DefaultTMax,
		MaxFrames:    DefaultMaxFrames,
	}
}

// Validate rejects parameter sets that cannot describe a well-posed
// simulation. Every failure wraps ErrInvalidDomain.
func (p SimulationParameters) Validate() error {
	switch {
	case p.Mass <= 0:
		return fmt.Errorf("%w: mass must be positive, got %g", ErrInvalidDomain, p.Mass)
	case p.Hbar <= 0:
		return fmt.Errorf("%w: hbar must be positive, got %g", ErrInvalidDomain, p.Hbar)
	case p.XMax <= p.XMin:
		return fmt.Errorf("%w: xmax (%g) must exceed xmin (%g)", ErrInvalidDomain, p.XMax, p.XMin)
	case p.N < 3:
		return fmt.Errorf("%w: N must be at least 3, got %d", ErrInvalidDomain, p.N)
	case p.Sigma <= 0:
		return fmt.Errorf("%w: sigma must be positive, got %g", ErrInvalidDomain, p.Sigma)
	case p.BarrierStart <= p.XMin:
		return fmt.Errorf("%w: barrier_start (%g) must lie inside the domain", ErrInvalidDomain, p.BarrierStart)
	case p.BarrierEnd < p.BarrierStart:
		return fmt.Errorf("%w: barrier_end (%g) precedes barrier_start (%g)", ErrInvalidDomain, p.BarrierEnd, p.BarrierStart)
	case p.BarrierEnd >= p.XMax:
		return fmt.Errorf("%w: barrier_end (%g) must lie inside the domain", ErrInvalidDomain, p.BarrierEnd)
	case p.Dt <= 0:
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidDomain, p.Dt)
	case p.TMax < 0:
		return fmt.Errorf("%w: t_max must not be negative, got %g", ErrInvalidDomain, p.TMax)
	case p.NumTimeSteps < 0:
		return fmt.Errorf("%w: num_time_steps must not be negative, got %d", ErrInvalidDomain, p.NumTimeSteps)
	case p.MaxFrames < 1:
		return fmt.Errorf("%w: max_frames must be at least 1, got %d", ErrInvalidDomain, p.MaxFrames)
	}
	return nil
}

// TimeSamples returns the ordered evaluation times, always starting at t=0.
// With NumTimeSteps set, the samples span [0, TMax] evenly; otherwise they
// step by Dt up to TMax (TMax/Dt + 1 samples).
func (p SimulationParameters) TimeSamples() []float64 {
	if p.NumTimeSteps > 0 {
		ts := make([]float64, p.NumTimeSteps)
		if p.NumTimeSteps == 1 {
			return ts
		}
		span := p.TMax / float64(p.NumTimeSteps-1)
		for i := range ts {
			ts[i] = float64(i) * span
		}
		return ts
	}

	n := int(p.TMax/p.Dt) + 1
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * p.Dt
	}
	return ts
}
