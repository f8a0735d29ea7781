package qsim

// DefaultBarrierHeight is the potential magnitude inside the barrier, in
// natural units. It is a deployment constant reported in every payload, not
// a request parameter.
const DefaultBarrierHeight = 800.0

// Engine runs simulation requests against a fixed barrier height. The zero
// value is not useful; use NewEngine.
type Engine struct {
	BarrierHeight float64
}

// NewEngine returns an engine with the given barrier height; zero or
// negative heights are kept as given so a free-particle deployment is
// expressible.
func NewEngine(barrierHeight float64) Engine {
	return Engine{BarrierHeight: barrierHeight}
}

// Result is the complete outcome of one request: everything the encoders and
// analysis need, before any precision narrowing.
type Result struct {
	Params SimulationParameters

	// X covers the full grid (N+1 points); Interior the N-1 inner points.
	X        []float64
	Interior []float64
	Step     float64

	Potential      []float64
	BarrierHeight  float64
	InitialDensity []float64
	Eigenvalues    []float64

	// Frames are ordered, monotonically increasing in time, first at t=0,
	// already downsampled to Params.MaxFrames.
	Frames []Frame
}

// Run executes the full pipeline: grid, Hamiltonian, one diagonalization,
// projection, per-frame reconstruction, downsampling. The result is owned by
// the caller; nothing is cached across requests.
func (e Engine) Run(p SimulationParameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(p.XMin, p.XMax, p.N)
	if err != nil {
		return nil, err
	}
	potential := BarrierPotential(grid, p.BarrierStart, p.BarrierEnd, e.BarrierHeight)

	hm := AssembleHamiltonian(grid, potential, p.Mass, p.Hbar)
	spectrum, err := Diagonalize(hm, grid.Step)
	if err != nil {
		return nil, err
	}

	psi0 := InitialWavePacket(grid.Interior, p.Momentum, p.Sigma, p.X0, grid.Step)
	coeffs := Project(spectrum, psi0, grid.Step)

	frames := Evolve(spectrum, coeffs, p.TimeSamples(), p.Hbar)
	frames = Downsample(frames, p.MaxFrames)

	return &Result{
		Params:         p,
		X:              grid.X,
		Interior:       grid.Interior,
		Step:           grid.Step,
		Potential:      potential,
		BarrierHeight:  e.BarrierHeight,
		InitialDensity: Density(psi0),
		Eigenvalues:    spectrum.Values,
		Frames:         frames,
	}, nil
}
