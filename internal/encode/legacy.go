package encode

import (
	"encoding/json"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

// Legacy emits the self-describing JSON structure consumed by callers that
// predate the binary format. Wavefunction arrays carry probability densities.
type Legacy struct{}

func (Legacy) ContentType() string { return "application/json" }

// LegacyFrame is one time snapshot in the legacy payload.
type LegacyFrame struct {
	Time         float64   `json:"time"`
	Wavefunction []float64 `json:"wavefunction"`
}

// LegacyPayload mirrors the historical response schema field for field.
type LegacyPayload struct {
	X                   []float64     `json:"x"`
	XInner              []float64     `json:"x_inner"`
	Potential           []float64     `json:"potential"`
	InitialWavefunction []float64     `json:"initial_wavefunction"`
	TimeEvolution       []LegacyFrame `json:"time_evolution"`
	Eigenenergies       []float64     `json:"eigenenergies"`
	BarrierHeight       float64       `json:"barrier_height"`
	Status              string        `json:"status"`
}

func (Legacy) Encode(r *qsim.Result) ([]byte, error) {
	if _, err := Describe(r); err != nil {
		return nil, err
	}

	frames := make([]LegacyFrame, len(r.Frames))
	for i, f := range r.Frames {
		frames[i] = LegacyFrame{Time: f.Time, Wavefunction: qsim.Density(f.Psi)}
	}

	return json.Marshal(LegacyPayload{
		X:                   r.X,
		XInner:              r.Interior,
		Potential:           r.Potential,
		InitialWavefunction: r.InitialDensity,
		TimeEvolution:       frames,
		Eigenenergies:       r.Eigenvalues,
		BarrierHeight:       r.BarrierHeight,
		Status:              "success",
	})
}
