package server

import "github.com/Alper-bit/QTunelling-API/internal/qsim"

// simulationRequest is the wire form of a request: every field optional so
// explicit zeros are distinguishable from omissions. Omitted fields fall back
// to the configured defaults.
type simulationRequest struct {
	Mass         *float64 `json:"mass"`
	Hbar         *float64 `json:"hbar"`
	XMin         *float64 `json:"xmin"`
	XMax         *float64 `json:"xmax"`
	N            *int     `json:"N"`
	Momentum     *float64 `json:"momentum"`
	Sigma        *float64 `json:"sigma"`
	X0           *float64 `json:"x0"`
	BarrierStart *float64 `json:"barrier_start"`
	BarrierEnd   *float64 `json:"barrier_end"`
	Dt           *float64 `json:"dt"`
	TMax         *float64 `json:"t_max"`
	NumTimeSteps *int     `json:"num_time_steps"`
	MaxFrames    *int     `json:"max_frames"`
}

func (r simulationRequest) apply(p qsim.SimulationParameters) qsim.SimulationParameters {
	if r.Mass != nil {
		p.Mass = *r.Mass
	}
	if r.Hbar != nil {
		p.Hbar = *r.Hbar
	}
	if r.XMin != nil {
		p.XMin = *r.XMin
	}
	if r.XMax != nil {
		p.XMax = *r.XMax
	}
	if r.N != nil {
		p.N = *r.N
	}
	if r.Momentum != nil {
		p.Momentum = *r.Momentum
	}
	if r.Sigma != nil {
		p.Sigma = *r.Sigma
	}
	if r.X0 != nil {
		p.X0 = *r.X0
	}
	if r.BarrierStart != nil {
		p.BarrierStart = *r.BarrierStart
	}
	if r.BarrierEnd != nil {
		p.BarrierEnd = *r.BarrierEnd
	}
	if r.Dt != nil {
		p.Dt = *r.Dt
	}
	if r.TMax != nil {
		p.TMax = *r.TMax
	}
	if r.NumTimeSteps != nil {
		p.NumTimeSteps = *r.NumTimeSteps
	}
	if r.MaxFrames != nil {
		p.MaxFrames = *r.MaxFrames
	}
	return p
}
