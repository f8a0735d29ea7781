package encode

import (
	"encoding/json"
	"math"
	"testing"
)

func TestLegacy_Schema(t *testing.T) {
	res := sampleResult(t)
	body, err := Legacy{}.Encode(res)
	if err != nil {
		t.Fatal(err)
	}

	var payload LegacyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}

	if payload.Status != "success" {
		t.Errorf("status = %q, want success", payload.Status)
	}
	if len(payload.X) != len(res.X) {
		t.Errorf("x has %d points, want %d", len(payload.X), len(res.X))
	}
	if len(payload.XInner) != len(res.Interior) {
		t.Errorf("x_inner has %d points, want %d", len(payload.XInner), len(res.Interior))
	}
	if len(payload.Potential) != len(res.Potential) {
		t.Errorf("potential has %d points, want %d", len(payload.Potential), len(res.Potential))
	}
	if len(payload.Eigenenergies) != len(res.Eigenvalues) {
		t.Errorf("eigenenergies has %d entries, want %d", len(payload.Eigenenergies), len(res.Eigenvalues))
	}
	if payload.BarrierHeight != res.BarrierHeight {
		t.Errorf("barrier_height = %g, want %g", payload.BarrierHeight, res.BarrierHeight)
	}
	if len(payload.TimeEvolution) != len(res.Frames) {
		t.Fatalf("time_evolution has %d frames, want %d", len(payload.TimeEvolution), len(res.Frames))
	}
}

func TestLegacy_FramesCarryDensities(t *testing.T) {
	res := sampleResult(t)
	body, err := Legacy{}.Encode(res)
	if err != nil {
		t.Fatal(err)
	}

	var payload LegacyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatal(err)
	}

	for fi, f := range payload.TimeEvolution {
		if f.Time != res.Frames[fi].Time {
			t.Errorf("frame %d time = %g, want %g", fi, f.Time, res.Frames[fi].Time)
		}
		var sum float64
		for i, d := range f.Wavefunction {
			if d < 0 {
				t.Fatalf("frame %d has negative density at %d", fi, i)
			}
			sum += d * res.Step
		}
		if math.Abs(sum-1) > 1e-3 {
			t.Errorf("frame %d density integrates to %g, want 1", fi, sum)
		}
	}
}
