// Package encode serializes simulation results. Two encoders share one
// interface over the same Result: the compact binary layout and the legacy
// self-describing JSON structure. Floating values narrow to float32 only
// here, never earlier in the pipeline.
package encode

import (
	"errors"
	"fmt"
	"math"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

// ErrOverflow indicates a payload dimension cannot be represented in its
// declared uint32 header field. Unreachable with realistic parameters, but a
// mismatch must fail loudly rather than truncate.
var ErrOverflow = errors.New("encode: header field overflow")

// BinaryFormat is the human-readable descriptor advertised alongside binary
// payloads.
const BinaryFormat = "qtunnel-frames/v1: uint32 frame_count, uint32 grid_size, float32 x[grid_size], then per frame float32 re[grid_size], float32 im[grid_size]; little-endian"

// Encoder serializes one Result into a response body.
type Encoder interface {
	Encode(r *qsim.Result) ([]byte, error)
	ContentType() string
}

// Meta is the transport-level companion metadata for a payload.
type Meta struct {
	FrameCount uint32
	GridSize   uint32
	Format     string
}

// Describe validates payload dimensions against the uint32 header fields and
// returns the companion metadata.
func Describe(r *qsim.Result) (Meta, error) {
	return describe(len(r.Interior), len(r.Frames))
}

func describe(gridSize, frameCount int) (Meta, error) {
	if uint64(gridSize) > math.MaxUint32 {
		return Meta{}, fmt.Errorf("%w: grid size %d", ErrOverflow, gridSize)
	}
	if uint64(frameCount) > math.MaxUint32 {
		return Meta{}, fmt.Errorf("%w: frame count %d", ErrOverflow, frameCount)
	}
	return Meta{
		FrameCount: uint32(frameCount),
		GridSize:   uint32(gridSize),
		Format:     BinaryFormat,
	}, nil
}
