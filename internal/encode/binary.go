package encode

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

// Binary packs a Result into the fixed little-endian layout:
//
//	offset 0: uint32 frame_count
//	offset 4: uint32 grid_size
//	offset 8: float32 x[grid_size]
//	then per frame: float32 re[grid_size], float32 im[grid_size]
//
// Total size is 8 + 4*grid_size + frame_count*8*grid_size bytes, exactly.
type Binary struct{}

func (Binary) ContentType() string { return "application/octet-stream" }

func (Binary) Encode(r *qsim.Result) ([]byte, error) {
	meta, err := Describe(r)
	if err != nil {
		return nil, err
	}

	gs, fc := int(meta.GridSize), int(meta.FrameCount)
	buf := make([]byte, 8+4*gs+fc*8*gs)

	binary.LittleEndian.PutUint32(buf[0:], meta.FrameCount)
	binary.LittleEndian.PutUint32(buf[4:], meta.GridSize)

	off := 8
	for _, x := range r.Interior {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(x)))
		off += 4
	}
	for _, f := range r.Frames {
		for _, c := range f.Psi {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(real(c))))
			off += 4
		}
		for _, c := range f.Psi {
			binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(imag(c))))
			off += 4
		}
	}
	return buf, nil
}

// BinaryPayload is the decoded form of a binary response body. Used by the
// CLI to replay stored runs and by tests to verify the layout.
type BinaryPayload struct {
	X      []float32
	Frames [][]complex64
}

// DecodeBinary parses a payload produced by Binary.Encode.
func DecodeBinary(buf []byte) (*BinaryPayload, error) {
	if len(buf) < 8 {
		return nil, fmt.Errorf("encode: truncated payload: %d bytes", len(buf))
	}
	fc := int(binary.LittleEndian.Uint32(buf[0:]))
	gs := int(binary.LittleEndian.Uint32(buf[4:]))

	want := 8 + 4*gs + fc*8*gs
	if len(buf) != want {
		return nil, fmt.Errorf("encode: payload size %d, want %d for %d frames over %d points", len(buf), want, fc, gs)
	}

	p := &BinaryPayload{
		X:      make([]float32, gs),
		Frames: make([][]complex64, fc),
	}
	off := 8
	for i := range p.X {
		p.X[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
		off += 4
	}
	for f := range p.Frames {
		psi := make([]complex64, gs)
		for i := range psi {
			psi[i] = complex(math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])), 0)
			off += 4
		}
		for i := range psi {
			psi[i] += complex(0, math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])))
			off += 4
		}
		p.Frames[f] = psi
	}
	return p, nil
}
