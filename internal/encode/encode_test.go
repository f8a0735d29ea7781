package encode

import (
	"errors"
	"testing"
)

func TestDescribe_Metadata(t *testing.T) {
	res := sampleResult(t)
	meta, err := Describe(res)
	if err != nil {
		t.Fatal(err)
	}
	if meta.GridSize != uint32(len(res.Interior)) {
		t.Errorf("grid size %d, want %d", meta.GridSize, len(res.Interior))
	}
	if meta.FrameCount != uint32(len(res.Frames)) {
		t.Errorf("frame count %d, want %d", meta.FrameCount, len(res.Frames))
	}
	if meta.Format == "" {
		t.Error("format descriptor must be advertised")
	}
}

func TestDescribe_Overflow(t *testing.T) {
	if _, err := describe(1<<32, 10); !errors.Is(err, ErrOverflow) {
		t.Errorf("grid size overflow not detected: %v", err)
	}
	if _, err := describe(10, 1<<32); !errors.Is(err, ErrOverflow) {
		t.Errorf("frame count overflow not detected: %v", err)
	}
	if _, err := describe(1<<32-1, 1<<32-1); err != nil {
		t.Errorf("max uint32 dimensions must pass: %v", err)
	}
}
