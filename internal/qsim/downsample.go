package qsim

// Downsample selects min(len(frames), maxFrames) frames at index-uniform
// stride, always keeping the first and last frame. Selected frames are exact
// snapshots; skipped frames are discarded, not averaged. Identical input
// always yields the identical selection.
//
// A budget of 1 keeps only the t=0 frame, since both endpoints cannot fit.
func Downsample(frames []Frame, maxFrames int) []Frame {
	if maxFrames < 1 {
		maxFrames = 1
	}
	if len(frames) <= maxFrames {
		return frames
	}
	if maxFrames == 1 {
		return frames[:1]
	}

	out := make([]Frame, maxFrames)
	last := len(frames) - 1
	for i := range out {
		// Integer index interpolation over [0, last]; strictly increasing
		// because len(frames) > maxFrames.
		out[i] = frames[i*last/(maxFrames-1)]
	}
	return out
}
