// Package qsim implements the spectral solver for 1D quantum wave packet
// scattering off a rectangular potential barrier.
//
// The pipeline is a fixed dataflow, executed once per request:
//
//   - build the spatial grid and the barrier potential
//   - assemble the discretized Hamiltonian over the interior grid points
//   - diagonalize it once ([Diagonalize], the dominant O(N^3) cost)
//   - project the initial Gaussian packet onto the eigenbasis
//   - reconstruct the wavefunction at each time sample by phase rotation
//   - downsample the resulting frames to a bounded count
//
// [Engine.Run] ties the stages together and returns a [Result] that the
// encoders in internal/encode serialize. All arithmetic is float64/complex128;
// narrowing to float32 happens only at encode time.
//
// Engine instances are stateless and safe for concurrent use; each call to
// Run owns its own matrices and frame buffers.
package qsim
