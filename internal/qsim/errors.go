package qsim

import "errors"

// Domain errors for simulation requests. All three are terminal: the caller
// gets a failed response, never a partial payload.
var (
	// ErrInvalidDomain indicates malformed spatial or time parameters.
	// Raised before any computation starts.
	ErrInvalidDomain = errors.New("qsim: invalid domain parameters")

	// ErrSolverDivergence indicates the symmetric eigensolver failed to
	// converge. Retrying with identical input yields the identical failure,
	// so it is reported as a computation fault and never retried.
	ErrSolverDivergence = errors.New("qsim: eigensolver failed to converge")
)
