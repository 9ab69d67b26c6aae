// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Functions return these sentinels wrapped with call-site context via %w;
// callers and tests branch with errors.Is. Nothing in this package panics on
// caller-supplied data.

package sparse

import "errors"

var (
	// ErrBadDimension is returned when the system size n is not positive.
	ErrBadDimension = errors.New("sparse: dimension must be positive")

	// ErrIndexOutOfRange indicates a coordinate with row or col outside [0, n).
	ErrIndexOutOfRange = errors.New("sparse: coordinate out of range")

	// ErrPatternMismatch indicates that a pattern and its value vector (or a
	// declared nonzero count) disagree in length.
	ErrPatternMismatch = errors.New("sparse: pattern/value length mismatch")

	// ErrMalformed reports a CSR whose row pointers or column ordering break
	// the compressed-row invariants.
	ErrMalformed = errors.New("sparse: malformed CSR")
)
