// SPDX-License-Identifier: MIT
// Package problem: sentinel error set.

package problem

import "errors"

var (
	// ErrInadmissible is returned by CheckAdmissible when x lies outside the
	// problem's admissible domain. The wrapped message names the reason.
	ErrInadmissible = errors.New("problem: point not admissible")

	// ErrUndefined signals that a residual or Jacobian cannot be evaluated at
	// x (division by zero, log of a non-positive value, ...). It is an
	// "undefined here" marker, not a defect of the problem.
	ErrUndefined = errors.New("problem: function undefined at point")

	// ErrDimension indicates a vector whose length differs from the one the
	// operation requires (n for x and f, JacobianNnz for pattern and values).
	ErrDimension = errors.New("problem: vector length mismatch")

	// ErrIndex indicates an exact-solution or initial-point index outside
	// [0, count).
	ErrIndex = errors.New("problem: index out of range")
)
