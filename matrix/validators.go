// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return plain sentinel errors wrapped with a validator tag so call sites
//     can branch with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only the error path allocates.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square, the shape every
// Jacobian of a catalog system has.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has length n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(len=%d, want %d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every component of x is finite (no NaN, no ±Inf).
// Returns the first offending index in the wrapped message.
// Time: O(len(x)).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}
