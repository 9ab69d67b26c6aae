// SPDX-License-Identifier: MIT
// Package catalog: sentinel error set.

package catalog

import "errors"

var (
	// ErrInvalidDimension is returned by a constructor when n does not fit the
	// family (too small, odd where even is required, not a multiple of 4, ...).
	ErrInvalidDimension = errors.New("catalog: invalid dimension")

	// ErrInvalidParameter is returned by a constructor for a parameter outside
	// the family's range (non-finite, non-positive scale, ...).
	ErrInvalidParameter = errors.New("catalog: invalid parameter")
)
