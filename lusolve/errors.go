// SPDX-License-Identifier: MIT

package lusolve

import "errors"

var (
	// ErrSingular is returned when the LU factorization finds no usable pivot
	// or the solution is not finite.
	ErrSingular = errors.New("lusolve: singular matrix")

	// ErrDimension reports a right-hand side whose length differs from n.
	ErrDimension = errors.New("lusolve: dimension mismatch")

	// ErrNoDescent reports that no step length along the Newton direction
	// reduced the residual.
	ErrNoDescent = errors.New("lusolve: no descent along newton direction")
)
