// SPDX-License-Identifier: MIT

// Package matrix offers a small dense, row-major matrix used as the
// comparison surface for Jacobian checks.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set/Row (errors, never panics).
//   - Validators (ValidateSquare, ValidateVecLen, ValidateFinite) that
//     return package sentinels wrapped with a validator tag.
//
// Dense storage is O(r·c); it is meant for the small and medium systems the
// benchmark catalog densifies for diagnostics. Large sparse Jacobians stay
// in sparse.CSR.
package matrix
