// SPDX-License-Identifier: MIT

// Package problem defines the contract every benchmark system satisfies and
// small helpers for consuming it.
//
// A Problem supplies F(x), its Jacobian as (pattern, values) in the sparse
// coordinate form, and metadata: exact solutions, initial points, an
// admissibility predicate and box bounds. Catalog entries embed Base for
// identity and defaults.
//
// Error taxonomy (errors.Is):
//
//   - ErrInadmissible: x is outside the domain (skip, not a defect);
//   - ErrUndefined: the formula cannot be evaluated at x (skip);
//   - ErrDimension, ErrIndex: caller misuse.
//
// Classify folds an error into a Status; EvaluateChecked and JacobianChecked
// also treat NaN/Inf output as StatusUndefined.
package problem
