// SPDX-License-Identifier: MIT

// Package validate checks catalog entries against themselves.
//
// For every registry entry and every probe point (initial points, then
// exact solutions) Run:
//
//   - skips the point when CheckAdmissible rejects it or F is undefined
//     there (ErrUndefined or non-finite output);
//   - compares the CSR-assembled Jacobian cell by cell with central
//     differences, h_j = sqrt(eps)·max(1,|x_j|), accepting
//     |a - fd| <= atol + rtol·max(|a|,|fd|) + noise, where noise is a
//     rounding allowance proportional to eps·|f|/h; a column whose shifted
//     points leave the domain is skipped;
//   - requires ‖F(x*)‖∞ <= ResidualTol at exact solutions;
//   - optionally (WithDescentProbe) solves J·dx = -F at initial points with
//     lusolve and requires ‖F‖ to decrease along dx.
//
// Structural defects (pattern length, out-of-range coordinates, unstable
// patterns, errors other than the domain sentinels) are integrity errors of
// that entry only.
//
// Work items run on an errgroup pool; the Report is ordered by registry
// position and point index whatever the scheduling.
package validate
