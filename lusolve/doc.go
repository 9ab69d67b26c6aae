// SPDX-License-Identifier: MIT

// Package lusolve solves square sparse linear systems given in CSR form
// with a Markowitz-pivoting sparse LU (github.com/edp1096/sparse), and
// builds on it the one Newton step J(x)·dx = -F(x) used to probe catalog
// Jacobians.
//
// The factorization works on 1-based indices; the translation to and from
// the 0-based CSR form happens here and nowhere else.
//
// Solve creates and destroys one factorization per call. Problems larger
// than a few thousand unknowns are outside the intended use.
package lusolve
