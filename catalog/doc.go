// SPDX-License-Identifier: MIT

// Package catalog holds the benchmark systems: classic small problems
// (Dennis-Schnabel, Powell, Freudenstein-Roth, helical valley), gradient
// systems of sums of squares (Wood, Beale, Himmelblau), and scalable
// families (Broyden, Rosenbrock, boundary value and integral equation
// discretizations, exponential, logarithmic, Hilbert, Chandrasekhar, ...).
//
// Every family has an exported constructor that validates its dimension and
// parameters, so callers can build members the default catalog does not
// register. Register adds the default set to a registry.Builder under keys
// such as "broyden-tridiagonal/alpha=0.1/n=5"; New returns the built
// registry.
//
// Jacobian patterns come in three shapes: fixed sparse layouts written
// directly, dense row-major layouts, and accumulated layouts whose cells
// collect several contributions (HAS64, Broyden banded) or repeat in the
// pattern (GradientSystem).
package catalog
