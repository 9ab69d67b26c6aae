// Package nlcatalog is a catalog of benchmark systems of nonlinear equations
// F(x) = 0, each with an analytic sparse Jacobian, starting points, known
// roots and a literature citation.
//
// 🚀 What is in the box?
//
//	A solver-agnostic test bed that brings together:
//		• Classic small systems: Dennis–Schnabel, Powell badly scaled,
//		  Freudenstein–Roth, helical valley, Wood, Beale, Himmelblau
//		• Scalable families: Broyden tridiagonal and banded, generalized
//		  Rosenbrock, extended Powell singular, discrete boundary value and
//		  integral equation, trigonometric, variably dimensioned, Brown
//		  almost-linear, Hilbert, Chandrasekhar H-equation, exponentials
//		• Domain-restricted entries: HAS64, logarithmic, Chandrasekhar
//		• Sparse plumbing: coordinate patterns, accumulation and CSR assembly
//		• A concurrent validation harness comparing every Jacobian with
//		  central differences
//
// Everything is organized under these subpackages:
//
//	sparse/    coordinates, accumulator and CSR assembly
//	matrix/    dense row-major matrix used for diagnostics
//	problem/   Problem contract, shared Base and checked evaluation helpers
//	registry/  ordered, name-indexed collection of entries
//	catalog/   every benchmark family and the default registry
//	validate/  finite-difference harness and reports
//	lusolve/   sparse LU solve and a single damped Newton step
//	cmd/nlcatalog  list, show, check and solve-step from the shell
//
// Quick start:
//
//	reg, _ := catalog.New()
//	report, err := validate.Run(ctx, reg, validate.WithWorkers(8))
//	if err != nil { ... }
//	fmt.Print(report)
//
//	go install github.com/katalvlaran/nlcatalog/cmd/nlcatalog@latest
package nlcatalog
