// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nlcatalog/sparse"
)

// Problem is one benchmark system F: Rⁿ → Rⁿ with an analytic Jacobian in
// coordinate form.
//
// Contract:
//   - Every method is a pure function of the receiver and its arguments;
//     implementations keep no mutable per-call state, so one Problem may be
//     evaluated from many goroutines at once.
//   - JacobianPattern and Jacobian both produce exactly JacobianNnz()
//     entries, and values[k] is the contribution for pattern[k]. Repeated
//     coordinates are additive contributions.
//   - Output slices are caller-owned and must have the documented length;
//     otherwise ErrDimension is returned.
//   - Evaluate and Jacobian return ErrUndefined (wrapped) when the formula
//     cannot be evaluated at x.
type Problem interface {
	// Name is the human-readable title, including the dimension suffix.
	Name() string
	// Citation is the bibliographic reference (BibTeX).
	Citation() string
	// Dimension returns n, the number of equations and unknowns.
	Dimension() int

	// Evaluate writes F(x) into f (len n).
	Evaluate(x, f []float64) error

	// JacobianNnz is the length of the coordinate pattern.
	JacobianNnz() int
	// JacobianPattern writes the coordinate pattern into out (len JacobianNnz).
	JacobianPattern(out []sparse.Coord) error
	// Jacobian writes the contributions at x into values, in pattern order.
	Jacobian(x, values []float64) error

	ExactSolutionCount() int
	ExactSolution(idx int, x []float64) error
	InitialPointCount() int
	InitialPoint(idx int, x []float64) error

	// CheckAdmissible returns nil iff x is in the admissible domain,
	// otherwise an error wrapping ErrInadmissible.
	CheckAdmissible(x []float64) error

	// BoundingBox writes the box constraints; unconstrained components are
	// ±math.MaxFloat64.
	BoundingBox(lower, upper []float64)
}

// Base carries the identity shared by every catalog entry and the default
// behavior for optional metadata: no exact solutions, an always-admissible
// domain and an unbounded box. Entries embed it and override what they need.
type Base struct {
	name     string
	citation string
	n        int
}

// NewBase builds a Base. The title gets the " neq = n" suffix.
func NewBase(title, citation string, n int) Base {
	return Base{name: fmt.Sprintf("%s neq = %d", title, n), citation: citation, n: n}
}

func (b Base) Name() string     { return b.name }
func (b Base) Citation() string { return b.citation }
func (b Base) Dimension() int   { return b.n }

// ExactSolutionCount is 0 unless the entry knows a reliable solution.
func (b Base) ExactSolutionCount() int { return 0 }

// ExactSolution always fails with ErrIndex on Base.
func (b Base) ExactSolution(idx int, _ []float64) error {
	return fmt.Errorf("%s: exact solution %d: %w", b.name, idx, ErrIndex)
}

// CheckAdmissible accepts every point of the right length.
func (b Base) CheckAdmissible(x []float64) error { return b.CheckLen(x) }

// BoundingBox fills lower with -MaxFloat64 and upper with +MaxFloat64.
func (b Base) BoundingBox(lower, upper []float64) {
	for i := range lower {
		lower[i] = -math.MaxFloat64
	}
	for i := range upper {
		upper[i] = math.MaxFloat64
	}
}

// CheckLen reports ErrDimension unless every vector has length n.
func (b Base) CheckLen(vs ...[]float64) error {
	for _, v := range vs {
		if len(v) != b.n {
			return fmt.Errorf("%s: len=%d, want %d: %w", b.name, len(v), b.n, ErrDimension)
		}
	}

	return nil
}

// CheckNnz reports ErrDimension unless len(values) == nnz.
func (b Base) CheckNnz(got, nnz int) error {
	if got != nnz {
		return fmt.Errorf("%s: jacobian len=%d, want %d: %w", b.name, got, nnz, ErrDimension)
	}

	return nil
}

// CheckIndex reports ErrIndex unless 0 <= idx < count.
func (b Base) CheckIndex(idx, count int) error {
	if idx < 0 || idx >= count {
		return fmt.Errorf("%s: index %d of %d: %w", b.name, idx, count, ErrIndex)
	}

	return nil
}

// Inadmissible wraps ErrInadmissible with the problem name and a reason.
func (b Base) Inadmissible(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", b.name, fmt.Sprintf(format, args...), ErrInadmissible)
}

// Undefined wraps ErrUndefined with the problem name and a reason.
func (b Base) Undefined(format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", b.name, fmt.Sprintf(format, args...), ErrUndefined)
}
