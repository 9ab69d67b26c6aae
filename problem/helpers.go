// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/sparse"
)

// Residual allocates f and evaluates F(x).
func Residual(p Problem, x []float64) ([]float64, error) {
	n := p.Dimension()
	if len(x) != n {
		return nil, fmt.Errorf("Residual(%s): len(x)=%d, want %d: %w", p.Name(), len(x), n, ErrDimension)
	}
	f := make([]float64, n)
	if err := p.Evaluate(x, f); err != nil {
		return nil, err
	}

	return f, nil
}

// Pattern allocates and returns the coordinate pattern of p.
func Pattern(p Problem) (sparse.Pattern, error) {
	out := make(sparse.Pattern, p.JacobianNnz())
	if err := p.JacobianPattern(out); err != nil {
		return nil, err
	}

	return out, nil
}

// JacobianValues allocates and returns the Jacobian contributions at x.
func JacobianValues(p Problem, x []float64) ([]float64, error) {
	n := p.Dimension()
	if len(x) != n {
		return nil, fmt.Errorf("JacobianValues(%s): len(x)=%d, want %d: %w", p.Name(), len(x), n, ErrDimension)
	}
	values := make([]float64, p.JacobianNnz())
	if err := p.Jacobian(x, values); err != nil {
		return nil, err
	}

	return values, nil
}

// JacobianCSR evaluates the Jacobian at x and assembles it into CSR form,
// summing repeated coordinates.
func JacobianCSR(p Problem, x []float64) (*sparse.CSR, error) {
	pattern, err := Pattern(p)
	if err != nil {
		return nil, err
	}
	values, err := JacobianValues(p, x)
	if err != nil {
		return nil, err
	}
	m, err := sparse.Assemble(p.Dimension(), pattern, values)
	if err != nil {
		return nil, fmt.Errorf("JacobianCSR(%s): %w", p.Name(), err)
	}

	return m, nil
}

// Admissible reports whether CheckAdmissible accepts x.
func Admissible(p Problem, x []float64) bool { return p.CheckAdmissible(x) == nil }

// Exacts returns every known exact solution as a fresh slice.
func Exacts(p Problem) ([][]float64, error) {
	return collect(p.Dimension(), p.ExactSolutionCount(), p.ExactSolution)
}

// InitialPoints returns every starting point as a fresh slice.
func InitialPoints(p Problem) ([][]float64, error) {
	return collect(p.Dimension(), p.InitialPointCount(), p.InitialPoint)
}

func collect(n, count int, get func(int, []float64) error) ([][]float64, error) {
	out := make([][]float64, count)
	for i := range out {
		out[i] = make([]float64, n)
		if err := get(i, out[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Box allocates and returns the bounding box of p.
func Box(p Problem) (lower, upper []float64) {
	n := p.Dimension()
	lower, upper = make([]float64, n), make([]float64, n)
	p.BoundingBox(lower, upper)

	return lower, upper
}
