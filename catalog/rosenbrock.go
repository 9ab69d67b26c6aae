// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// rosenbrockScale is the coefficient N of the generalized Rosenbrock function.
const rosenbrockScale = 100

// GeneralizedRosenbrock is the gradient of
// Σ_{i<n-1} N(x_{i+1} - x_i²)² + (x_i - 1)² with the last equation reduced
// to 2N(x_{n-1} - x_{n-2}²). Tridiagonal pattern, row by row (3n-2 entries).
// Exact solution x = 1; initial point alternating (-1.2, 1).
type GeneralizedRosenbrock struct{ problem.Base }

// NewGeneralizedRosenbrock returns the family member for an even n >= 2.
func NewGeneralizedRosenbrock(n int) (*GeneralizedRosenbrock, error) {
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("GeneralizedRosenbrock: n=%d is not a positive even number: %w", n, ErrInvalidDimension)
	}

	return &GeneralizedRosenbrock{problem.NewBase("Generalized Rosenbrock function", citeMGH, n)}, nil
}

func (p *GeneralizedRosenbrock) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	const N = rosenbrockScale
	n := p.Dimension()
	f[0] = -4*N*(x[1]-x[0]*x[0])*x[0] + 2*x[0] - 2
	for i := 1; i < n-1; i++ {
		f[i] = 2*N*(x[i]-x[i-1]*x[i-1]) - 4*N*(x[i+1]-x[i]*x[i])*x[i] + 2*x[i] - 2
	}
	f[n-1] = 2 * N * (x[n-1] - x[n-2]*x[n-2])

	return nil
}

func (p *GeneralizedRosenbrock) JacobianNnz() int { return 3*p.Dimension() - 2 }

func (p *GeneralizedRosenbrock) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	n := p.Dimension()
	out[0] = sparse.Coord{Row: 0, Col: 0}
	out[1] = sparse.Coord{Row: 0, Col: 1}
	k := 2
	for i := 1; i < n-1; i++ {
		out[k] = sparse.Coord{Row: i, Col: i - 1}
		out[k+1] = sparse.Coord{Row: i, Col: i}
		out[k+2] = sparse.Coord{Row: i, Col: i + 1}
		k += 3
	}
	out[k] = sparse.Coord{Row: n - 1, Col: n - 2}
	out[k+1] = sparse.Coord{Row: n - 1, Col: n - 1}

	return nil
}

func (p *GeneralizedRosenbrock) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	const N = rosenbrockScale
	n := p.Dimension()
	values[0] = -4*N*x[1] + 12*N*x[0]*x[0] + 2
	values[1] = -4 * N * x[0]
	k := 2
	for i := 1; i < n-1; i++ {
		values[k] = -4 * N * x[i-1]
		values[k+1] = 2*N - 4*N*x[i+1] + 12*N*x[i]*x[i] + 2
		values[k+2] = -4 * N * x[i]
		k += 3
	}
	values[k] = -4 * N * x[n-2]
	values[k+1] = 2 * N

	return nil
}

func (p *GeneralizedRosenbrock) ExactSolutionCount() int { return 1 }

func (p *GeneralizedRosenbrock) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 1)

	return nil
}

func (p *GeneralizedRosenbrock) InitialPointCount() int { return 1 }

func (p *GeneralizedRosenbrock) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	for i := range x {
		if i%2 == 0 {
			x[i] = -1.2
		} else {
			x[i] = 1
		}
	}

	return nil
}
