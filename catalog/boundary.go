// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// bvRoot2 is the root of both the discrete boundary value and the discrete
// integral equation systems for n = 2; the two discretize the same
// two-point problem u'' = (u + t + 1)³/2 with u(0) = u(1) = 0.
var bvRoot2 = []float64{-0.12824676303373161, -0.15926756724464086}

// gridStart writes the common initial point x_k = t_k(t_k - 1), t_k = (k+1)h.
func gridStart(x []float64) {
	h := 1 / float64(len(x)+1)
	for k := range x {
		t := float64(k+1) * h
		x[k] = t * (t - 1)
	}
}

// gridExactCount is 1 for n = 2, the only size with a tabulated root.
func gridExactCount(n int) int {
	if n == 2 {
		return 1
	}

	return 0
}

// DiscreteBoundaryValue is
//
//	f_k = 2x_k - x_{k-1} - x_{k+1} + h²(x_k + t_k + 1)³/2,
//	h = 1/(n+1), t_k = (k+1)h, x_{-1} = x_n = 0.
//
// The pattern lists the diagonal, then the pairs (i+1,i),(i,i+1).
type DiscreteBoundaryValue struct{ problem.Base }

// NewDiscreteBoundaryValue returns the family member for n >= 1.
func NewDiscreteBoundaryValue(n int) (*DiscreteBoundaryValue, error) {
	if err := checkDim("DiscreteBoundaryValue", n, 1); err != nil {
		return nil, err
	}

	return &DiscreteBoundaryValue{problem.NewBase("Discrete boundary value function", citeMGH, n)}, nil
}

func (p *DiscreteBoundaryValue) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := len(x)
	h := 1 / float64(n+1)
	for k := 0; k < n; k++ {
		u := x[k] + float64(k+1)*h + 1
		f[k] = 2*x[k] + 0.5*h*h*u*u*u
		if k > 0 {
			f[k] -= x[k-1]
		}
		if k < n-1 {
			f[k] -= x[k+1]
		}
	}

	return nil
}

func (p *DiscreteBoundaryValue) JacobianNnz() int { return 3*p.Dimension() - 2 }

func (p *DiscreteBoundaryValue) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	n := p.Dimension()
	for i := 0; i < n; i++ {
		out[i] = sparse.Coord{Row: i, Col: i}
	}
	k := n
	for i := 0; i < n-1; i++ {
		out[k] = sparse.Coord{Row: i + 1, Col: i}
		out[k+1] = sparse.Coord{Row: i, Col: i + 1}
		k += 2
	}

	return nil
}

func (p *DiscreteBoundaryValue) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := len(x)
	h := 1 / float64(n+1)
	for i := 0; i < n; i++ {
		u := x[i] + float64(i+1)*h + 1
		values[i] = 2 + 1.5*h*h*u*u
	}
	fill(values[n:], -1)

	return nil
}

func (p *DiscreteBoundaryValue) ExactSolutionCount() int { return gridExactCount(p.Dimension()) }

func (p *DiscreteBoundaryValue) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, p.ExactSolutionCount()); err != nil {
		return err
	}
	copy(x, bvRoot2)

	return nil
}

func (p *DiscreteBoundaryValue) InitialPointCount() int { return 1 }

func (p *DiscreteBoundaryValue) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	gridStart(x)

	return nil
}

// DiscreteIntegralEquation is
//
//	f_k = x_k + h[(1 - t_k) Σ_{j<=k} t_j(x_j + t_j + 1)³ + t_k Σ_{j>k} (1 - t_j)(x_j + t_j + 1)³]/2
//
// with a dense Jacobian. Both sums are carried as running prefix/suffix
// totals, so Evaluate is O(n).
type DiscreteIntegralEquation struct{ problem.Base }

// NewDiscreteIntegralEquation returns the family member for n >= 1.
func NewDiscreteIntegralEquation(n int) (*DiscreteIntegralEquation, error) {
	if err := checkDim("DiscreteIntegralEquation", n, 1); err != nil {
		return nil, err
	}

	return &DiscreteIntegralEquation{problem.NewBase("Discrete integral equation function", citeMGH, n)}, nil
}

func (p *DiscreteIntegralEquation) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := len(x)
	h := 1 / float64(n+1)
	cube := make([]float64, n)
	var right float64
	for j := 0; j < n; j++ {
		t := float64(j+1) * h
		u := x[j] + t + 1
		cube[j] = u * u * u
		right += (1 - t) * cube[j]
	}
	var left float64
	for k := 0; k < n; k++ {
		t := float64(k+1) * h
		left += t * cube[k]
		right -= (1 - t) * cube[k]
		f[k] = x[k] + h*((1-t)*left+t*right)/2
	}

	return nil
}

func (p *DiscreteIntegralEquation) JacobianNnz() int { return p.Dimension() * p.Dimension() }

func (p *DiscreteIntegralEquation) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	densePattern(out, p.Dimension())

	return nil
}

func (p *DiscreteIntegralEquation) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := len(x)
	h := 1 / float64(n+1)
	k := 0
	for i := 0; i < n; i++ {
		ti := float64(i+1) * h
		for j := 0; j < n; j++ {
			tj := float64(j+1) * h
			u := x[j] + tj + 1
			values[k] = 1.5 * h * (min(ti, tj) - ti*tj) * u * u
			if i == j {
				values[k]++
			}
			k++
		}
	}

	return nil
}

func (p *DiscreteIntegralEquation) ExactSolutionCount() int { return gridExactCount(p.Dimension()) }

func (p *DiscreteIntegralEquation) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, p.ExactSolutionCount()); err != nil {
		return err
	}
	copy(x, bvRoot2)

	return nil
}

func (p *DiscreteIntegralEquation) InitialPointCount() int { return 1 }

func (p *DiscreteIntegralEquation) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	gridStart(x)

	return nil
}
