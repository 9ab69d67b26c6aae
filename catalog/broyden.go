// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// BroydenTridiagonal is
//
//	f_k = (3 - α·x_k)·x_k + β - x_{k-1} - 2·x_{k+1},   x_{-1} = x_n = 0.
//
// The pattern lists the diagonal, then the subdiagonal, then the
// superdiagonal (3n-2 entries). Initial point x_k = -1.
type BroydenTridiagonal struct {
	problem.Base
	alpha, beta float64
}

// NewBroydenTridiagonal returns the family member for (α, β, n), n >= 1.
func NewBroydenTridiagonal(alpha, beta float64, n int) (*BroydenTridiagonal, error) {
	const family = "BroydenTridiagonal"
	if err := checkDim(family, n, 1); err != nil {
		return nil, err
	}
	if err := checkFinite(family, "alpha", alpha); err != nil {
		return nil, err
	}
	if err := checkFinite(family, "beta", beta); err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Broyden tridiagonal function alpha = %g beta = %g", alpha, beta)

	return &BroydenTridiagonal{Base: problem.NewBase(title, citeBroyden, n), alpha: alpha, beta: beta}, nil
}

func (p *BroydenTridiagonal) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := p.Dimension()
	for k := 0; k < n; k++ {
		f[k] = (3-p.alpha*x[k])*x[k] + p.beta
		if k > 0 {
			f[k] -= x[k-1]
		}
		if k < n-1 {
			f[k] -= 2 * x[k+1]
		}
	}

	return nil
}

func (p *BroydenTridiagonal) JacobianNnz() int { return 3*p.Dimension() - 2 }

func (p *BroydenTridiagonal) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	n, kk := p.Dimension(), 0
	for k := 0; k < n; k++ {
		out[kk] = sparse.Coord{Row: k, Col: k}
		kk++
	}
	for k := 1; k < n; k++ {
		out[kk] = sparse.Coord{Row: k, Col: k - 1}
		kk++
	}
	for k := 0; k < n-1; k++ {
		out[kk] = sparse.Coord{Row: k, Col: k + 1}
		kk++
	}

	return nil
}

func (p *BroydenTridiagonal) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := p.Dimension()
	for k := 0; k < n; k++ {
		values[k] = 3 - 2*p.alpha*x[k]
	}
	fill(values[n:2*n-1], -1)
	fill(values[2*n-1:], -2)

	return nil
}

func (p *BroydenTridiagonal) InitialPointCount() int { return 1 }

func (p *BroydenTridiagonal) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, -1)

	return nil
}

// Band limits of the Broyden banded function.
const (
	broydenLower = 5
	broydenUpper = 1
)

// BroydenBanded is
//
//	f_k = x_k(2 + 5x_k²) + 1 - Σ_{j ∈ J_k} x_j(1 + x_j),
//	J_k = {j : max(0, k-5) <= j <= min(n-1, k+1), j != k}.
//
// The Jacobian is stamped through a sparse.Accumulator one band entry at a
// time. Initial point x_k = -1.
type BroydenBanded struct {
	problem.Base
	jac stamped
}

// NewBroydenBanded returns the family member for n, n >= 1.
func NewBroydenBanded(n int) (*BroydenBanded, error) {
	if err := checkDim("BroydenBanded", n, 1); err != nil {
		return nil, err
	}
	p := &BroydenBanded{Base: problem.NewBase("Broyden banded function", citeMGH, n)}
	probe := make([]float64, n)
	fill(probe, -1)
	jac, err := newStamped(n, probe, p.stamp)
	if err != nil {
		return nil, fmt.Errorf("BroydenBanded: %w", err)
	}
	p.jac = jac

	return p, nil
}

func (p *BroydenBanded) band(k int) (lo, hi int) {
	return max(0, k-broydenLower), min(p.Dimension()-1, k+broydenUpper)
}

func (p *BroydenBanded) stamp(a *sparse.Accumulator, x []float64) {
	for k := range x {
		a.Add(k, k, 2+15*x[k]*x[k])
		lo, hi := p.band(k)
		for j := lo; j <= hi; j++ {
			if j != k {
				a.Add(k, j, -(1 + 2*x[j]))
			}
		}
	}
}

func (p *BroydenBanded) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	for k := range x {
		f[k] = x[k]*(2+5*x[k]*x[k]) + 1
		lo, hi := p.band(k)
		for j := lo; j <= hi; j++ {
			if j != k {
				f[k] -= x[j] * (1 + x[j])
			}
		}
	}

	return nil
}

func (p *BroydenBanded) JacobianNnz() int { return p.jac.nnz() }

func (p *BroydenBanded) JacobianPattern(out []sparse.Coord) error {
	return p.jac.patternInto(p.Base, out)
}

func (p *BroydenBanded) Jacobian(x, values []float64) error {
	if err := p.CheckLen(x); err != nil {
		return err
	}

	return p.jac.valuesInto(p.Base, x, values)
}

func (p *BroydenBanded) InitialPointCount() int { return 1 }

func (p *BroydenBanded) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, -1)

	return nil
}
