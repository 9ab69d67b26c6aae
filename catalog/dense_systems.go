// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// denseSystem supplies the row-major n×n pattern.
type denseSystem struct{ problem.Base }

func (p denseSystem) JacobianNnz() int { return p.Dimension() * p.Dimension() }

func (p denseSystem) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	densePattern(out, p.Dimension())

	return nil
}

// ---------- Trigonometric ----------

// Trigonometric is f_i = t1_i·t2_i with
//
//	t1_i = n - Σ cos x_j + (i+1)(1 - cos x_i) - sin x_i
//	t2_i = 2 sin x_i - cos x_i
//
// Initial point x_j = 1/n (scaled by 1.01 to stay off the symmetric line).
type Trigonometric struct{ denseSystem }

// NewTrigonometric returns the family member for n >= 1.
func NewTrigonometric(n int) (*Trigonometric, error) {
	if err := checkDim("Trigonometric", n, 1); err != nil {
		return nil, err
	}

	return &Trigonometric{denseSystem{problem.NewBase("Trigonometric function", citeMGH, n)}}, nil
}

func sumCos(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += math.Cos(v)
	}

	return s
}

func (p *Trigonometric) terms(x []float64, i int, cs float64) (t1, t2 float64) {
	si, ci := math.Sincos(x[i])
	t1 = float64(len(x)) - cs + float64(i+1)*(1-ci) - si
	t2 = 2*si - ci

	return t1, t2
}

func (p *Trigonometric) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	cs := sumCos(x)
	for i := range x {
		t1, t2 := p.terms(x, i, cs)
		f[i] = t1 * t2
	}

	return nil
}

func (p *Trigonometric) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := len(x)
	cs := sumCos(x)
	k := 0
	for i := 0; i < n; i++ {
		t1, t2 := p.terms(x, i, cs)
		si, ci := math.Sincos(x[i])
		for j := 0; j < n; j++ {
			values[k] = t2 * math.Sin(x[j])
			if i == j {
				values[k] += t1*(2*ci+si) + t2*(float64(i+1)*si-ci)
			}
			k++
		}
	}

	return nil
}

func (p *Trigonometric) InitialPointCount() int { return 1 }

func (p *Trigonometric) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 101/(100*float64(len(x))))

	return nil
}

// ---------- Variably dimensioned ----------

// VariablyDimensioned is
//
//	s   = Σ (j+1)(x_j - 1)
//	f_k = x_k - 1 + (k+1)·s·(1 + 2s²)
//
// Exact solution x = 1; initial point x_k = 1 - (k+1)/n.
type VariablyDimensioned struct{ denseSystem }

// NewVariablyDimensioned returns the family member for n >= 1.
func NewVariablyDimensioned(n int) (*VariablyDimensioned, error) {
	if err := checkDim("VariablyDimensioned", n, 1); err != nil {
		return nil, err
	}

	return &VariablyDimensioned{denseSystem{problem.NewBase("Variably dimensioned function", citeMGH, n)}}, nil
}

func weightedDeviation(x []float64) float64 {
	var s float64
	for j, v := range x {
		s += float64(j+1) * (v - 1)
	}

	return s
}

func (p *VariablyDimensioned) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	s := weightedDeviation(x)
	for k := range x {
		f[k] = x[k] - 1 + float64(k+1)*s*(1+2*s*s)
	}

	return nil
}

func (p *VariablyDimensioned) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := len(x)
	s := weightedDeviation(x)
	ds := 1 + 6*s*s
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			values[k] = float64((i+1)*(j+1)) * ds
			if i == j {
				values[k]++
			}
			k++
		}
	}

	return nil
}

func (p *VariablyDimensioned) ExactSolutionCount() int { return 1 }

func (p *VariablyDimensioned) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 1)

	return nil
}

func (p *VariablyDimensioned) InitialPointCount() int { return 1 }

func (p *VariablyDimensioned) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	n := float64(len(x))
	for k := range x {
		x[k] = 1 - float64(k+1)/n
	}

	return nil
}

// ---------- Brown almost linear ----------

// BrownAlmostLinear is
//
//	f_i     = x_i + Σ x_j - (n+1),   i < n-1
//	f_{n-1} = Π x_j - 1
//
// Exact solution x = 1; initial point x = 1/2.
type BrownAlmostLinear struct{ denseSystem }

// NewBrownAlmostLinear returns the family member for n >= 2.
func NewBrownAlmostLinear(n int) (*BrownAlmostLinear, error) {
	if err := checkDim("BrownAlmostLinear", n, 2); err != nil {
		return nil, err
	}

	return &BrownAlmostLinear{denseSystem{problem.NewBase("Brown almost linear function", citeMGH, n)}}, nil
}

func (p *BrownAlmostLinear) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := len(x)
	sum, prod := 0.0, 1.0
	for _, v := range x {
		sum += v
		prod *= v
	}
	for i := 0; i < n-1; i++ {
		f[i] = x[i] + sum - float64(n+1)
	}
	f[n-1] = prod - 1

	return nil
}

func (p *BrownAlmostLinear) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n := len(x)
	k := 0
	for i := 0; i < n-1; i++ {
		for j := 0; j < n; j++ {
			values[k] = 1
			if i == j {
				values[k] = 2
			}
			k++
		}
	}
	// last row: Π_{m≠j} x_m as prefix × suffix products
	last := values[k:]
	acc := 1.0
	for j := 0; j < n; j++ {
		last[j] = acc
		acc *= x[j]
	}
	acc = 1
	for j := n - 1; j >= 0; j-- {
		last[j] *= acc
		acc *= x[j]
	}

	return nil
}

func (p *BrownAlmostLinear) ExactSolutionCount() int { return 1 }

func (p *BrownAlmostLinear) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 1)

	return nil
}

func (p *BrownAlmostLinear) InitialPointCount() int { return 1 }

func (p *BrownAlmostLinear) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 0.5)

	return nil
}
