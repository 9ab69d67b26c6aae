// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// diagonalSystem supplies the pattern of a system whose equation i depends
// on x_i only.
type diagonalSystem struct{ problem.Base }

func (p diagonalSystem) JacobianNnz() int { return p.Dimension() }

func (p diagonalSystem) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.Dimension()); err != nil {
		return err
	}
	for i := range out {
		out[i] = sparse.Coord{Row: i, Col: i}
	}

	return nil
}

// ---------- Logarithmic ----------

// Logarithmic is f_i = ln(x_i + 1) - x_i/n on the domain x_i > -1.
// Exact solution x = 0; initial point x_i = n + 1.
type Logarithmic struct{ diagonalSystem }

// NewLogarithmic returns the family member for n >= 1.
func NewLogarithmic(n int) (*Logarithmic, error) {
	if err := checkDim("Logarithmic", n, 1); err != nil {
		return nil, err
	}

	return &Logarithmic{diagonalSystem{problem.NewBase("Logarithmic function", citeLaCruz, n)}}, nil
}

func (p *Logarithmic) CheckAdmissible(x []float64) error {
	if err := p.CheckLen(x); err != nil {
		return err
	}
	for i, v := range x {
		if v <= -1 {
			return p.Inadmissible("x[%d]=%g must exceed -1", i, v)
		}
	}

	return nil
}

func (p *Logarithmic) BoundingBox(lower, upper []float64) {
	p.Base.BoundingBox(lower, upper)
	fill(lower, -1)
}

func (p *Logarithmic) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := float64(len(x))
	for i, v := range x {
		if v <= -1 {
			return p.Undefined("log(x[%d]+1) with x[%d]=%g", i, i, v)
		}
		f[i] = math.Log1p(v) - v/n
	}

	return nil
}

func (p *Logarithmic) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.Dimension()); err != nil {
		return err
	}
	n := float64(len(x))
	for i, v := range x {
		if v <= -1 {
			return p.Undefined("1/(x[%d]+1) with x[%d]=%g", i, i, v)
		}
		values[i] = 1/(v+1) - 1/n
	}

	return nil
}

func (p *Logarithmic) ExactSolutionCount() int { return 1 }

func (p *Logarithmic) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	clear(x)

	return nil
}

func (p *Logarithmic) InitialPointCount() int { return 1 }

func (p *Logarithmic) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, float64(len(x)+1))

	return nil
}

// ---------- Exponential N.1 ----------

// Exponential1 is
//
//	f_0 = exp(x_0 - 1) - 1
//	f_i = (i+1)(exp(x_i - 1) - x_i),   i > 0
//
// Exact solution x = 1; initial point x_i = n/(n-1).
type Exponential1 struct{ diagonalSystem }

// NewExponential1 returns the family member for n >= 2.
func NewExponential1(n int) (*Exponential1, error) {
	if err := checkDim("Exponential1", n, 2); err != nil {
		return nil, err
	}

	return &Exponential1{diagonalSystem{problem.NewBase("Exponential function 1", citeLaCruz, n)}}, nil
}

func (p *Exponential1) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	f[0] = math.Exp(x[0]-1) - 1
	for i := 1; i < len(x); i++ {
		f[i] = float64(i+1) * (math.Exp(x[i]-1) - x[i])
	}

	return nil
}

func (p *Exponential1) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.Dimension()); err != nil {
		return err
	}
	values[0] = math.Exp(x[0] - 1)
	for i := 1; i < len(x); i++ {
		values[i] = float64(i+1) * (math.Exp(x[i]-1) - 1)
	}

	return nil
}

func (p *Exponential1) ExactSolutionCount() int { return 1 }

func (p *Exponential1) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 1)

	return nil
}

func (p *Exponential1) InitialPointCount() int { return 1 }

func (p *Exponential1) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	n := float64(len(x))
	fill(x, n/(n-1))

	return nil
}

// ---------- Exponential N.2 ----------

// Exponential2 is
//
//	f_0 = exp(x_0) - 1
//	f_i = ((i+1)/10)(exp(x_i) + x_{i-1} - 1),   i > 0
//
// Lower bidiagonal; the pattern lists (0,0), then (i,i),(i,i-1) per row.
// Exact solution x = 0; initial point x_i = 1/n².
type Exponential2 struct{ problem.Base }

// NewExponential2 returns the family member for n >= 2.
func NewExponential2(n int) (*Exponential2, error) {
	if err := checkDim("Exponential2", n, 2); err != nil {
		return nil, err
	}

	return &Exponential2{problem.NewBase("Exponential function 2", citeLaCruz, n)}, nil
}

func (p *Exponential2) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	f[0] = math.Exp(x[0]) - 1
	for i := 1; i < len(x); i++ {
		f[i] = float64(i+1) / 10 * (math.Exp(x[i]) + x[i-1] - 1)
	}

	return nil
}

func (p *Exponential2) JacobianNnz() int { return 2*p.Dimension() - 1 }

func (p *Exponential2) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	out[0] = sparse.Coord{Row: 0, Col: 0}
	k := 1
	for i := 1; i < p.Dimension(); i++ {
		out[k] = sparse.Coord{Row: i, Col: i}
		out[k+1] = sparse.Coord{Row: i, Col: i - 1}
		k += 2
	}

	return nil
}

func (p *Exponential2) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	values[0] = math.Exp(x[0])
	k := 1
	for i := 1; i < len(x); i++ {
		c := float64(i+1) / 10
		values[k] = c * math.Exp(x[i])
		values[k+1] = c
		k += 2
	}

	return nil
}

func (p *Exponential2) ExactSolutionCount() int { return 1 }

func (p *Exponential2) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	clear(x)

	return nil
}

func (p *Exponential2) InitialPointCount() int { return 1 }

func (p *Exponential2) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	n := float64(len(x))
	fill(x, 1/(n*n))

	return nil
}

// ---------- Exponential N.3 ----------

// Exponential3 is
//
//	f_i     = (i+1)/10 · (1 - x_i² - exp(-x_i²)),   i < n-1
//	f_{n-1} = n/10 · (1 - exp(-x_{n-1}²))
//
// Exact solution x = 0 (the Jacobian is singular there); initial point
// x_i = (i+1)/(4n²).
type Exponential3 struct{ diagonalSystem }

// NewExponential3 returns the family member for n >= 1.
func NewExponential3(n int) (*Exponential3, error) {
	if err := checkDim("Exponential3", n, 1); err != nil {
		return nil, err
	}

	return &Exponential3{diagonalSystem{problem.NewBase("Exponential function 3", citeLaCruz, n)}}, nil
}

func (p *Exponential3) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	n := len(x)
	for i := 0; i < n-1; i++ {
		s := x[i] * x[i]
		f[i] = 0.1 * float64(i+1) * (1 - s - math.Exp(-s))
	}
	s := x[n-1] * x[n-1]
	f[n-1] = 0.1 * float64(n) * (1 - math.Exp(-s))

	return nil
}

func (p *Exponential3) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.Dimension()); err != nil {
		return err
	}
	n := len(x)
	for i := 0; i < n-1; i++ {
		values[i] = 0.2 * float64(i+1) * x[i] * (math.Exp(-x[i]*x[i]) - 1)
	}
	values[n-1] = 0.2 * float64(n) * x[n-1] * math.Exp(-x[n-1]*x[n-1])

	return nil
}

func (p *Exponential3) ExactSolutionCount() int { return 1 }

func (p *Exponential3) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	clear(x)

	return nil
}

func (p *Exponential3) InitialPointCount() int { return 1 }

func (p *Exponential3) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	bf := 1 / (4 * float64(len(x)*len(x)))
	for i := range x {
		x[i] = float64(i+1) * bf
	}

	return nil
}
