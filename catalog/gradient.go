// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// lsqTerm is one residual t(x) of a sum of squares Σ t², depending only on
// the unknowns listed in supp. eval returns t and writes the restricted
// gradient g (len |supp|) and Hessian h (row-major |supp|×|supp|).
type lsqTerm struct {
	supp []int
	eval func(x, g, h []float64) float64
}

// GradientSystem is the stationarity system ∇(Σ t_i²) = 0 of a sum of
// squares. Its Jacobian Σ 2(∇t∇tᵀ + t∇²t) is declared term by term: every
// term contributes a |supp|×|supp| block, so cells shared by several terms
// appear several times in the pattern.
type GradientSystem struct {
	problem.Base
	terms   []lsqTerm
	nnz     int
	maxSupp int
	exact   [][]float64
	initial [][]float64
}

func newGradientSystem(title, cite string, n int, terms []lsqTerm, exact, initial [][]float64) *GradientSystem {
	p := &GradientSystem{
		Base:    problem.NewBase(title, cite, n),
		terms:   terms,
		exact:   exact,
		initial: initial,
	}
	for _, t := range terms {
		p.nnz += len(t.supp) * len(t.supp)
		p.maxSupp = max(p.maxSupp, len(t.supp))
	}

	return p
}

func (p *GradientSystem) scratch() (g, h []float64) {
	return make([]float64, p.maxSupp), make([]float64, p.maxSupp*p.maxSupp)
}

func (p *GradientSystem) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	clear(f)
	g, h := p.scratch()
	for _, term := range p.terms {
		t := term.eval(x, g, h)
		for a, i := range term.supp {
			f[i] += 2 * t * g[a]
		}
	}

	return nil
}

func (p *GradientSystem) JacobianNnz() int { return p.nnz }

func (p *GradientSystem) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.nnz); err != nil {
		return err
	}
	k := 0
	for _, term := range p.terms {
		for _, i := range term.supp {
			for _, j := range term.supp {
				out[k] = sparse.Coord{Row: i, Col: j}
				k++
			}
		}
	}

	return nil
}

func (p *GradientSystem) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.nnz); err != nil {
		return err
	}
	g, h := p.scratch()
	k := 0
	for _, term := range p.terms {
		m := len(term.supp)
		clear(h)
		t := term.eval(x, g, h)
		for a := 0; a < m; a++ {
			for b := 0; b < m; b++ {
				values[k] = 2 * (g[a]*g[b] + t*h[a*m+b])
				k++
			}
		}
	}

	return nil
}

func (p *GradientSystem) ExactSolutionCount() int { return len(p.exact) }

func (p *GradientSystem) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, len(p.exact)); err != nil {
		return err
	}
	copy(x, p.exact[idx])

	return nil
}

func (p *GradientSystem) InitialPointCount() int { return len(p.initial) }

func (p *GradientSystem) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, len(p.initial)); err != nil {
		return err
	}
	copy(x, p.initial[idx])

	return nil
}

// NewWood returns the gradient system of the Wood function
//
//	100(x1 - x0²)² + (1 - x0)² + 90(x3 - x2²)² + (1 - x2)²
//	  + 10.1((x1 - 1)² + (x3 - 1)²) + 19.8(x1 - 1)(x3 - 1)
//
// written as six squares. Exact solution (1, 1, 1, 1); initial point
// (-3, -1, -3, -1).
func NewWood() *GradientSystem {
	s90, s10, s01 := math.Sqrt(90), math.Sqrt(10), math.Sqrt(0.1)
	terms := []lsqTerm{
		{supp: []int{0, 1}, eval: func(x, g, h []float64) float64 {
			g[0], g[1] = -20*x[0], 10
			h[0] = -20
			return 10 * (x[1] - x[0]*x[0])
		}},
		{supp: []int{0}, eval: func(x, g, _ []float64) float64 {
			g[0] = -1
			return 1 - x[0]
		}},
		{supp: []int{2, 3}, eval: func(x, g, h []float64) float64 {
			g[0], g[1] = -2*s90*x[2], s90
			h[0] = -2 * s90
			return s90 * (x[3] - x[2]*x[2])
		}},
		{supp: []int{2}, eval: func(x, g, _ []float64) float64 {
			g[0] = -1
			return 1 - x[2]
		}},
		// 10.1(u² + v²) + 19.8uv = 10(u + v)² + 0.1(u - v)²
		{supp: []int{1, 3}, eval: func(x, g, _ []float64) float64 {
			g[0], g[1] = s10, s10
			return s10 * (x[1] + x[3] - 2)
		}},
		{supp: []int{1, 3}, eval: func(x, g, _ []float64) float64 {
			g[0], g[1] = s01, -s01
			return s01 * (x[1] - x[3])
		}},
	}

	return newGradientSystem("Wood function", citeMGH, 4, terms,
		[][]float64{{1, 1, 1, 1}},
		[][]float64{{-3, -1, -3, -1}})
}

// NewBeale returns the gradient system of the Beale function
// Σ_{i=1..3} (c_i - x0(1 - x1^i))², c = (1.5, 2.25, 2.625).
// Exact solution (3, 0.5); initial point (1, 1).
func NewBeale() *GradientSystem {
	cs := [3]float64{1.5, 2.25, 2.625}
	terms := make([]lsqTerm, len(cs))
	for k, c := range cs {
		i := float64(k + 1)
		terms[k] = lsqTerm{supp: []int{0, 1}, eval: func(x, g, h []float64) float64 {
			yi := math.Pow(x[1], i)
			yi1 := math.Pow(x[1], i-1)
			g[0] = yi - 1
			g[1] = i * x[0] * yi1
			h[1] = i * yi1
			h[2] = h[1]
			if k > 0 {
				h[3] = i * (i - 1) * x[0] * math.Pow(x[1], i-2)
			}
			return c - x[0]*(1-yi)
		}}
	}

	return newGradientSystem("Beale function", citeMGH, 2, terms,
		[][]float64{{3, 0.5}},
		[][]float64{{1, 1}})
}
