// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// ExtendedPowellSingular repeats Powell's singular function on consecutive
// blocks of four unknowns:
//
//	f0 = x0 + 10x1
//	f1 = √5(x2 - x3)
//	f2 = (x1 - 2x2)²
//	f3 = √10(x0 - x3)²
//
// Every block declares its full 4×4 pattern, structural zeros included.
// The Jacobian is singular at the exact solution x = 0. Initial point
// (3, -1, 0, 1) per block.
type ExtendedPowellSingular struct{ problem.Base }

// NewExtendedPowellSingular returns the family member for n, a positive
// multiple of 4.
func NewExtendedPowellSingular(n int) (*ExtendedPowellSingular, error) {
	if n < 4 || n%4 != 0 {
		return nil, fmt.Errorf("ExtendedPowellSingular: n=%d is not a positive multiple of 4: %w", n, ErrInvalidDimension)
	}

	return &ExtendedPowellSingular{problem.NewBase("Extended Powell singular function", citeMGH, n)}, nil
}

func (p *ExtendedPowellSingular) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	s5, s10 := math.Sqrt(5), math.Sqrt(10)
	for b := 0; b < len(x); b += 4 {
		x0, x1, x2, x3 := x[b], x[b+1], x[b+2], x[b+3]
		f[b] = x0 + 10*x1
		f[b+1] = s5 * (x2 - x3)
		f[b+2] = (x1 - 2*x2) * (x1 - 2*x2)
		f[b+3] = s10 * (x0 - x3) * (x0 - x3)
	}

	return nil
}

func (p *ExtendedPowellSingular) JacobianNnz() int { return 4 * p.Dimension() }

func (p *ExtendedPowellSingular) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), p.JacobianNnz()); err != nil {
		return err
	}
	k := 0
	for b := 0; b < p.Dimension(); b += 4 {
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				out[k] = sparse.Coord{Row: b + i, Col: b + j}
				k++
			}
		}
	}

	return nil
}

func (p *ExtendedPowellSingular) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	s5, s10 := math.Sqrt(5), math.Sqrt(10)
	for b := 0; b < len(x); b += 4 {
		x0, x1, x2, x3 := x[b], x[b+1], x[b+2], x[b+3]
		d2 := 2 * (x1 - 2*x2)
		d3 := 2 * s10 * (x0 - x3)
		block := [16]float64{
			1, 10, 0, 0,
			0, 0, s5, -s5,
			0, d2, -2 * d2, 0,
			d3, 0, 0, -d3,
		}
		copy(values[4*b:4*b+16], block[:])
	}

	return nil
}

func (p *ExtendedPowellSingular) ExactSolutionCount() int { return 1 }

func (p *ExtendedPowellSingular) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	clear(x)

	return nil
}

func (p *ExtendedPowellSingular) InitialPointCount() int { return 1 }

func (p *ExtendedPowellSingular) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	for b := 0; b < len(x); b += 4 {
		x[b], x[b+1], x[b+2], x[b+3] = 3, -1, 0, 1
	}

	return nil
}
