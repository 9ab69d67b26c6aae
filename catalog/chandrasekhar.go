// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
)

// Chandrasekhar is the midpoint discretization of the Chandrasekhar
// H-equation:
//
//	f_i = x_i - 1/(1 - w Σ_j μ_j x_j/(μ_i + μ_j)),   w = c/(2n), μ_i = i + 1/2.
//
// The Jacobian is dense. c close to 1 makes the problem nearly singular.
// Initial point x = 10; the box is the nonnegative orthant.
type Chandrasekhar struct {
	denseSystem
	w float64
}

// NewChandrasekhar returns the family member for c in (0, 1] and n >= 1.
func NewChandrasekhar(c float64, n int) (*Chandrasekhar, error) {
	const family = "Chandrasekhar"
	if err := checkDim(family, n, 1); err != nil {
		return nil, err
	}
	if err := checkFinite(family, "c", c); err != nil {
		return nil, err
	}
	if c <= 0 || c > 1 {
		return nil, fmt.Errorf("%s: c=%g outside (0, 1]: %w", family, c, ErrInvalidParameter)
	}
	title := fmt.Sprintf("Chandrasekhar function c = %g", c)

	return &Chandrasekhar{
		denseSystem: denseSystem{problem.NewBase(title, citeKelley, n)},
		w:           c / float64(2*n),
	}, nil
}

func chandraMu(i int) float64 { return float64(i) + 0.5 }

// denominator returns 1 - w Σ_j μ_j x_j/(μ_i + μ_j).
func (p *Chandrasekhar) denominator(x []float64, i int) float64 {
	mi := chandraMu(i)
	var s float64
	for j, v := range x {
		mj := chandraMu(j)
		s += mj * v / (mi + mj)
	}

	return 1 - p.w*s
}

func (p *Chandrasekhar) BoundingBox(lower, upper []float64) {
	p.Base.BoundingBox(lower, upper)
	clear(lower)
}

func (p *Chandrasekhar) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	for i := range x {
		d := p.denominator(x, i)
		if d == 0 {
			return p.Undefined("row %d: 1 - w·Σ = 0", i)
		}
		f[i] = x[i] - 1/d
	}

	return nil
}

func (p *Chandrasekhar) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n, k := len(x), 0
	for i := 0; i < n; i++ {
		d := p.denominator(x, i)
		if d == 0 {
			return p.Undefined("row %d: 1 - w·Σ = 0", i)
		}
		scale := -p.w / (d * d)
		mi := chandraMu(i)
		for j := 0; j < n; j++ {
			mj := chandraMu(j)
			values[k] = scale * mj / (mi + mj)
			if i == j {
				values[k]++
			}
			k++
		}
	}

	return nil
}

func (p *Chandrasekhar) InitialPointCount() int { return 1 }

func (p *Chandrasekhar) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 10)

	return nil
}
