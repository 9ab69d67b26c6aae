// SPDX-License-Identifier: MIT

package catalog

import "github.com/katalvlaran/nlcatalog/problem"

// Hilbert is the linear system 2Hx = 0 with the Hilbert matrix
// H_ij = 1/(i+j+1). It is notoriously ill-conditioned for moderate n.
// Exact solution x = 0; initial point x = 1.
type Hilbert struct{ denseSystem }

// NewHilbert returns the family member for n >= 1.
func NewHilbert(n int) (*Hilbert, error) {
	if err := checkDim("Hilbert", n, 1); err != nil {
		return nil, err
	}

	return &Hilbert{denseSystem{problem.NewBase("Hilbert matrix function", citeHilbert, n)}}, nil
}

func (p *Hilbert) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	for i := range f {
		var s float64
		for j, v := range x {
			s += 2 * v / float64(i+j+1)
		}
		f[i] = s
	}

	return nil
}

func (p *Hilbert) Jacobian(x, values []float64) error {
	if err := jacobianArgs(p.Base, x, values, p.JacobianNnz()); err != nil {
		return err
	}
	n, k := len(x), 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			values[k] = 2 / float64(i+j+1)
			k++
		}
	}

	return nil
}

func (p *Hilbert) ExactSolutionCount() int { return 1 }

func (p *Hilbert) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	clear(x)

	return nil
}

func (p *Hilbert) InitialPointCount() int { return 1 }

func (p *Hilbert) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	fill(x, 1)

	return nil
}
