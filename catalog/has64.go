// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// HAS64 is a seven-equation system derived from Hock-Schittkowski problem 64
// with a penalty weight τ; larger τ makes it badly scaled.
//
// The Jacobian is a sum of pieces (objective, bound terms, penalty) that
// overlap on the leading 4×4 block; it is stamped through a
// sparse.Accumulator, which collapses the overlaps into single cells.
// The domain is x0, x1, x2 > 0. Initial point (1, 1, 1, -10, -10, -10, -10).
type HAS64 struct {
	problem.Base
	tau float64
	jac stamped
}

// NewHAS64 returns the system for penalty weight τ > 0.
func NewHAS64(tau float64) (*HAS64, error) {
	const family = "HAS64"
	if err := checkFinite(family, "tau", tau); err != nil {
		return nil, err
	}
	if tau <= 0 {
		return nil, fmt.Errorf("%s: tau=%g must be positive: %w", family, tau, ErrInvalidParameter)
	}
	p := &HAS64{
		Base: problem.NewBase(fmt.Sprintf("HAS 64 tau = %g", tau), citeGrippo, 7),
		tau:  tau,
	}
	probe := make([]float64, 7)
	if err := p.InitialPoint(0, probe); err != nil {
		return nil, err
	}
	jac, err := newStamped(7, probe, p.stamp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}
	p.jac = jac

	return p, nil
}

func (p *HAS64) inDomain(x []float64) bool { return x[0] > 0 && x[1] > 0 && x[2] > 0 }

func (p *HAS64) CheckAdmissible(x []float64) error {
	if err := p.CheckLen(x); err != nil {
		return err
	}
	if !p.inDomain(x) {
		return p.Inadmissible("x0, x1, x2 must be positive, got (%g, %g, %g)", x[0], x[1], x[2])
	}

	return nil
}

func (p *HAS64) BoundingBox(lower, upper []float64) {
	p.Base.BoundingBox(lower, upper)
	lower[0], lower[1], lower[2] = 0, 0, 0
}

// hasPenalty is 1 - 4/x0 - 32/x1 - 120/x2 - x3².
func hasPenalty(x []float64) float64 {
	return 1 - 4/x[0] - 32/x[1] - 120/x[2] - x[3]*x[3]
}

func (p *HAS64) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	if !p.inDomain(x) {
		return p.Undefined("x0, x1, x2 must be positive")
	}
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	x4, x5, x6 := x[4], x[5], x[6]
	tmp := hasPenalty(x)

	f[0] = 2*(x0-x4*x4) - 2e-5 + tmp*8/(x0*x0)
	f[1] = 2*(x1-x5*x5) - 2e-5 + tmp*64/(x1*x1)
	f[2] = 2*(x2-x6*x6) - 2e-5 + tmp*240/(x2*x2)
	f[3] = -4 * tmp * x3
	f[4] = 4 * (x4*x4 - x0 + 1e-5) * x4
	f[5] = 4 * (x5*x5 - x1 + 1e-5) * x5
	f[6] = 4 * (x6*x6 - x2 + 1e-5) * x6
	for i := range f {
		f[i] *= p.tau
	}
	f[0] += 5 - 50000/(x0*x0)
	f[1] += 20 - 72000/(x1*x1)
	f[2] += 10 - 144000/(x2*x2)

	return nil
}

func (p *HAS64) stamp(a *sparse.Accumulator, x []float64) {
	tau := p.tau
	x0, x1, x2, x3 := x[0], x[1], x[2], x[3]
	x4, x5, x6 := x[4], x[5], x[6]

	// objective
	a.Add(0, 0, 100000/(x0*x0*x0))
	a.Add(1, 1, 144000/(x1*x1*x1))
	a.Add(2, 2, 288000/(x2*x2*x2))

	// bound terms
	a.Add(0, 0, 2*tau)
	a.Add(0, 4, -4*x4*tau)
	a.Add(1, 1, 2*tau)
	a.Add(1, 5, -4*x5*tau)
	a.Add(2, 2, 2*tau)
	a.Add(2, 6, -4*x6*tau)
	a.Add(4, 0, -4*x4*tau)
	a.Add(4, 4, 4*(3*x4*x4-x0+1e-5)*tau)
	a.Add(5, 1, -4*x5*tau)
	a.Add(5, 5, 4*(3*x5*x5-x1+1e-5)*tau)
	a.Add(6, 2, -4*x6*tau)
	a.Add(6, 6, 4*(3*x6*x6-x2+1e-5)*tau)

	// penalty, ∂tmp/∂x
	tmp := hasPenalty(x)
	d := [4]float64{4 / (x0 * x0), 32 / (x1 * x1), 120 / (x2 * x2), -2 * x3}
	rows := [3]struct {
		scale float64
		xi    float64
	}{
		{8 * tau / (x0 * x0), x0},
		{64 * tau / (x1 * x1), x1},
		{240 * tau / (x2 * x2), x2},
	}
	for i, r := range rows {
		for j := 0; j < 4; j++ {
			v := d[j]
			if i == j {
				v -= 2 * tmp / r.xi
			}
			a.Add(i, j, r.scale*v)
		}
	}
	for j := 0; j < 3; j++ {
		a.Add(3, j, -4*tau*d[j]*x3)
	}
	a.Add(3, 3, -4*tau*(tmp-2*x3*x3))
}

func (p *HAS64) JacobianNnz() int { return p.jac.nnz() }

func (p *HAS64) JacobianPattern(out []sparse.Coord) error {
	return p.jac.patternInto(p.Base, out)
}

func (p *HAS64) Jacobian(x, values []float64) error {
	if err := p.CheckLen(x); err != nil {
		return err
	}
	if !p.inDomain(x) {
		return p.Undefined("x0, x1, x2 must be positive")
	}

	return p.jac.valuesInto(p.Base, x, values)
}

func (p *HAS64) InitialPointCount() int { return 1 }

func (p *HAS64) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	x[0], x[1], x[2] = 1, 1, 1
	x[3], x[4], x[5], x[6] = -10, -10, -10, -10

	return nil
}
