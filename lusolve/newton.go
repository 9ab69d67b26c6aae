// SPDX-License-Identifier: MIT

package lusolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nlcatalog/matrix"
	"github.com/katalvlaran/nlcatalog/problem"
)

// Backtracking defaults for NewtonStep.
const (
	// DefaultArmijo is c in ‖F(x+t·dx)‖ <= (1 - c·t)‖F(x)‖.
	DefaultArmijo = 1e-4
	// DefaultMaxHalvings bounds the step-length search (t >= 2^-40).
	DefaultMaxHalvings = 40
)

// Step is one damped Newton step from X.
type Step struct {
	X     []float64 // base point
	F     []float64 // F(X)
	Dx    []float64 // J(X)·Dx = -F(X)
	T     float64   // accepted step length, 0 when X is already a root
	Norm0 float64   // ‖F(X)‖₂
	NormT float64   // ‖F(X + T·Dx)‖₂
}

// Reduction is NormT/Norm0 (0 for a root).
func (s *Step) Reduction() float64 {
	if s.Norm0 == 0 {
		return 0
	}

	return s.NormT / s.Norm0
}

// NewtonStep solves J(x)·dx = -F(x) and halves t from 1 until the Armijo
// condition holds at an admissible, evaluable trial point.
//
// With a correct Jacobian the directional derivative of ‖F‖ along dx is
// -‖F‖, so a small enough t always succeeds; ErrNoDescent after
// DefaultMaxHalvings therefore points at a wrong Jacobian (or at a point
// where F is not differentiable). The partially filled Step is returned
// with ErrNoDescent.
//
// Errors: problem evaluation errors, ErrSingular, ErrNoDescent.
func NewtonStep(p problem.Problem, x []float64) (*Step, error) {
	f, err := problem.Residual(p, x)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateFinite(f); err != nil {
		return nil, fmt.Errorf("NewtonStep(%s): %w", p.Name(), err)
	}
	s := &Step{X: append([]float64(nil), x...), F: f, Norm0: Norm2(f)}
	if s.Norm0 == 0 {
		s.Dx = make([]float64, len(x))
		return s, nil
	}

	jac, err := problem.JacobianCSR(p, x)
	if err != nil {
		return nil, err
	}
	rhs := make([]float64, len(f))
	for i, v := range f {
		rhs[i] = -v
	}
	if s.Dx, err = Solve(jac, rhs); err != nil {
		return nil, fmt.Errorf("NewtonStep(%s): %w", p.Name(), err)
	}

	trial := make([]float64, len(x))
	t := 1.0
	for h := 0; h <= DefaultMaxHalvings; h++ {
		for i := range trial {
			trial[i] = x[i] + t*s.Dx[i]
		}
		if nt, ok := trialNorm(p, trial); ok && nt <= (1-DefaultArmijo*t)*s.Norm0 {
			s.T, s.NormT = t, nt
			return s, nil
		}
		t /= 2
	}
	s.NormT = s.Norm0

	return s, fmt.Errorf("NewtonStep(%s): ‖F‖=%g: %w", p.Name(), s.Norm0, ErrNoDescent)
}

// trialNorm evaluates ‖F(x)‖₂, reporting false when x is outside the
// domain or F is not finite there.
func trialNorm(p problem.Problem, x []float64) (float64, bool) {
	if p.CheckAdmissible(x) != nil {
		return 0, false
	}
	f, err := problem.Residual(p, x)
	if err != nil || matrix.ValidateFinite(f) != nil {
		return 0, false
	}

	return Norm2(f), true
}

// Norm2 is the Euclidean norm, scaled by the largest magnitude to avoid
// overflow on badly scaled residuals.
func Norm2(v []float64) float64 {
	scale := NormInf(v)
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale
	}
	var ss float64
	for _, x := range v {
		r := x / scale
		ss += r * r
	}

	return scale * math.Sqrt(ss)
}

// NormInf is max |v_i| (NaN if any component is NaN).
func NormInf(v []float64) float64 {
	var m float64
	for _, x := range v {
		if math.IsNaN(x) {
			return math.NaN()
		}
		m = max(m, math.Abs(x))
	}

	return m
}
