// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nlcatalog/matrix"
	"github.com/katalvlaran/nlcatalog/problem"
)

// sqrtEps is the square root of the float64 machine epsilon.
var sqrtEps = math.Sqrt(epsilon)

const epsilon = 0x1p-52

// Step returns the central-difference step for component v:
// sqrt(eps)·max(1,|v|)·scale.
func Step(v, scale float64) float64 {
	return sqrtEps * max(1, math.Abs(v)) * scale
}

// Column is one finite-difference column of the Jacobian.
type Column struct {
	J     int
	H     float64
	Est   []float64 // (f(x+h e_j) - f(x-h e_j)) / (2h)
	Noise []float64 // c·eps·(|f+| + |f-|)/(2h), per row
}

// CentralDifference estimates column j of J(x). A shifted point that is
// inadmissible or where F is undefined yields an error wrapping the
// corresponding problem sentinel; the caller decides whether that is a skip.
func CentralDifference(p problem.Problem, x []float64, j int, stepScale, noiseFactor float64) (*Column, error) {
	n := p.Dimension()
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return nil, fmt.Errorf("CentralDifference(%s): %v: %w", p.Name(), err, problem.ErrDimension)
	}
	if j < 0 || j >= n {
		return nil, fmt.Errorf("CentralDifference(%s): column %d of %d: %w", p.Name(), j, n, problem.ErrDimension)
	}
	h := Step(x[j], stepScale)
	xs := make([]float64, n)
	copy(xs, x)

	eval := func(v float64) ([]float64, error) {
		xs[j] = v
		if err := p.CheckAdmissible(xs); err != nil {
			return nil, err
		}
		f, err := problem.Residual(p, xs)
		if err != nil {
			return nil, err
		}
		if err = matrix.ValidateFinite(f); err != nil {
			return nil, err
		}

		return f, nil
	}
	hi, lo := x[j]+h, x[j]-h
	fp, err := eval(hi)
	if err != nil {
		return nil, fmt.Errorf("CentralDifference(%s) column %d, x+h: %w", p.Name(), j, err)
	}
	fm, err := eval(lo)
	if err != nil {
		return nil, fmt.Errorf("CentralDifference(%s) column %d, x-h: %w", p.Name(), j, err)
	}

	// the representable spacing, not 2h
	width := hi - lo
	c := &Column{J: j, H: h, Est: make([]float64, n), Noise: make([]float64, n)}
	for i := range fp {
		c.Est[i] = (fp[i] - fm[i]) / width
		c.Noise[i] = noiseFactor * epsilon * (math.Abs(fp[i]) + math.Abs(fm[i])) / width
	}

	return c, nil
}

// Agrees is the acceptance test |a - fd| <= atol + rtol·max(|a|,|fd|) + noise.
func Agrees(analytic, estimate, relTol, absTol, noise float64) bool {
	diff := math.Abs(analytic - estimate)

	return diff <= absTol+relTol*max(math.Abs(analytic), math.Abs(estimate))+noise
}
