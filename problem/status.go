// SPDX-License-Identifier: MIT

package problem

import (
	"errors"

	"github.com/katalvlaran/nlcatalog/matrix"
)

// Status classifies the outcome of evaluating a problem at one point.
type Status int

const (
	// StatusOK means the evaluation produced finite values.
	StatusOK Status = iota
	// StatusInadmissible means x is outside the admissible domain.
	StatusInadmissible
	// StatusUndefined means the formula cannot be evaluated at x, either by
	// an explicit ErrUndefined or by producing NaN/Inf.
	StatusUndefined
	// StatusFailed is any other error: a defect, not a property of x.
	StatusFailed
)

var statusNames = [...]string{"ok", "inadmissible", "undefined", "failed"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Classify maps an evaluation error to a Status.
func Classify(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInadmissible):
		return StatusInadmissible
	case errors.Is(err, ErrUndefined), errors.Is(err, matrix.ErrNaNInf):
		return StatusUndefined
	default:
		return StatusFailed
	}
}

// EvaluateChecked evaluates F(x) and turns non-finite output into an
// ErrUndefined-compatible error, so that Classify sees one taxonomy.
func EvaluateChecked(p Problem, x []float64) ([]float64, Status, error) {
	f, err := Residual(p, x)
	if err == nil {
		err = matrix.ValidateFinite(f)
	}

	return f, Classify(err), err
}

// JacobianChecked is EvaluateChecked for the Jacobian contributions.
func JacobianChecked(p Problem, x []float64) ([]float64, Status, error) {
	v, err := JacobianValues(p, x)
	if err == nil {
		err = matrix.ValidateFinite(v)
	}

	return v, Classify(err), err
}
