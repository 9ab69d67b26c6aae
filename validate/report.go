// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"
	"strings"
)

// Kind names the check a Discrepancy failed.
type Kind string

const (
	// KindJacobian: an assembled cell disagrees with its central difference.
	KindJacobian Kind = "jacobian"
	// KindResidual: ‖F(x*)‖∞ exceeds the residual tolerance at an exact solution.
	KindResidual Kind = "residual"
	// KindDescent: no step along the Newton direction reduced ‖F‖.
	KindDescent Kind = "descent"
)

// PointKind tells which metadata list a probe point came from.
type PointKind string

const (
	PointInitial PointKind = "initial"
	PointExact   PointKind = "exact"
)

// Point identifies one probe point of a problem.
type Point struct {
	Kind  PointKind `yaml:"kind"`
	Index int       `yaml:"index"`
}

func (p Point) String() string { return fmt.Sprintf("%s[%d]", p.Kind, p.Index) }

// Discrepancy is one failed comparison. For KindResidual, Row is the worst
// equation, Analytic is f[Row] and Estimate is 0. For KindDescent, Analytic
// is ‖F(x)‖₂ and Estimate the norm after the smallest trial step; Row and
// Col are -1.
type Discrepancy struct {
	Problem  string  `yaml:"problem"`
	Kind     Kind    `yaml:"kind"`
	Point    Point   `yaml:"point"`
	Row      int     `yaml:"row"`
	Col      int     `yaml:"col"`
	Analytic float64 `yaml:"analytic"`
	Estimate float64 `yaml:"estimate"`
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s %s at %s (%d,%d): analytic %g, estimate %g",
		d.Problem, d.Kind, d.Point, d.Row, d.Col, d.Analytic, d.Estimate)
}

// Skip records a probe that was not performed and why. Col is -1 when the
// whole point was skipped.
type Skip struct {
	Point  Point  `yaml:"point"`
	Col    int    `yaml:"col"`
	Reason string `yaml:"reason"`
}

// Result is the outcome for one registry entry.
//
// Checked counts probe points whose checks ran (possibly with some columns
// skipped), Skipped counts points skipped entirely. IntegrityErrors are
// catalog defects: inconsistent pattern lengths, out-of-range coordinates,
// or errors other than the domain sentinels.
type Result struct {
	Name            string        `yaml:"name"`
	Dimension       int           `yaml:"dimension"`
	Nnz             int           `yaml:"nnz"`
	Checked         int           `yaml:"checked"`
	Skipped         int           `yaml:"skipped"`
	Skips           []Skip        `yaml:"skips,omitempty"`
	Discrepancies   []Discrepancy `yaml:"discrepancies,omitempty"`
	IntegrityErrors []error       `yaml:"-"`
}

// Passed reports whether the entry has neither discrepancies nor integrity
// errors.
func (r *Result) Passed() bool {
	return len(r.Discrepancies) == 0 && len(r.IntegrityErrors) == 0
}

// MarshalYAML renders IntegrityErrors as strings.
func (r Result) MarshalYAML() (interface{}, error) {
	type plain Result
	out := struct {
		plain     `yaml:",inline"`
		Integrity []string `yaml:"integrity,omitempty"`
		Passed    bool     `yaml:"passed"`
	}{plain: plain(r), Passed: r.Passed()}
	for _, err := range r.IntegrityErrors {
		out.Integrity = append(out.Integrity, err.Error())
	}

	return out, nil
}

// Report aggregates the results in registry order.
type Report struct {
	Results []Result `yaml:"results"`
}

// Passed reports whether every result passed.
func (r *Report) Passed() bool {
	for i := range r.Results {
		if !r.Results[i].Passed() {
			return false
		}
	}

	return true
}

// Discrepancies flattens every discrepancy, in report order.
func (r *Report) Discrepancies() []Discrepancy {
	var out []Discrepancy
	for i := range r.Results {
		out = append(out, r.Results[i].Discrepancies...)
	}

	return out
}

// Totals sums the per-result counters.
func (r *Report) Totals() (checked, skipped, discrepancies, integrity int) {
	for i := range r.Results {
		res := &r.Results[i]
		checked += res.Checked
		skipped += res.Skipped
		discrepancies += len(res.Discrepancies)
		integrity += len(res.IntegrityErrors)
	}

	return checked, skipped, discrepancies, integrity
}

// String is a one-line-per-problem text summary.
func (r *Report) String() string {
	var sb strings.Builder
	for i := range r.Results {
		res := &r.Results[i]
		status := "ok"
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "%-4s %-45s checked=%d skipped=%d", status, res.Name, res.Checked, res.Skipped)
		if n := len(res.Discrepancies); n > 0 {
			fmt.Fprintf(&sb, " discrepancies=%d", n)
		}
		if n := len(res.IntegrityErrors); n > 0 {
			fmt.Fprintf(&sb, " integrity=%d", n)
		}
		sb.WriteByte('\n')
	}
	c, s, d, ie := r.Totals()
	fmt.Fprintf(&sb, "%d problems, %d points checked, %d skipped, %d discrepancies, %d integrity errors\n",
		len(r.Results), c, s, d, ie)

	return sb.String()
}
