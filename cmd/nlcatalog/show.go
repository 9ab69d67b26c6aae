// SPDX-License-Identifier: MIT

package main

import (
	"math"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nlcatalog/problem"
)

// problemDoc is the YAML view of one entry's metadata. Points longer than
// maxShownPoint components are omitted. Jacobian is the assembled matrix at
// the first initial point.
type problemDoc struct {
	Name      string      `yaml:"name"`
	Title     string      `yaml:"title"`
	Dimension int         `yaml:"dimension"`
	Nnz       int         `yaml:"nnz"`
	Cells     int         `yaml:"cells"`
	Initial   [][]float64 `yaml:"initial,omitempty"`
	Exact     [][]float64 `yaml:"exact,omitempty"`
	Lower     []float64   `yaml:"lower,omitempty"`
	Upper     []float64   `yaml:"upper,omitempty"`
	Jacobian  [][]float64 `yaml:"jacobian,omitempty"`
	Citation  string      `yaml:"citation"`
}

const maxShownPoint = 10

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print the metadata and citation of one entry as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.reg.Lookup(args[0])
			if err != nil {
				return err
			}
			doc, err := describe(args[0], p)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err = enc.Encode(doc); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

func describe(name string, p problem.Problem) (*problemDoc, error) {
	pattern, err := problem.Pattern(p)
	if err != nil {
		return nil, err
	}
	doc := &problemDoc{
		Name:      name,
		Title:     p.Name(),
		Dimension: p.Dimension(),
		Nnz:       len(pattern),
		Cells:     pattern.Cells(),
		Citation:  p.Citation(),
	}
	if p.Dimension() > maxShownPoint {
		return doc, nil
	}
	if doc.Initial, err = problem.InitialPoints(p); err != nil {
		return nil, err
	}
	if doc.Exact, err = problem.Exacts(p); err != nil {
		return nil, err
	}
	if len(doc.Initial) > 0 {
		if doc.Jacobian, err = jacobianRows(p, doc.Initial[0]); err != nil {
			return nil, err
		}
	}
	lo, up := problem.Box(p)
	if bounded(lo, up) {
		doc.Lower, doc.Upper = lo, up
	}

	return doc, nil
}

// jacobianRows assembles J(x) and returns it row by row; nil when J is not
// defined at x.
func jacobianRows(p problem.Problem, x []float64) ([][]float64, error) {
	jac, err := problem.JacobianCSR(p, x)
	switch problem.Classify(err) {
	case problem.StatusOK:
	case problem.StatusInadmissible, problem.StatusUndefined:
		return nil, nil
	default:
		return nil, err
	}
	d, err := jac.ToDense()
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, d.Rows())
	for i := range rows {
		if rows[i], err = d.Row(i); err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// bounded reports whether any component of the box is finite.
func bounded(lo, up []float64) bool {
	for i := range lo {
		if lo[i] > -math.MaxFloat64 || up[i] < math.MaxFloat64 {
			return true
		}
	}

	return false
}
