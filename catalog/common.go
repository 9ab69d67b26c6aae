// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

func fill(x []float64, v float64) {
	for i := range x {
		x[i] = v
	}
}

// densePattern writes the row-major n×n pattern into out (len n*n).
func densePattern(out []sparse.Coord, n int) {
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out[k] = sparse.Coord{Row: i, Col: j}
			k++
		}
	}
}

// checkDim reports ErrInvalidDimension unless n >= minN.
func checkDim(family string, n, minN int) error {
	if n < minN {
		return fmt.Errorf("%s: n=%d < %d: %w", family, n, minN, ErrInvalidDimension)
	}

	return nil
}

// checkFinite reports ErrInvalidParameter for NaN/Inf parameters.
func checkFinite(family, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%v: %w", family, name, v, ErrInvalidParameter)
	}

	return nil
}

// stamped is the shared machinery of families whose Jacobian is a sum of
// per-term pieces. The stamp function adds every contribution through a
// sparse.Accumulator; it must add keys in an order that does not depend on x.
// The pattern is recorded once, at construction, from a probe point.
type stamped struct {
	n       int
	pattern sparse.Pattern
	stamp   func(a *sparse.Accumulator, x []float64)
}

func newStamped(n int, probe []float64, stamp func(a *sparse.Accumulator, x []float64)) (stamped, error) {
	a := sparse.NewAccumulator(n)
	stamp(a, probe)
	if err := a.Err(); err != nil {
		return stamped{}, fmt.Errorf("declare pattern: %w", err)
	}

	return stamped{n: n, pattern: a.Pattern(), stamp: stamp}, nil
}

func (s stamped) nnz() int { return len(s.pattern) }

func (s stamped) patternInto(b problem.Base, out []sparse.Coord) error {
	if err := b.CheckNnz(len(out), len(s.pattern)); err != nil {
		return err
	}
	copy(out, s.pattern)

	return nil
}

func (s stamped) valuesInto(b problem.Base, x, values []float64) error {
	if err := b.CheckNnz(len(values), len(s.pattern)); err != nil {
		return err
	}
	a := sparse.NewAccumulator(s.n)
	s.stamp(a, x)
	if err := a.Err(); err != nil {
		return fmt.Errorf("%s: %w", b.Name(), err)
	}
	if a.Len() != len(s.pattern) {
		return fmt.Errorf("%s: stamped %d cells, declared %d: %w", b.Name(), a.Len(), len(s.pattern), sparse.ErrPatternMismatch)
	}
	if got := a.Pattern(); !slices.Equal(got, s.pattern) {
		return fmt.Errorf("%s: stamp order differs from the declared pattern: %w", b.Name(), sparse.ErrPatternMismatch)
	}

	return a.FlattenInto(values)
}
