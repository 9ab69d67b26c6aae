// SPDX-License-Identifier: MIT
package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// swapping stamps (0,0) before (1,1) for x0 <= 0 and after it otherwise.
func swapping(a *sparse.Accumulator, x []float64) {
	if x[0] > 0 {
		a.Add(1, 1, 2*x[1])
		a.Add(0, 0, 2*x[0])
		return
	}
	a.Add(0, 0, 2*x[0])
	a.Add(1, 1, 2*x[1])
}

func TestStamped_ValuesFollowDeclaredOrder(t *testing.T) {
	t.Parallel()
	base := problem.NewBase("swap", "", 2)
	s, err := newStamped(2, []float64{-1, -1}, swapping)
	require.NoError(t, err)
	require.Equal(t, sparse.Pattern{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, s.pattern)

	values := make([]float64, s.nnz())
	require.NoError(t, s.valuesInto(base, []float64{-1, 3}, values))
	require.Equal(t, []float64{-2, 6}, values)

	err = s.valuesInto(base, []float64{1, 3}, values)
	require.ErrorIs(t, err, sparse.ErrPatternMismatch)

	require.ErrorIs(t, s.valuesInto(base, []float64{-1, 3}, values[:1]), problem.ErrDimension)
}

func TestStamped_OutOfRangeStamp(t *testing.T) {
	t.Parallel()
	base := problem.NewBase("oob", "", 2)
	s, err := newStamped(2, []float64{0, 0}, func(a *sparse.Accumulator, x []float64) {
		a.Add(0, 0, 1)
		if x[0] > 0 {
			a.Add(2, 0, 1)
		}
	})
	require.NoError(t, err)

	values := make([]float64, s.nnz())
	require.ErrorIs(t, s.valuesInto(base, []float64{1, 0}, values), sparse.ErrIndexOutOfRange)

	_, err = newStamped(2, []float64{1, 0}, func(a *sparse.Accumulator, x []float64) { a.Add(0, 5, 1) })
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)
}
