// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/nlcatalog/sparse"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		n       int
		pattern []sparse.Coord
		values  []float64
		wantErr error
	}{
		{"ZeroDimension", 0, nil, nil, sparse.ErrBadDimension},
		{"LengthMismatch", 2, []sparse.Coord{{0, 0}}, []float64{1, 2}, sparse.ErrPatternMismatch},
		{"RowOutOfRange", 2, []sparse.Coord{{2, 0}}, []float64{1}, sparse.ErrIndexOutOfRange},
		{"NegativeCol", 2, []sparse.Coord{{0, -1}}, []float64{1}, sparse.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := sparse.Assemble(tc.n, tc.pattern, tc.values)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, m)
		})
	}
}

// TestAssemble_SumsDuplicates covers unsorted input, duplicates and empty rows.
func TestAssemble_SumsDuplicates(t *testing.T) {
	t.Parallel()
	pattern := []sparse.Coord{{2, 2}, {0, 1}, {0, 0}, {2, 0}, {0, 1}, {2, 2}, {2, 2}}
	values := []float64{1, 2, 3, 4, 5, 6, 7}

	m, err := sparse.Assemble(3, pattern, values)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, []int{0, 2, 2, 4}, m.RowPtr)
	require.Equal(t, []int{0, 1, 0, 2}, m.ColIdx)
	require.Equal(t, []float64{3, 7, 4, 14}, m.Values)
	require.Equal(t, 4, m.Nnz())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	v, err = m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 14.0, v)

	cols, vals, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []float64{4, 14}, vals)
}

// TestAssemble_LongRow exercises the stable-sort path for dense rows.
func TestAssemble_LongRow(t *testing.T) {
	t.Parallel()
	const n = 40
	pattern := make([]sparse.Coord, 0, 2*n)
	values := make([]float64, 0, 2*n)
	for j := n - 1; j >= 0; j-- {
		pattern = append(pattern, sparse.Coord{Row: 1, Col: j})
		values = append(values, float64(j))
	}
	for j := 0; j < n; j++ {
		pattern = append(pattern, sparse.Coord{Row: 1, Col: j})
		values = append(values, 1)
	}

	m, err := sparse.Assemble(n, pattern, values)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	cols, vals, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, cols, n)
	for j := 0; j < n; j++ {
		require.Equal(t, j, cols[j])
		require.Equal(t, float64(j)+1, vals[j])
	}
}

// TestAssemble_RoundTripProperty: every CSR cell equals the sum of the
// contributions declared for it, undeclared cells read zero, and the
// compressed-row invariants hold.
func TestAssemble_RoundTripProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")
		k := rapid.IntRange(0, 60).Draw(rt, "k")
		pattern := make([]sparse.Coord, k)
		values := make([]float64, k)
		want := make(map[sparse.Coord]float64)
		for i := 0; i < k; i++ {
			c := sparse.Coord{
				Row: rapid.IntRange(0, n-1).Draw(rt, "row"),
				Col: rapid.IntRange(0, n-1).Draw(rt, "col"),
			}
			pattern[i] = c
			values[i] = float64(rapid.IntRange(-100, 100).Draw(rt, "v"))
			want[c] += values[i]
		}

		m, err := sparse.Assemble(n, pattern, values)
		require.NoError(rt, err)
		require.NoError(rt, m.Validate())
		require.Equal(rt, len(want), m.Nnz())
		require.Equal(rt, sparse.Pattern(pattern).Cells(), m.Nnz())

		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				got, err := m.At(r, c)
				require.NoError(rt, err)
				require.Equal(rt, want[sparse.Coord{Row: r, Col: c}], got)
			}
		}
	})
}
