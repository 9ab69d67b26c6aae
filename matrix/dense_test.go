// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/nlcatalog/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shape covers valid and invalid shapes.
func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"1x1", 1, 1, nil},
		{"3x2", 3, 2, nil},
		{"ZeroRows", 0, 2, matrix.ErrBadShape},
		{"NegativeCols", 2, -1, matrix.ErrBadShape},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDense(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
		})
	}
}

// TestDense_AtSetRow checks the bounds-checked accessors.
func TestDense_AtSetRow(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	require.NoError(t, m.Set(0, 0, -2))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 0, 0}, row)
	row[0] = 9 // copies, never aliases
	v, _ = m.At(0, 0)
	require.Equal(t, -2.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	t.Parallel()
	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Set(0, 1, -3))
	require.NoError(t, m.Set(1, 0, 0.5))
	require.Equal(t, "[0, -3]\n[0.5, 0]\n", m.String())
}
