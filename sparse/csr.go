// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/nlcatalog/matrix"
)

// CSR is a square compressed-sparse-row matrix.
//
// Invariants (checked by Validate):
//   - len(RowPtr) == N+1, RowPtr[0] == 0, RowPtr is non-decreasing;
//   - RowPtr[N] == len(ColIdx) == len(Values);
//   - columns inside each row are strictly increasing and lie in [0, N).
//
// Row i occupies ColIdx[RowPtr[i]:RowPtr[i+1]] and the matching Values range.
type CSR struct {
	N      int       `yaml:"n"`
	RowPtr []int     `yaml:"row_ptr"`
	ColIdx []int     `yaml:"col_idx"`
	Values []float64 `yaml:"values"`
}

// Nnz returns the number of stored cells.
func (m *CSR) Nnz() int { return len(m.ColIdx) }

// Row returns the column indices and values of row i as sub-slices of the
// CSR storage. Callers must not modify them.
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.N {
		return nil, nil, fmt.Errorf("CSR.Row(%d) with n=%d: %w", i, m.N, ErrIndexOutOfRange)
	}
	lo, hi := m.RowPtr[i], m.RowPtr[i+1]

	return m.ColIdx[lo:hi], m.Values[lo:hi], nil
}

// At returns the value of cell (row, col); undeclared cells read as 0.
// Complexity: O(log r) by binary search over the row.
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.N || col < 0 || col >= m.N {
		return 0, fmt.Errorf("CSR.At(%d,%d) with n=%d: %w", row, col, m.N, ErrIndexOutOfRange)
	}
	lo, hi := m.RowPtr[row], m.RowPtr[row+1]
	if k, ok := slices.BinarySearch(m.ColIdx[lo:hi], col); ok {
		return m.Values[lo+k], nil
	}

	return 0, nil
}

// MulVec computes dst = A·x.
func (m *CSR) MulVec(dst, x []float64) error {
	if len(dst) != m.N || len(x) != m.N {
		return fmt.Errorf("CSR.MulVec: len(dst)=%d, len(x)=%d, n=%d: %w", len(dst), len(x), m.N, ErrPatternMismatch)
	}
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < m.N; i++ {
		sum = 0
		for k = m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			sum += m.Values[k] * x[m.ColIdx[k]]
		}
		dst[i] = sum
	}

	return nil
}

// Validate checks the compressed-row invariants listed on CSR.
func (m *CSR) Validate() error {
	if m.N <= 0 {
		return fmt.Errorf("CSR.Validate(n=%d): %w", m.N, ErrBadDimension)
	}
	if len(m.RowPtr) != m.N+1 || m.RowPtr[0] != 0 {
		return fmt.Errorf("CSR.Validate: row pointer header: %w", ErrMalformed)
	}
	if m.RowPtr[m.N] != len(m.ColIdx) || len(m.ColIdx) != len(m.Values) {
		return fmt.Errorf("CSR.Validate: RowPtr[n]=%d, cols=%d, values=%d: %w",
			m.RowPtr[m.N], len(m.ColIdx), len(m.Values), ErrMalformed)
	}
	var i, k int
	for i = 0; i < m.N; i++ {
		if m.RowPtr[i+1] < m.RowPtr[i] {
			return fmt.Errorf("CSR.Validate: RowPtr decreases at row %d: %w", i, ErrMalformed)
		}
	}
	for i = 0; i < m.N; i++ {
		for k = m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if m.ColIdx[k] < 0 || m.ColIdx[k] >= m.N {
				return fmt.Errorf("CSR.Validate: row %d col %d: %w", i, m.ColIdx[k], ErrIndexOutOfRange)
			}
			if k > m.RowPtr[i] && m.ColIdx[k] <= m.ColIdx[k-1] {
				return fmt.Errorf("CSR.Validate: row %d columns not strictly increasing: %w", i, ErrMalformed)
			}
		}
	}

	return nil
}

// ToDense scatters the matrix into a new n×n matrix.Dense.
func (m *CSR) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.N, m.N)
	if err != nil {
		return nil, fmt.Errorf("CSR.ToDense: %w", err)
	}
	var i, k int
	for i = 0; i < m.N; i++ {
		for k = m.RowPtr[i]; k < m.RowPtr[i+1]; k++ {
			if err = d.Set(i, m.ColIdx[k], m.Values[k]); err != nil {
				return nil, fmt.Errorf("CSR.ToDense: %w", err)
			}
		}
	}

	return d, nil
}
