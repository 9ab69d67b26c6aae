// SPDX-License-Identifier: MIT

// Package sparse - coordinate → CSR assembly.
//
// Stages:
//  1. Validate: n > 0, len(pattern) == len(values), every coordinate in range.
//  2. Count entries per row and prefix-sum them into provisional row pointers.
//  3. Stable bucket scatter of (col, value) pairs into their row.
//  4. Sort each row by column (stable), then merge equal columns by summation
//     while compacting into the final ColIdx/Values.
//
// Complexity: O(n + nnz) for stages 1-3; stage 4 is O(r²) for short rows
// (insertion sort) and O(r log r) otherwise, r = entries in the row.
// Duplicates are summed in pattern order, so the result is deterministic.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// insertionSortMax is the row length up to which insertion sort is used.
// Banded and block Jacobians stay below it; dense rows use slices.SortStableFunc.
const insertionSortMax = 16

// entry is one scattered (col, value) pair inside a row bucket.
type entry struct {
	col int
	val float64
}

// Assemble converts a coordinate pattern and its parallel value vector into
// CSR storage with strictly increasing columns per row. Repeated coordinates
// are summed; cells absent from the pattern are implicit zeros.
//
// Errors:
//   - ErrBadDimension if n <= 0.
//   - ErrPatternMismatch if len(pattern) != len(values).
//   - ErrIndexOutOfRange if any coordinate falls outside [0, n).
func Assemble(n int, pattern []Coord, values []float64) (*CSR, error) {
	// Stage 1: validate
	if n <= 0 {
		return nil, fmt.Errorf("Assemble(n=%d): %w", n, ErrBadDimension)
	}
	if len(pattern) != len(values) {
		return nil, fmt.Errorf("Assemble: len(pattern)=%d, len(values)=%d: %w", len(pattern), len(values), ErrPatternMismatch)
	}
	if err := Pattern(pattern).Validate(n); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	// Stage 2: count + prefix sum
	start := make([]int, n+1)
	for _, c := range pattern {
		start[c.Row+1]++
	}
	var i int
	for i = 0; i < n; i++ {
		start[i+1] += start[i]
	}

	// Stage 3: stable scatter
	buckets := make([]entry, len(pattern))
	next := make([]int, n)
	copy(next, start[:n])
	for k, c := range pattern {
		buckets[next[c.Row]] = entry{col: c.Col, val: values[k]}
		next[c.Row]++
	}

	// Stage 4: per-row sort + merge
	out := &CSR{
		N:      n,
		RowPtr: make([]int, n+1),
		ColIdx: make([]int, 0, len(pattern)),
		Values: make([]float64, 0, len(pattern)),
	}
	for i = 0; i < n; i++ {
		row := buckets[start[i]:start[i+1]]
		sortRow(row)
		for j := 0; j < len(row); j++ {
			last := len(out.ColIdx) - 1
			if last >= out.RowPtr[i] && out.ColIdx[last] == row[j].col {
				out.Values[last] += row[j].val
				continue
			}
			out.ColIdx = append(out.ColIdx, row[j].col)
			out.Values = append(out.Values, row[j].val)
		}
		out.RowPtr[i+1] = len(out.ColIdx)
	}

	return out, nil
}

// sortRow orders one row bucket by column, keeping equal columns in pattern order.
func sortRow(row []entry) {
	if len(row) <= insertionSortMax {
		var (
			k, m int
			cur  entry
		)
		for k = 1; k < len(row); k++ {
			cur = row[k]
			for m = k - 1; m >= 0 && row[m].col > cur.col; m-- {
				row[m+1] = row[m]
			}
			row[m+1] = cur
		}
		return
	}
	slices.SortStableFunc(row, func(a, b entry) int { return cmp.Compare(a.col, b.col) })
}
