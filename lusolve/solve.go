// SPDX-License-Identifier: MIT

package lusolve

import (
	"fmt"

	spsolve "github.com/edp1096/sparse"

	"github.com/katalvlaran/nlcatalog/matrix"
	"github.com/katalvlaran/nlcatalog/sparse"
)

// Factorization settings; TiesMultiplier bounds the Markowitz search.
const (
	tiesMultiplier = 5
	printerWidth   = 140
)

func newConfig() *spsolve.Configuration {
	return &spsolve.Configuration{
		Real:           true,
		Expandable:     true,
		TiesMultiplier: tiesMultiplier,
		PrinterWidth:   printerWidth,
	}
}

// Solve returns x with A·x = b.
//
// Stages:
//  1. validate the CSR invariants and len(b) == A.N;
//  2. create an n×n factorization matrix, touch every diagonal cell so that
//     empty rows surface as singular pivots, then load the stored entries;
//  3. factor, solve on the 1-based right-hand side, copy back.
//
// Errors: sparse.ErrMalformed (wrapped), ErrDimension, ErrSingular.
func Solve(a *sparse.CSR, b []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("lusolve.Solve: nil matrix: %w", ErrDimension)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("lusolve.Solve: %w", err)
	}
	n := a.N
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("lusolve.Solve: rhs: %v: %w", err, ErrDimension)
	}

	m, err := spsolve.Create(int64(n), newConfig())
	if err != nil {
		return nil, fmt.Errorf("lusolve.Solve: create %d×%d: %w", n, n, err)
	}
	defer m.Destroy()

	var i, k int
	for i = 1; i <= n; i++ {
		m.GetElement(int64(i), int64(i))
	}
	for i = 0; i < n; i++ {
		for k = a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			m.GetElement(int64(i+1), int64(a.ColIdx[k]+1)).Real += a.Values[k]
		}
	}

	if err = m.Factor(); err != nil {
		return nil, fmt.Errorf("lusolve.Solve: factor: %v: %w", err, ErrSingular)
	}
	rhs := make([]float64, n+1)
	copy(rhs[1:], b)
	sol, err := m.Solve(rhs)
	if err != nil {
		return nil, fmt.Errorf("lusolve.Solve: %v: %w", err, ErrSingular)
	}
	if len(sol) < n+1 {
		return nil, fmt.Errorf("lusolve.Solve: solution len=%d, want %d: %w", len(sol), n+1, ErrDimension)
	}

	x := make([]float64, n)
	copy(x, sol[1:n+1])
	if err = matrix.ValidateFinite(x); err != nil {
		return nil, fmt.Errorf("lusolve.Solve: %v: %w", err, ErrSingular)
	}

	return x, nil
}
