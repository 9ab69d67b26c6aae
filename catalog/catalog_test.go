// SPDX-License-Identifier: MIT
package catalog_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/nlcatalog/catalog"
	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/registry"
	"github.com/katalvlaran/nlcatalog/sparse"
	"github.com/stretchr/testify/require"
)

func mustCatalog(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := catalog.New()
	require.NoError(t, err)
	return reg
}

func TestNew_RegistersEveryFamily(t *testing.T) {
	t.Parallel()
	reg := mustCatalog(t)
	require.Greater(t, reg.Len(), 60)

	for _, name := range []string{
		"dennis-schnabel",
		"helical-valley",
		"wood",
		"broyden-tridiagonal/alpha=0.1/n=5",
		"broyden-tridiagonal/alpha=0.5/n=500",
		"broyden-banded/n=10",
		"generalized-rosenbrock/n=500",
		"extended-powell-singular/n=40",
		"discrete-integral-equation/n=100",
		"has64/tau=100",
		"has64/tau=10000",
		"chandrasekhar/c=0.9999/n=50",
		"exponential3/n=500",
	} {
		p, err := reg.Lookup(name)
		require.NoError(t, err, name)
		require.NotEmpty(t, p.Name())
		require.NotEmpty(t, p.Citation())
	}

	// a second registration of the same table must fail on duplicates
	b := registry.NewBuilder()
	require.NoError(t, catalog.Register(b))
	require.ErrorIs(t, catalog.Register(b), registry.ErrDuplicateName)
}

// TestCatalog_Invariants checks, for every entry, the length contract of the
// coordinate form, index ranges, CSR assembly and the metadata counts.
func TestCatalog_Invariants(t *testing.T) {
	t.Parallel()
	for _, e := range mustCatalog(t).All() {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			t.Parallel()
			p := e.Problem
			n := p.Dimension()
			require.Positive(t, n)
			require.Contains(t, p.Name(), "neq = ")

			pattern, err := problem.Pattern(p)
			require.NoError(t, err)
			require.Len(t, pattern, p.JacobianNnz())
			require.NoError(t, pattern.Validate(n))

			require.ErrorIs(t, p.JacobianPattern(make([]sparse.Coord, p.JacobianNnz()+1)), problem.ErrDimension)
			require.ErrorIs(t, p.Evaluate(make([]float64, n+1), make([]float64, n)), problem.ErrDimension)

			require.GreaterOrEqual(t, p.InitialPointCount(), 1)
			inits, err := problem.InitialPoints(p)
			require.NoError(t, err)
			for _, x0 := range inits {
				require.NoError(t, p.CheckAdmissible(x0))

				f, st, err := problem.EvaluateChecked(p, x0)
				require.NoError(t, err)
				require.Equal(t, problem.StatusOK, st)
				require.Len(t, f, n)

				values, st, err := problem.JacobianChecked(p, x0)
				require.NoError(t, err)
				require.Equal(t, problem.StatusOK, st)
				require.Len(t, values, len(pattern))

				m, err := problem.JacobianCSR(p, x0)
				require.NoError(t, err)
				require.NoError(t, m.Validate())
				require.Equal(t, pattern.Cells(), m.Nnz())
			}
			require.ErrorIs(t, p.InitialPoint(p.InitialPointCount(), make([]float64, n)), problem.ErrIndex)
			require.ErrorIs(t, p.ExactSolution(p.ExactSolutionCount(), make([]float64, n)), problem.ErrIndex)

			lo, up := problem.Box(p)
			for i := range lo {
				require.LessOrEqual(t, lo[i], up[i])
			}
		})
	}
}

// TestCatalog_ExactSolutions checks ‖F(x*)‖∞ for every tabulated root.
func TestCatalog_ExactSolutions(t *testing.T) {
	t.Parallel()
	withExact := 0
	for _, e := range mustCatalog(t).All() {
		exacts, err := problem.Exacts(e.Problem)
		require.NoError(t, err, e.Name)
		for _, xs := range exacts {
			withExact++
			f, err := problem.Residual(e.Problem, xs)
			require.NoError(t, err, e.Name)
			for i, v := range f {
				require.LessOrEqualf(t, math.Abs(v), 1e-8, "%s: f[%d]=%g", e.Name, i, v)
			}
		}
	}
	require.Greater(t, withExact, 30)
}

// TestDennisSchnabel_Scenario pins the 2×2 example end to end.
func TestDennisSchnabel_Scenario(t *testing.T) {
	t.Parallel()
	p := catalog.NewDennisSchnabel()
	x := []float64{1, 5}

	m, err := problem.JacobianCSR(p, x)
	require.NoError(t, err)
	d, err := m.ToDense()
	require.NoError(t, err)
	want := [2][2]float64{{1, 1}, {2, 10}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}

	// central differences with h = 1e-6
	const h = 1e-6
	for j := 0; j < 2; j++ {
		xp := append([]float64(nil), x...)
		xm := append([]float64(nil), x...)
		xp[j] += h
		xm[j] -= h
		fp, err := problem.Residual(p, xp)
		require.NoError(t, err)
		fm, err := problem.Residual(p, xm)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			require.InDelta(t, want[i][j], (fp[i]-fm[i])/(2*h), 1e-4)
		}
	}

	xs := make([]float64, 2)
	require.NoError(t, p.ExactSolution(0, xs))
	require.Equal(t, []float64{0, 3}, xs)
	f, err := problem.Residual(p, xs)
	require.NoError(t, err)
	require.InDelta(t, 0, f[0], 1e-8)
	require.InDelta(t, 0, f[1], 1e-8)
}

func TestConstructors_RejectBadInput(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"BroydenTridiagonalZero", func() error { _, err := catalog.NewBroydenTridiagonal(0.1, 1, 0); return err }, catalog.ErrInvalidDimension},
		{"BroydenTridiagonalNaN", func() error { _, err := catalog.NewBroydenTridiagonal(math.NaN(), 1, 3); return err }, catalog.ErrInvalidParameter},
		{"RosenbrockOdd", func() error { _, err := catalog.NewGeneralizedRosenbrock(3); return err }, catalog.ErrInvalidDimension},
		{"PowellSingularNotFour", func() error { _, err := catalog.NewExtendedPowellSingular(6); return err }, catalog.ErrInvalidDimension},
		{"BrownTooSmall", func() error { _, err := catalog.NewBrownAlmostLinear(1); return err }, catalog.ErrInvalidDimension},
		{"Exponential1TooSmall", func() error { _, err := catalog.NewExponential1(1); return err }, catalog.ErrInvalidDimension},
		{"HAS64NegativeTau", func() error { _, err := catalog.NewHAS64(-1); return err }, catalog.ErrInvalidParameter},
		{"HAS64InfTau", func() error { _, err := catalog.NewHAS64(math.Inf(1)); return err }, catalog.ErrInvalidParameter},
		{"ChandrasekharC", func() error { _, err := catalog.NewChandrasekhar(1.5, 10); return err }, catalog.ErrInvalidParameter},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.build(), tc.wantErr)
		})
	}
}

func TestDomains(t *testing.T) {
	t.Parallel()

	hv := catalog.NewHelicalValley()
	require.ErrorIs(t, hv.CheckAdmissible([]float64{0, 1, 0}), problem.ErrInadmissible)
	require.ErrorIs(t, hv.Evaluate([]float64{0, 1, 0}, make([]float64, 3)), problem.ErrUndefined)
	// θ is continuous across x1 = 0 on the x0 < 0 side
	fa, err := problem.Residual(hv, []float64{-1, 1e-9, 0})
	require.NoError(t, err)
	fb, err := problem.Residual(hv, []float64{-1, -1e-9, 0})
	require.NoError(t, err)
	require.InDelta(t, fa[0], fb[0], 1e-6)

	has, err := catalog.NewHAS64(100)
	require.NoError(t, err)
	x := []float64{-1, 1, 1, 0, 0, 0, 0}
	require.ErrorIs(t, has.CheckAdmissible(x), problem.ErrInadmissible)
	require.ErrorIs(t, has.Evaluate(x, make([]float64, 7)), problem.ErrUndefined)
	require.ErrorIs(t, has.Jacobian(x, make([]float64, has.JacobianNnz())), problem.ErrUndefined)
	lo, _ := problem.Box(has)
	require.Equal(t, []float64{0, 0, 0}, lo[:3])

	lg, err := catalog.NewLogarithmic(3)
	require.NoError(t, err)
	require.ErrorIs(t, lg.CheckAdmissible([]float64{0, -1, 0}), problem.ErrInadmissible)
	require.Equal(t, problem.StatusUndefined, problem.Classify(lg.Evaluate([]float64{0, -2, 0}, make([]float64, 3))))
}

// TestAccumulatedPatterns: stamped families collapse overlaps into unique
// cells, gradient systems keep repeats in the pattern.
func TestAccumulatedPatterns(t *testing.T) {
	t.Parallel()
	has, err := catalog.NewHAS64(1e4)
	require.NoError(t, err)
	pat, err := problem.Pattern(has)
	require.NoError(t, err)
	require.Equal(t, len(pat), pat.Cells())
	require.Equal(t, sparse.Coord{Row: 0, Col: 0}, pat[0])
	// 3 objective + 12 bound cells + 16 penalty cells, 3 shared diagonals
	// and (0,0),(1,1),(2,2) again inside the penalty block
	require.Equal(t, 25, len(pat))

	bb, err := catalog.NewBroydenBanded(10)
	require.NoError(t, err)
	pat, err = problem.Pattern(bb)
	require.NoError(t, err)
	require.Equal(t, len(pat), pat.Cells())

	wood := catalog.NewWood()
	pat, err = problem.Pattern(wood)
	require.NoError(t, err)
	require.Equal(t, 4+1+4+1+4+4, len(pat))
	require.Less(t, pat.Cells(), len(pat))
}

// TestConcurrentEvaluation: problems are pure, so concurrent calls agree
// bit for bit with a sequential reference.
func TestConcurrentEvaluation(t *testing.T) {
	t.Parallel()
	reg := mustCatalog(t)
	for _, name := range []string{"has64/tau=10000", "broyden-banded/n=10", "wood", "chandrasekhar/c=0.9/n=50"} {
		p, err := reg.Lookup(name)
		require.NoError(t, err)
		x := make([]float64, p.Dimension())
		require.NoError(t, p.InitialPoint(0, x))
		wantF, err := problem.Residual(p, x)
		require.NoError(t, err)
		wantJ, err := problem.JacobianValues(p, x)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for r := 0; r < 20; r++ {
					f, err := problem.Residual(p, x)
					if err != nil || !equal(f, wantF) {
						t.Errorf("%s: residual diverged: %v", name, err)
						return
					}
					v, err := problem.JacobianValues(p, x)
					if err != nil || !equal(v, wantJ) {
						t.Errorf("%s: jacobian diverged: %v", name, err)
						return
					}
				}
			}()
		}
		wg.Wait()
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}
	return true
}
