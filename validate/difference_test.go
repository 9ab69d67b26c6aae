// SPDX-License-Identifier: MIT
package validate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nlcatalog/catalog"
	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/validate"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	t.Parallel()
	base := math.Sqrt(0x1p-52)
	require.Equal(t, base, validate.Step(0, 1))
	require.Equal(t, base, validate.Step(-0.5, 1))
	require.InDelta(t, 100*base, validate.Step(-100, 1), 1e-20)
	require.InDelta(t, 20*base, validate.Step(2, 10), 1e-20)
}

func TestCentralDifference_DennisSchnabel(t *testing.T) {
	t.Parallel()
	p := catalog.NewDennisSchnabel()
	x := []float64{1, 5}
	want := [][]float64{{1, 2}, {1, 10}} // columns of [[1,1],[2,10]]
	for j := 0; j < 2; j++ {
		col, err := validate.CentralDifference(p, x, j, 1, 100)
		require.NoError(t, err)
		require.Equal(t, j, col.J)
		for i := 0; i < 2; i++ {
			require.InDelta(t, want[j][i], col.Est[i], 1e-6)
			require.True(t, validate.Agrees(want[j][i], col.Est[i], 1e-5, 1e-6, col.Noise[i]))
		}
	}
}

func TestCentralDifference_Errors(t *testing.T) {
	t.Parallel()
	p := catalog.NewDennisSchnabel()
	_, err := validate.CentralDifference(p, []float64{1}, 0, 1, 100)
	require.ErrorIs(t, err, problem.ErrDimension)
	_, err = validate.CentralDifference(p, []float64{1, 5}, 2, 1, 100)
	require.ErrorIs(t, err, problem.ErrDimension)

	// x - h leaves the domain x > -1
	lg, err := catalog.NewLogarithmic(2)
	require.NoError(t, err)
	_, err = validate.CentralDifference(lg, []float64{-1 + 1e-12, 0}, 0, 1, 100)
	require.ErrorIs(t, err, problem.ErrInadmissible)
	col, err := validate.CentralDifference(lg, []float64{-1 + 1e-12, 0}, 1, 1, 100)
	require.NoError(t, err)
	require.InDelta(t, 0.5, col.Est[1], 1e-6)
}

func TestAgrees(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name          string
		a, fd, r, abs float64
		noise         float64
		want          bool
	}{
		{"Equal", 3, 3, 0, 0, 0, true},
		{"WithinAbs", 0, 1e-7, 0, 1e-6, 0, true},
		{"WithinRel", 1e6, 1e6 + 5, 1e-5, 0, 0, true},
		{"OutsideRel", 1e6, 1e6 + 50, 1e-5, 0, 0, false},
		{"NoiseRescues", 1, 1.1, 0, 0, 0.2, true},
		{"SignFlip", 1, -1, 1e-5, 1e-6, 0, false},
		{"NaN", math.NaN(), 1, 1, 1, 1, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, validate.Agrees(tc.a, tc.fd, tc.r, tc.abs, tc.noise))
		})
	}
}
