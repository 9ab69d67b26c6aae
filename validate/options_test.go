// SPDX-License-Identifier: MIT
package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGatherOptions_Defaults(t *testing.T) {
	t.Parallel()
	o := gatherOptions()
	require.Equal(t, DefaultWorkers, o.workers)
	require.Equal(t, DefaultRelTol, o.relTol)
	require.Equal(t, DefaultAbsTol, o.absTol)
	require.Equal(t, DefaultResidualTol, o.residualTol)
	require.Equal(t, DefaultStepScale, o.stepScale)
	require.Equal(t, DefaultNoiseFactor, o.noiseFactor)
	require.Equal(t, DefaultDescentProbe, o.descentProbe)
	require.Empty(t, o.names)
	require.NotNil(t, o.logger)
}

func TestGatherOptions_LastWriterWins(t *testing.T) {
	t.Parallel()
	names := []string{"a", "b"}
	o := gatherOptions(
		WithWorkers(2), WithWorkers(3),
		WithRelTol(1e-3), WithAbsTol(1e-4), WithResidualTol(1e-6),
		WithStepScale(10), WithNoiseFactor(0),
		WithDescentProbe(true),
		WithProblems(names...),
		WithLogger(zap.NewExample()),
	)
	names[0] = "mutated"
	require.Equal(t, 3, o.workers)
	require.Equal(t, 1e-3, o.relTol)
	require.Equal(t, 1e-4, o.absTol)
	require.Equal(t, 1e-6, o.residualTol)
	require.Equal(t, 10.0, o.stepScale)
	require.Zero(t, o.noiseFactor)
	require.True(t, o.descentProbe)
	require.Equal(t, []string{"a", "b"}, o.names)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		fn   func()
		msg  string
	}{
		{"WorkersZero", func() { WithWorkers(0) }, panicWorkersInvalid},
		{"RelTolNegative", func() { WithRelTol(-1) }, panicTolInvalid},
		{"AbsTolNaN", func() { WithAbsTol(math.NaN()) }, panicTolInvalid},
		{"ResidualInf", func() { WithResidualTol(math.Inf(1)) }, panicTolInvalid},
		{"NoiseNegative", func() { WithNoiseFactor(-2) }, panicTolInvalid},
		{"StepZero", func() { WithStepScale(0) }, panicStepInvalid},
		{"NilLogger", func() { WithLogger(nil) }, panicNilLogger},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.PanicsWithValue(t, tc.msg, tc.fn)
		})
	}
}
