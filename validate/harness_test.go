// SPDX-License-Identifier: MIT
package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nlcatalog/catalog"
	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/registry"
	"github.com/katalvlaran/nlcatalog/sparse"
	"github.com/katalvlaran/nlcatalog/validate"
)

// linear is F(x) = (2x0 + x1 - 3, x0 + 3x1 - 4), root (1, 1), with knobs
// that plant the defects the harness must report.
type linear struct {
	problem.Base
	key       string // registry key; Name() carries the dimension suffix
	pattern   []sparse.Coord
	jacBias   float64   // added to the (1,1) contribution
	exact     []float64 // nil: no exact solution
	undefined bool      // Evaluate always fails with ErrUndefined
	start     []float64
}

var linearPattern = []sparse.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}

func newLinear(name string) *linear {
	return &linear{
		Base:    problem.NewBase(name, "", 2),
		key:     name,
		pattern: linearPattern,
		exact:   []float64{1, 1},
		start:   []float64{0, 0},
	}
}

func (p *linear) Evaluate(x, f []float64) error {
	if err := p.CheckLen(x, f); err != nil {
		return err
	}
	if p.undefined {
		return p.Undefined("planted")
	}
	f[0] = 2*x[0] + x[1] - 3
	f[1] = x[0] + 3*x[1] - 4

	return nil
}

func (p *linear) JacobianNnz() int { return len(p.pattern) }

func (p *linear) JacobianPattern(out []sparse.Coord) error {
	if err := p.CheckNnz(len(out), len(p.pattern)); err != nil {
		return err
	}
	copy(out, p.pattern)

	return nil
}

func (p *linear) Jacobian(x, values []float64) error {
	if err := p.CheckNnz(len(values), len(p.pattern)); err != nil {
		return err
	}
	copy(values, []float64{2, 1, 1, 3 + p.jacBias})

	return nil
}

func (p *linear) ExactSolutionCount() int {
	if p.exact == nil {
		return 0
	}

	return 1
}

func (p *linear) ExactSolution(idx int, x []float64) error {
	if err := p.CheckIndex(idx, p.ExactSolutionCount()); err != nil {
		return err
	}
	copy(x, p.exact)

	return nil
}

func (p *linear) InitialPointCount() int { return 1 }

func (p *linear) InitialPoint(idx int, x []float64) error {
	if err := p.CheckIndex(idx, 1); err != nil {
		return err
	}
	copy(x, p.start)

	return nil
}

func buildRegistry(t *testing.T, problems ...*linear) *registry.Registry {
	t.Helper()
	b := registry.NewBuilder()
	for _, p := range problems {
		p := p
		b.MustRegister(p.key, func() (problem.Problem, error) { return p, nil })
	}
	reg, err := b.Build()
	require.NoError(t, err)

	return reg
}

func TestRun_CatalogPasses(t *testing.T) {
	t.Parallel()
	reg, err := catalog.New()
	require.NoError(t, err)

	report, err := validate.Run(context.Background(), reg, validate.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, report.Results, reg.Len())
	for _, d := range report.Discrepancies() {
		t.Log(d)
	}
	for _, res := range report.Results {
		require.Emptyf(t, res.IntegrityErrors, "%s", res.Name)
		require.Positivef(t, res.Checked, "%s", res.Name)
	}
	require.True(t, report.Passed(), report.String())
	require.Equal(t, reg.Names()[0], report.Results[0].Name)
}

func TestRun_DescentProbe(t *testing.T) {
	t.Parallel()
	reg, err := catalog.New()
	require.NoError(t, err)
	report, err := validate.Run(context.Background(), reg,
		validate.WithDescentProbe(true),
		validate.WithProblems(
			"dennis-schnabel",
			"broyden-tridiagonal/alpha=0.1/n=10",
			"discrete-boundary-value/n=10",
			"chandrasekhar/c=0.9/n=10",
		))
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	require.True(t, report.Passed(), report.String())

	broken := newLinear("broken")
	broken.jacBias = -3 // J = [[2,1],[1,0]]: dx points uphill from (0,0)
	report, err = validate.Run(context.Background(), buildRegistry(t, broken), validate.WithDescentProbe(true))
	require.NoError(t, err)
	kinds := map[validate.Kind]int{}
	for _, d := range report.Discrepancies() {
		kinds[d.Kind]++
	}
	require.Equal(t, 1, kinds[validate.KindDescent])
}

// exponential1 at its root has zero diagonal derivatives computed from
// terms of size ~n that cancel; the default step alone leaves rounding
// just above AbsTol in the estimate.
func TestRun_CancellingTermsAtRoot(t *testing.T) {
	t.Parallel()
	reg, err := catalog.New()
	require.NoError(t, err)

	report, err := validate.Run(context.Background(), reg, validate.WithProblems("exponential1/n=500"))
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	res := report.Results[0]
	require.Equal(t, 2, res.Checked)
	require.Empty(t, res.Discrepancies)
	require.True(t, report.Passed(), report.String())
}

func TestRun_PlantedDefects(t *testing.T) {
	t.Parallel()
	good := newLinear("good")

	wrongJac := newLinear("wrong-jacobian")
	wrongJac.jacBias = 0.5

	badExact := newLinear("bad-exact")
	badExact.exact = []float64{1, 2}

	outOfRange := newLinear("out-of-range")
	outOfRange.pattern = []sparse.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 0}}

	undefined := newLinear("undefined")
	undefined.undefined = true

	reg := buildRegistry(t, good, wrongJac, badExact, outOfRange, undefined)
	report, err := validate.Run(context.Background(), reg, validate.WithWorkers(3))
	require.NoError(t, err)
	require.False(t, report.Passed())

	byName := map[string]*validate.Result{}
	for i := range report.Results {
		byName[report.Results[i].Name] = &report.Results[i]
	}
	require.Len(t, byName, 5)

	require.True(t, byName["good"].Passed())
	require.Equal(t, 2, byName["good"].Checked)

	ignoreValues := cmpopts.IgnoreFields(validate.Discrepancy{}, "Analytic", "Estimate")
	wantJac := []validate.Discrepancy{
		{Problem: "wrong-jacobian", Kind: validate.KindJacobian, Point: validate.Point{Kind: validate.PointInitial}, Row: 1, Col: 1},
		{Problem: "wrong-jacobian", Kind: validate.KindJacobian, Point: validate.Point{Kind: validate.PointExact}, Row: 1, Col: 1},
	}
	require.Empty(t, cmp.Diff(wantJac, byName["wrong-jacobian"].Discrepancies, ignoreValues))

	wantRes := []validate.Discrepancy{
		{Problem: "bad-exact", Kind: validate.KindResidual, Point: validate.Point{Kind: validate.PointExact}, Row: 1, Col: -1, Analytic: 3},
	}
	require.Empty(t, cmp.Diff(wantRes, byName["bad-exact"].Discrepancies))

	oor := byName["out-of-range"]
	require.Len(t, oor.IntegrityErrors, 1)
	require.ErrorIs(t, oor.IntegrityErrors[0], sparse.ErrIndexOutOfRange)
	require.Zero(t, oor.Checked)

	und := byName["undefined"]
	require.True(t, und.Passed())
	require.Zero(t, und.Checked)
	require.Equal(t, 2, und.Skipped)
	require.Len(t, und.Skips, 2)
	require.Equal(t, -1, und.Skips[0].Col)
	require.Contains(t, und.Skips[0].Reason, "planted")
}

func TestRun_OrderIndependentOfWorkers(t *testing.T) {
	t.Parallel()
	reg, err := catalog.New()
	require.NoError(t, err)
	names := []string{"has64/tau=100", "wood", "hilbert/n=8", "helical-valley", "logarithmic/n=10"}

	one, err := validate.Run(context.Background(), reg, validate.WithWorkers(1), validate.WithProblems(names...))
	require.NoError(t, err)
	many, err := validate.Run(context.Background(), reg, validate.WithWorkers(16), validate.WithProblems(names...))
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(one, many, cmpopts.EquateErrors()))

	// registry order, not argument order
	require.Equal(t, "helical-valley", one.Results[0].Name)
	require.Equal(t, "wood", one.Results[1].Name)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	_, err := validate.Run(context.Background(), nil)
	require.ErrorIs(t, err, validate.ErrNilRegistry)

	reg := buildRegistry(t, newLinear("only"))
	_, err = validate.Run(context.Background(), reg, validate.WithProblems("missing"))
	require.ErrorIs(t, err, registry.ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := validate.Run(ctx, reg)
	require.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, report)
	require.Len(t, report.Results, 1)
}

func TestRun_Logging(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.DebugLevel)
	wrong := newLinear("wrong")
	wrong.jacBias = 1
	undefined := newLinear("undefined")
	undefined.undefined = true

	_, err := validate.Run(context.Background(), buildRegistry(t, wrong, undefined), validate.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 2, logs.FilterMessage("discrepancy").Len())
	require.Equal(t, 2, logs.FilterMessage("skip").Len())
	dense := logs.FilterMessage("jacobian comparison").All()
	require.Len(t, dense, 2)
	require.Equal(t, "[2, 1]\n[1, 4]\n", dense[0].ContextMap()["analytic"])
	summary := logs.FilterMessage("validation finished").All()
	require.Len(t, summary, 1)
	require.Equal(t, false, summary[0].ContextMap()["passed"])
}

func TestReport_YAMLAndText(t *testing.T) {
	t.Parallel()
	bad := newLinear("bad")
	bad.pattern = []sparse.Coord{{Row: -1, Col: 0}}
	reg := buildRegistry(t, newLinear("fine"), bad)
	report, err := validate.Run(context.Background(), reg)
	require.NoError(t, err)

	out, err := yaml.Marshal(report)
	require.NoError(t, err)
	var doc struct {
		Results []struct {
			Name      string   `yaml:"name"`
			Checked   int      `yaml:"checked"`
			Passed    bool     `yaml:"passed"`
			Integrity []string `yaml:"integrity"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Results, 2)
	require.Equal(t, "fine", doc.Results[0].Name)
	require.True(t, doc.Results[0].Passed)
	require.Equal(t, 2, doc.Results[0].Checked)
	require.False(t, doc.Results[1].Passed)
	require.Len(t, doc.Results[1].Integrity, 1)
	require.Contains(t, doc.Results[1].Integrity[0], "coordinate out of range")

	text := report.String()
	require.Contains(t, text, "FAIL")
	require.Contains(t, text, "2 problems, 2 points checked")
}
