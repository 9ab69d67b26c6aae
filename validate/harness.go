// SPDX-License-Identifier: MIT

package validate

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nlcatalog/lusolve"
	"github.com/katalvlaran/nlcatalog/matrix"
	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/registry"
	"github.com/katalvlaran/nlcatalog/sparse"
)

const (
	// retryStepFactor scales the step of the second attempt on a cell that
	// disagreed at the configured step.
	retryStepFactor = 100

	// maxLoggedDense bounds the dimension whose full analytic and estimated
	// Jacobians are logged at Debug after a discrepancy.
	maxLoggedDense = 10
)

// task is one (problem, point) work item.
type task struct {
	seq   int
	entry int
	point Point
	x     []float64
}

// outcome is what a task contributes to its Result.
type outcome struct {
	seq           int
	entry         int
	checked       bool
	skips         []Skip
	discrepancies []Discrepancy
	integrity     []error
}

// Run checks every selected registry entry at every initial point and every
// exact solution.
//
// Stages:
//  1. select entries (WithProblems) in registry order;
//  2. structural checks per entry; an entry with integrity errors gets no
//     point checks;
//  3. (entry, point) tasks on an errgroup pool bounded by WithWorkers,
//     outcomes collected under a mutex;
//  4. outcomes sorted by task sequence (registry order, then initial points,
//     then exact solutions) and folded into the Report.
//
// One defective problem never stops the others: its defects land in its
// Result. The returned error is non-nil only for a nil registry, an unknown
// name, or cancellation of ctx; on cancellation the partial Report is
// returned alongside the error.
func Run(ctx context.Context, reg *registry.Registry, opts ...Option) (*Report, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	o := gatherOptions(opts...)
	log := o.logger
	start := time.Now()

	entries, err := selectEntries(reg, o.names)
	if err != nil {
		return nil, fmt.Errorf("validate.Run: %w", err)
	}

	report := &Report{Results: make([]Result, len(entries))}
	var tasks []task
	for i, e := range entries {
		res := &report.Results[i]
		res.Name = e.Name
		res.Dimension = e.Problem.Dimension()
		res.Nnz = e.Problem.JacobianNnz()

		if errs := checkStructure(e.Problem); len(errs) > 0 {
			res.IntegrityErrors = errs
			for _, err := range errs {
				log.Error("catalog integrity", zap.String("problem", e.Name), zap.Error(err))
			}
			continue
		}
		points, err := probePoints(e.Problem)
		if err != nil {
			res.IntegrityErrors = append(res.IntegrityErrors, err)
			log.Error("catalog integrity", zap.String("problem", e.Name), zap.Error(err))
			continue
		}
		for _, pt := range points {
			tasks = append(tasks, task{seq: len(tasks), entry: i, point: pt.Point, x: pt.x})
		}
	}

	var (
		mu       sync.Mutex
		outcomes = make([]outcome, 0, len(tasks))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for _, tk := range tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := checkPoint(entries[tk.entry], tk, &o)
			mu.Lock()
			outcomes = append(outcomes, out)
			mu.Unlock()

			return nil
		})
	}
	runErr := g.Wait()
	if runErr == nil {
		runErr = ctx.Err()
	}

	slices.SortFunc(outcomes, func(a, b outcome) int { return cmp.Compare(a.seq, b.seq) })
	for _, out := range outcomes {
		res := &report.Results[out.entry]
		switch {
		case out.checked:
			res.Checked++
		case len(out.skips) > 0:
			res.Skipped++
		}
		res.Skips = append(res.Skips, out.skips...)
		res.Discrepancies = append(res.Discrepancies, out.discrepancies...)
		res.IntegrityErrors = append(res.IntegrityErrors, out.integrity...)
	}

	checked, skipped, disc, integ := report.Totals()
	log.Info("validation finished",
		zap.Int("problems", len(report.Results)),
		zap.Int("tasks", len(tasks)),
		zap.Int("checked", checked),
		zap.Int("skipped", skipped),
		zap.Int("discrepancies", disc),
		zap.Int("integrity_errors", integ),
		zap.Bool("passed", report.Passed()),
		zap.Duration("elapsed", time.Since(start)),
	)
	if runErr != nil {
		return report, fmt.Errorf("validate.Run: %w", runErr)
	}

	return report, nil
}

// selectEntries returns the named entries in registry order, or all of them.
func selectEntries(reg *registry.Registry, names []string) ([]registry.Entry, error) {
	all := reg.All()
	if len(names) == 0 {
		return all, nil
	}
	idx := make([]int, 0, len(names))
	for _, name := range names {
		i := reg.Index(name)
		if i < 0 {
			return nil, fmt.Errorf("problem %q: %w", name, registry.ErrNotFound)
		}
		idx = append(idx, i)
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)
	out := make([]registry.Entry, len(idx))
	for k, i := range idx {
		out[k] = all[i]
	}

	return out, nil
}

// checkStructure verifies the coordinate pattern: its length, its index
// ranges and its stability across calls.
func checkStructure(p problem.Problem) []error {
	var errs []error
	n, nnz := p.Dimension(), p.JacobianNnz()
	if n <= 0 {
		return []error{fmt.Errorf("%s: dimension %d: %w", p.Name(), n, sparse.ErrBadDimension)}
	}
	if nnz < 0 {
		return []error{fmt.Errorf("%s: JacobianNnz=%d: %w", p.Name(), nnz, sparse.ErrPatternMismatch)}
	}

	first, err := problem.Pattern(p)
	if err != nil {
		return []error{fmt.Errorf("%s: pattern: %w", p.Name(), err)}
	}
	if err = first.Validate(n); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	second, err := problem.Pattern(p)
	if err != nil {
		errs = append(errs, fmt.Errorf("%s: pattern: %w", p.Name(), err))
	} else if !slices.Equal(first, second) {
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), ErrUnstablePattern))
	}

	return errs
}

type probePoint struct {
	Point
	x []float64
}

// probePoints lists initial points first, then exact solutions.
func probePoints(p problem.Problem) ([]probePoint, error) {
	inits, err := problem.InitialPoints(p)
	if err != nil {
		return nil, fmt.Errorf("%s: initial points: %w", p.Name(), err)
	}
	exacts, err := problem.Exacts(p)
	if err != nil {
		return nil, fmt.Errorf("%s: exact solutions: %w", p.Name(), err)
	}
	out := make([]probePoint, 0, len(inits)+len(exacts))
	for i, x := range inits {
		out = append(out, probePoint{Point{PointInitial, i}, x})
	}
	for i, x := range exacts {
		out = append(out, probePoint{Point{PointExact, i}, x})
	}

	return out, nil
}

// pointCheck carries the state of one task while it runs.
type pointCheck struct {
	o    *Options
	name string
	p    problem.Problem
	tk   task
	out  outcome
}

func (c *pointCheck) skip(col int, err error) {
	c.out.skips = append(c.out.skips, Skip{Point: c.tk.point, Col: col, Reason: err.Error()})
	c.o.logger.Debug("skip",
		zap.String("problem", c.name),
		zap.Stringer("point", c.tk.point),
		zap.Int("col", col),
		zap.Error(err))
}

func (c *pointCheck) defect(err error) {
	c.out.integrity = append(c.out.integrity, fmt.Errorf("%s at %s: %w", c.name, c.tk.point, err))
	c.o.logger.Error("catalog integrity",
		zap.String("problem", c.name),
		zap.Stringer("point", c.tk.point),
		zap.Error(err))
}

func (c *pointCheck) mismatch(d Discrepancy) {
	c.out.discrepancies = append(c.out.discrepancies, d)
	c.o.logger.Warn("discrepancy",
		zap.String("problem", d.Problem),
		zap.String("kind", string(d.Kind)),
		zap.Stringer("point", d.Point),
		zap.Int("row", d.Row),
		zap.Int("col", d.Col),
		zap.Float64("analytic", d.Analytic),
		zap.Float64("estimate", d.Estimate))
}

// domainOrDefect routes err: domain sentinels become skips, anything else is
// an integrity error. It reports whether err was nil.
func (c *pointCheck) domainOrDefect(col int, err error) bool {
	switch problem.Classify(err) {
	case problem.StatusOK:
		return true
	case problem.StatusInadmissible, problem.StatusUndefined:
		c.skip(col, err)
	default:
		c.defect(err)
	}

	return false
}

// checkPoint runs the residual, Jacobian and (optional) descent checks of
// one task. The Jacobian check compares every cell of the assembled matrix,
// including undeclared zeros, with a central-difference estimate.
func checkPoint(e registry.Entry, tk task, o *Options) outcome {
	c := &pointCheck{o: o, name: e.Name, p: e.Problem, tk: tk, out: outcome{seq: tk.seq, entry: tk.entry}}
	p, x := c.p, tk.x
	n := p.Dimension()

	if !c.domainOrDefect(-1, p.CheckAdmissible(x)) {
		return c.out
	}
	f, _, err := problem.EvaluateChecked(p, x)
	if !c.domainOrDefect(-1, err) {
		return c.out
	}
	values, _, err := problem.JacobianChecked(p, x)
	if !c.domainOrDefect(-1, err) {
		return c.out
	}
	pattern, err := problem.Pattern(p)
	if err != nil {
		c.defect(err)
		return c.out
	}
	jac, err := sparse.Assemble(n, pattern, values)
	if err != nil {
		c.defect(err)
		return c.out
	}
	c.out.checked = true

	if tk.point.Kind == PointExact {
		worst := 0
		for i := range f {
			if math.Abs(f[i]) > math.Abs(f[worst]) {
				worst = i
			}
		}
		if math.Abs(f[worst]) > o.residualTol {
			c.mismatch(Discrepancy{Problem: c.name, Kind: KindResidual, Point: tk.point,
				Row: worst, Col: -1, Analytic: f[worst]})
		}
	}

	analytic, err := jac.ToDense()
	if err == nil {
		err = matrix.ValidateSquare(analytic)
	}
	if err != nil {
		c.defect(err)
		return c.out
	}
	estimate, err := matrix.NewDense(n, n)
	if err != nil {
		c.defect(err)
		return c.out
	}
	for j := 0; j < n; j++ {
		if !c.compareColumn(analytic, estimate, j) {
			return c.out
		}
	}
	if len(c.out.discrepancies) > 0 && n <= maxLoggedDense {
		o.logger.Debug("jacobian comparison",
			zap.String("problem", c.name),
			zap.Stringer("point", tk.point),
			zap.Stringer("analytic", analytic),
			zap.Stringer("estimate", estimate))
	}

	if o.descentProbe && tk.point.Kind == PointInitial {
		c.descent()
	}

	return c.out
}

// compareColumn checks column j of the assembled Jacobian against central
// differences and records the estimates in estimate. A cell that disagrees
// at the configured step is retried once with the step scaled by
// retryStepFactor and reported only if it disagrees again. It returns false
// after an integrity error.
func (c *pointCheck) compareColumn(analytic, estimate *matrix.Dense, j int) bool {
	o, x, n := c.o, c.tk.x, c.p.Dimension()
	col, err := CentralDifference(c.p, x, j, o.stepScale, o.noiseFactor)
	if !c.domainOrDefect(j, err) {
		return true
	}
	var (
		wide    *Column
		retried bool
	)
	for i := 0; i < n; i++ {
		a, err := analytic.At(i, j)
		if err != nil {
			c.defect(err)
			return false
		}
		est := col.Est[i]
		if !Agrees(a, est, o.relTol, o.absTol, col.Noise[i]) {
			if !retried {
				retried = true
				if wide, err = CentralDifference(c.p, x, j, o.stepScale*retryStepFactor, o.noiseFactor); err != nil {
					wide = nil
				}
			}
			if wide == nil || !Agrees(a, wide.Est[i], o.relTol, o.absTol, wide.Noise[i]) {
				c.mismatch(Discrepancy{Problem: c.name, Kind: KindJacobian, Point: c.tk.point,
					Row: i, Col: j, Analytic: a, Estimate: est})
			} else {
				est = wide.Est[i]
			}
		}
		if err = estimate.Set(i, j, est); err != nil {
			c.defect(err)
			return false
		}
	}

	return true
}

// descent solves one Newton step and requires ‖F‖ to decrease along it.
func (c *pointCheck) descent() {
	s, err := lusolve.NewtonStep(c.p, c.tk.x)
	switch {
	case err == nil:
	case errors.Is(err, lusolve.ErrNoDescent):
		c.mismatch(Discrepancy{Problem: c.name, Kind: KindDescent, Point: c.tk.point,
			Row: -1, Col: -1, Analytic: s.Norm0, Estimate: s.NormT})
	case errors.Is(err, lusolve.ErrSingular):
		c.skip(-1, err)
	default:
		c.domainOrDefect(-1, err)
	}
}
