// SPDX-License-Identifier: MIT

// Package validate: functional configuration for the checking harness.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions, which resolves the user options over the defaults.
package validate

import (
	"math"
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRelTol is rtol in |a - fd| <= atol + rtol·max(|a|,|fd|) + noise.
	DefaultRelTol = 1e-5

	// DefaultAbsTol is atol in the same bound.
	DefaultAbsTol = 1e-6

	// DefaultResidualTol bounds ‖F(x*)‖∞ at tabulated exact solutions.
	DefaultResidualTol = 1e-8

	// DefaultStepScale multiplies the central-difference step
	// h_j = sqrt(eps)·max(1,|x_j|).
	DefaultStepScale = 1.0

	// DefaultNoiseFactor is c in the rounding allowance
	// c·eps·(|f(x+h)| + |f(x-h)|)/(2h) added per row.
	DefaultNoiseFactor = 100.0

	// DefaultDescentProbe enables the Newton descent probe at initial points.
	DefaultDescentProbe = false
)

// DefaultWorkers is the worker-pool size: one per CPU.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid = "validate: WithWorkers: workers must be >= 1"
	panicTolInvalid     = "validate: tolerance must be finite and non-negative"
	panicStepInvalid    = "validate: WithStepScale: scale must be finite and positive"
	panicNilLogger      = "validate: WithLogger: nil logger"
)

// ---------- Public option type ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workers      int
	relTol       float64
	absTol       float64
	residualTol  float64
	stepScale    float64
	noiseFactor  float64
	descentProbe bool
	names        []string
	logger       *zap.Logger
}

func isBadTol(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) || v < 0 }

// WithWorkers bounds the number of concurrent (problem, point) checks.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithRelTol sets rtol.
func WithRelTol(v float64) Option {
	if isBadTol(v) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.relTol = v }
}

// WithAbsTol sets atol.
func WithAbsTol(v float64) Option {
	if isBadTol(v) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.absTol = v }
}

// WithResidualTol sets the bound on ‖F(x*)‖∞.
func WithResidualTol(v float64) Option {
	if isBadTol(v) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.residualTol = v }
}

// WithNoiseFactor sets c in the rounding allowance; 0 disables it.
func WithNoiseFactor(v float64) Option {
	if isBadTol(v) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.noiseFactor = v }
}

// WithStepScale multiplies every finite-difference step.
func WithStepScale(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.stepScale = s }
}

// WithDescentProbe enables or disables the Newton descent probe: at every
// initial point one step J·dx = -F is solved and the residual must decrease
// along dx. Singular Jacobians skip the probe.
func WithDescentProbe(on bool) Option {
	return func(o *Options) { o.descentProbe = on }
}

// WithProblems restricts the run to the named registry entries, in registry
// order. Unknown names make Run fail with registry.ErrNotFound. An empty
// list means every entry.
func WithProblems(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

// WithLogger routes harness logs to l. Skips go to Debug, discrepancies to
// Warn and the run summary to Info.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		relTol:       DefaultRelTol,
		absTol:       DefaultAbsTol,
		residualTol:  DefaultResidualTol,
		stepScale:    DefaultStepScale,
		noiseFactor:  DefaultNoiseFactor,
		descentProbe: DefaultDescentProbe,
		logger:       zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}

	return o
}
