// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"

	"github.com/katalvlaran/nlcatalog/problem"
	"github.com/katalvlaran/nlcatalog/registry"
)

// entry pairs a registry key with its factory.
type entry struct {
	key     string
	factory registry.Factory
}

// single adapts a constructor that cannot fail.
func single[P problem.Problem](mk func() P) registry.Factory {
	return func() (problem.Problem, error) { return mk(), nil }
}

// sized registers one entry per dimension under "slug/n=<n>".
func sized[P problem.Problem](slug string, mk func(n int) (P, error), dims ...int) []entry {
	out := make([]entry, 0, len(dims))
	for _, n := range dims {
		out = append(out, entry{
			key:     fmt.Sprintf("%s/n=%d", slug, n),
			factory: func() (problem.Problem, error) { return mk(n) },
		})
	}

	return out
}

// entries is the default catalog, in registration order.
func entries() []entry {
	out := []entry{
		{"dennis-schnabel", single(NewDennisSchnabel)},
		{"powell-badly-scaled", single(NewPowellBadlyScaled)},
		{"freudenstein-roth", single(NewFreudensteinRoth)},
		{"himmelblau", single(NewHimmelblau)},
		{"helical-valley", single(NewHelicalValley)},
		{"wood", single(NewWood)},
		{"beale", single(NewBeale)},
	}

	for _, alpha := range []float64{0.1, 0.5} {
		out = append(out, sized(fmt.Sprintf("broyden-tridiagonal/alpha=%g", alpha),
			func(n int) (*BroydenTridiagonal, error) { return NewBroydenTridiagonal(alpha, 1, n) },
			5, 10, 500)...)
	}
	out = append(out, sized("broyden-banded", NewBroydenBanded, 10)...)
	out = append(out, sized("generalized-rosenbrock", NewGeneralizedRosenbrock, 2, 10, 50, 500)...)
	out = append(out, sized("extended-powell-singular", NewExtendedPowellSingular, 4, 40)...)
	out = append(out, sized("discrete-boundary-value", NewDiscreteBoundaryValue, 2, 10, 50, 100, 500)...)
	out = append(out, sized("discrete-integral-equation", NewDiscreteIntegralEquation, 2, 5, 10, 100)...)
	out = append(out, sized("trigonometric", NewTrigonometric, 2, 10, 50)...)
	out = append(out, sized("variably-dimensioned", NewVariablyDimensioned, 5, 10, 50)...)
	out = append(out, sized("brown-almost-linear", NewBrownAlmostLinear, 5, 15, 25)...)

	for _, tau := range []float64{1e2, 1e4} {
		out = append(out, entry{
			key:     fmt.Sprintf("has64/tau=%g", tau),
			factory: func() (problem.Problem, error) { return NewHAS64(tau) },
		})
	}

	out = append(out, sized("logarithmic", NewLogarithmic, 2, 10, 50, 500)...)
	out = append(out, sized("hilbert", NewHilbert, 4, 8, 32, 64)...)
	for _, c := range []float64{0.9, 0.9999} {
		out = append(out, sized(fmt.Sprintf("chandrasekhar/c=%g", c),
			func(n int) (*Chandrasekhar, error) { return NewChandrasekhar(c, n) },
			10, 50)...)
	}
	out = append(out, sized("exponential1", NewExponential1, 2, 10, 50, 500)...)
	out = append(out, sized("exponential2", NewExponential2, 2, 10, 50, 500)...)
	out = append(out, sized("exponential3", NewExponential3, 2, 10, 50, 500)...)

	return out
}

// Register adds every catalog entry to b.
func Register(b *registry.Builder) error {
	for _, e := range entries() {
		if err := b.Register(e.key, e.factory); err != nil {
			return fmt.Errorf("catalog.Register: %w", err)
		}
	}

	return nil
}

// New builds the default catalog registry.
func New() (*registry.Registry, error) {
	b := registry.NewBuilder()
	if err := Register(b); err != nil {
		return nil, err
	}

	return b.Build()
}
