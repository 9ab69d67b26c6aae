// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nlcatalog/lusolve"
)

func (a *app) solveStepCmd() *cobra.Command {
	var point int
	cmd := &cobra.Command{
		Use:   "solve-step NAME",
		Short: "Take one damped Newton step from an initial point",
		Long: `solve-step assembles J(x) at an initial point, solves J·dx = -F(x) with a
sparse LU factorization and halves the step until the residual decreases.
It is a probe of the Jacobian, not a solver.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.reg.Lookup(args[0])
			if err != nil {
				return err
			}
			x := make([]float64, p.Dimension())
			if err = p.InitialPoint(point, x); err != nil {
				return err
			}
			s, err := lusolve.NewtonStep(p, x)
			if s != nil {
				fmt.Fprintf(a.out, "%s (%s) from initial[%d]\n", args[0], p.Name(), point)
				fmt.Fprintf(a.out, "  |F(x)|_2      = %.6e\n", s.Norm0)
				fmt.Fprintf(a.out, "  |dx|_inf      = %.6e\n", lusolve.NormInf(s.Dx))
				fmt.Fprintf(a.out, "  step length t = %g\n", s.T)
				fmt.Fprintf(a.out, "  |F(x+t dx)|_2 = %.6e\n", s.NormT)
				fmt.Fprintf(a.out, "  reduction     = %.6f\n", s.Reduction())
			}

			return err
		},
	}
	cmd.Flags().IntVarP(&point, "point", "p", 0, "initial point index")

	return cmd
}
