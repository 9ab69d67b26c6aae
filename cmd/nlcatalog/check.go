// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nlcatalog/validate"
)

// errCheckFailed makes the process exit non-zero after the report has been
// printed.
var errCheckFailed = errors.New("nlcatalog: check failed")

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [NAME...]",
		Short: "Check analytic Jacobians and exact solutions (all entries by default)",
		Long: `check compares every assembled Jacobian cell with a central difference at
every initial point and exact solution, and verifies the residual at exact
solutions. The exit status is non-zero when any entry fails.`,
		RunE: a.runCheck,
	}
	f := cmd.Flags()
	f.Int("workers", validate.DefaultWorkers, "concurrent checks")
	f.Float64("rel-tol", validate.DefaultRelTol, "relative tolerance")
	f.Float64("abs-tol", validate.DefaultAbsTol, "absolute tolerance")
	f.Float64("residual-tol", validate.DefaultResidualTol, "bound on |F(x*)|_inf")
	f.Float64("step-scale", validate.DefaultStepScale, "finite-difference step multiplier")
	f.Float64("noise-factor", validate.DefaultNoiseFactor, "rounding allowance factor")
	f.Bool("descent", validate.DefaultDescentProbe, "also probe the Newton direction at initial points")
	f.StringP("format", "f", formatText, "report format: text or yaml")
	for key, flag := range map[string]string{
		"check.workers":       "workers",
		"check.rel_tol":       "rel-tol",
		"check.abs_tol":       "abs-tol",
		"check.residual_tol":  "residual-tol",
		"check.step_scale":    "step-scale",
		"check.noise_factor":  "noise-factor",
		"check.descent_probe": "descent",
		"check.format":        "format",
	} {
		mustBind(a.v, key, f.Lookup(flag))
	}

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	cc := a.cfg.Check
	if len(args) > 0 {
		cc.Problems = args
	}
	report, err := validate.Run(cmd.Context(), a.reg, cc.options(a.logger)...)
	if err != nil {
		return err
	}

	switch cc.Format {
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err = enc.Encode(report); err != nil {
			return err
		}
		if err = enc.Close(); err != nil {
			return err
		}
	default:
		fmt.Fprint(a.out, report.String())
		for _, d := range report.Discrepancies() {
			fmt.Fprintf(a.out, "  %s\n", d)
		}
		for _, res := range report.Results {
			for _, ie := range res.IntegrityErrors {
				fmt.Fprintf(a.out, "  %s: %v\n", res.Name, ie)
			}
		}
	}
	if !report.Passed() {
		return errCheckFailed
	}

	return nil
}
