// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every catalog entry with its dimension and pattern length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tN\tNNZ\tTITLE")
			for _, e := range a.reg.All() {
				p := e.Problem
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", e.Name, p.Dimension(), p.JacobianNnz(), p.Name())
			}

			return tw.Flush()
		},
	}
}
