// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-descstat/report"
	"github.com/aclements/go-descstat/stats"
	"github.com/spf13/cobra"
)

func newGroupedCmd(a *app) *cobra.Command {
	var cf classFlags
	cmd := &cobra.Command{
		Use:   "grouped",
		Short: "Summarize a frequency distribution grouped into classes",
		Long: `grouped prints the frequency distribution of a set of classes
(midpoint, bounds, frequency, relative and cumulative frequency) and its
summary statistics, computed from the class midpoints.

Classes may overlap only at their bounds. They are sorted by lower bound.`,
		Example: `  descstat grouped -c 1:2:10 -c 3:4:20 -c 5:6:30
  descstat grouped --file classes.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.grouped(cmd, &cf)
			if err != nil {
				return err
			}
			f := a.conf.Formatter()
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, report.StatusOK(f.Locale, g.N))
			fmt.Fprintln(w)
			return report.WriteGrouped(w, f, g, g.Summarize())
		},
	}
	cf.register(cmd.Flags())
	return cmd
}

// grouped builds the distribution of the classes given by cf.
func (a *app) grouped(cmd *cobra.Command, cf *classFlags) (*stats.Grouped, error) {
	classes, err := cf.classes(cmd)
	if err != nil {
		return nil, err
	}
	g, err := stats.NewGrouped(classes)
	if err != nil {
		return nil, err
	}
	a.log.WithField("classes", len(g.Entries)).WithField("n", g.N).Debug("grouped classes")
	return g, nil
}
