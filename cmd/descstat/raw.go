// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/report"
	"github.com/aclements/go-descstat/stats"
	"github.com/spf13/cobra"
)

func newRawCmd(a *app) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "raw [number...]",
		Short: "Summarize a sample of numbers",
		Long: `raw prints the summary statistics of a sample, the sorted sample,
and a kernel density estimate of its distribution.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSample(cmd, args, example)
			if err != nil {
				return err
			}
			return a.raw(cmd, s)
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "Use the built-in example sample")
	return cmd
}

func (a *app) raw(cmd *cobra.Command, s stats.Sample) error {
	sum, err := stats.Summarize(s)
	if err != nil {
		return err
	}
	a.log.WithField("n", sum.N).Debug("summarized sample")

	f := a.conf.Formatter()
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, report.StatusOK(f.Locale, sum.N))
	fmt.Fprintln(w)
	if err := report.WriteSummary(w, f, sum); err != nil {
		return err
	}
	if err := report.WriteSorted(w, f, sum.Sorted); err != nil {
		return err
	}
	fmt.Fprintln(w)

	spec, err := chart.Density(s)
	if err != nil {
		return err
	}
	report.LabelChart(f.Locale, spec)
	c, err := chart.Terminal{}.Render(spec)
	if err != nil {
		return err
	}
	defer c.Destroy()
	_, err = c.WriteTo(w)
	return err
}
