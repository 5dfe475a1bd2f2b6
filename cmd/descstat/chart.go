// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/aclements/go-descstat/chart"
	"github.com/aclements/go-descstat/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newChartCmd(a *app) *cobra.Command {
	var (
		cf   classFlags
		term bool
	)
	var kinds []string
	for _, k := range append(append([]chart.Kind{}, chart.RawKinds...), chart.GroupedKinds...) {
		kinds = append(kinds, string(k))
	}
	cmd := &cobra.Command{
		Use:   "chart KIND [number...]",
		Short: "Draw a chart",
		Long: `chart draws a chart and writes it as KIND.png to the export
directory, or as text to standard output with --term.

Chart kinds for a sample: ` + strings.Join(kinds[:len(chart.RawKinds)], ", ") + `.
The sample is read like raw reads it.

Chart kinds for grouped classes: ` + strings.Join(kinds[len(chart.RawKinds):], ", ") + `.
The classes are given like grouped takes them.`,
		Example: `  descstat chart histogram 7 8 5 9 10
  descstat chart ogive -c 1:2:10 -c 3:4:20 --out /tmp
  descstat chart density --example --term`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := chart.ParseKind(args[0])
			if err != nil {
				return err
			}

			var spec *chart.Spec
			if kind.Grouped() {
				if len(args) > 1 {
					return errors.Errorf("%s charts take classes, not numbers", kind)
				}
				g, err := a.grouped(cmd, &cf)
				if err != nil {
					return err
				}
				if spec, err = chart.FromGrouped(kind, g); err != nil {
					return err
				}
			} else {
				s, err := readSample(cmd, args[1:], cf.example)
				if err != nil {
					return err
				}
				if spec, err = chart.FromSample(kind, s); err != nil {
					return err
				}
			}
			report.LabelChart(a.conf.Locale, spec)

			if term {
				c, err := chart.Terminal{}.Render(spec)
				if err != nil {
					return err
				}
				defer c.Destroy()
				_, err = c.WriteTo(cmd.OutOrStdout())
				return err
			}

			c, err := a.conf.Raster().Render(spec)
			if err != nil {
				return err
			}
			board := chart.NewBoard()
			defer board.Clear()
			board.Show(c)
			path, err := board.Export(kind, a.conf.ExportDir)
			if err != nil {
				return err
			}
			a.log.WithField("path", path).Info("exported chart")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cf.register(cmd.Flags())
	cmd.Flags().BoolVar(&term, "term", false, "Draw the chart as text on standard output")
	cmd.Flags().StringP("out", "o", ".", "Export `directory`")
	return cmd
}
