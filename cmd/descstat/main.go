// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// descstat computes descriptive statistics of a sample of numbers or
// of a frequency distribution grouped into classes, draws charts of
// them, and serves a calculator over HTTP.
//
// Usage:
//
//	descstat raw [number...]
//	descstat grouped [--class LI:LS:FI...] [--file F]
//	descstat chart KIND [number...]
//	descstat serve [--listen ADDR]
//
// Numbers may be separated by spaces, commas or semicolons, and may
// use a decimal comma when the separators are spaces or semicolons.
// Without numbers on the command line, raw and chart read standard
// input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-descstat/config"
	"github.com/aclements/go-descstat/report"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the descstat version, set at link time.
var Version = "devel"

// app is the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	conf    *config.Config
	log     *logrus.Logger
	logFile io.Closer
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: config.New(), log: logrus.New()}
	root := &cobra.Command{
		Use:   "descstat",
		Short: "Descriptive statistics for raw and grouped data",
		Long: `descstat summarizes a sample (mean, median, modes, variance,
standard deviation, coefficient of variation, range) or a frequency
distribution given as classes, and draws histograms, frequency polygons,
ogives and other charts of them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Configuration file (default is descstat.toml in . or ~/.config/descstat)")
	pf.String("locale", "en", "Language and number format: en or pt-BR")
	pf.Int("decimals", 2, "Decimal places in reports")
	pf.Bool("verbose", false, "Print detailed execution info")
	pf.String("log-file", "", "Write log messages to this file")

	root.AddCommand(
		newRawCmd(a),
		newGroupedCmd(a),
		newChartCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// setup resolves the configuration once flags are parsed.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.Read(a.v, a.cfgFile); err != nil {
		return err
	}
	conf, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.conf = conf
	a.logFile = config.SetupLogging(a.log, conf.Log)
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.WithField("file", f).Debug("using config file")
	}
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// message returns the text to show the user for err. Wrapped input
// errors are followed by their details, such as the offending line.
func (a *app) message(err error) string {
	l := report.English
	if a.conf != nil {
		l = a.conf.Locale
	}
	msg := report.Message(l, err)
	if report.IsInputError(err) && errors.Cause(err) != err {
		msg += " (" + err.Error() + ")"
	}
	return msg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the descstat version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "descstat %s\n", Version)
		},
	}
}

func main() {
	root, a := newRootCmd()
	err := root.Execute()
	if err != nil {
		a.log.WithError(err).Debug("command failed")
	}
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, a.message(err))
		os.Exit(1)
	}
}
