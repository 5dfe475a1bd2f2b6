// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/aclements/go-descstat/input"
	"github.com/aclements/go-descstat/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const exampleSample = "7, 8, 5, 9, 10, 10, 6, 6, 8, 9, 7, 7, 5, 6, 10"

var exampleClasses = []stats.Class{
	{Lower: 1, Upper: 2, Frequency: 10},
	{Lower: 3, Upper: 4, Frequency: 20},
	{Lower: 5, Upper: 6, Frequency: 30},
}

// readSample returns the sample given as args, or read from standard
// input if there are no args.
func readSample(cmd *cobra.Command, args []string, example bool) (stats.Sample, error) {
	text := exampleSample
	if !example {
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return stats.Sample{}, errors.Wrap(err, "reading standard input")
			}
			text = string(data)
		}
	}
	return stats.Sample{Xs: input.ParseSample(text)}, nil
}

// classFlags are the flags that give grouped classes.
type classFlags struct {
	specs   []string
	file    string
	example bool
}

func (cf *classFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&cf.specs, "class", "c", nil, "Class as `LI:LS:FI` (lower bound, upper bound, frequency); repeatable")
	fs.StringVarP(&cf.file, "file", "f", "", "Read classes from a CSV `file` with rows LI,LS,FI (- for standard input)")
	fs.BoolVar(&cf.example, "example", false, "Use the built-in example data")
}

// classes returns the classes given by --class followed by those in
// --file.
func (cf *classFlags) classes(cmd *cobra.Command) ([]stats.Class, error) {
	if cf.example {
		return append([]stats.Class(nil), exampleClasses...), nil
	}
	var classes []stats.Class
	for _, spec := range cf.specs {
		c, err := input.ParseClassSpec(spec)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	if cf.file == "" {
		return classes, nil
	}

	var r io.Reader = cmd.InOrStdin()
	if cf.file != "-" {
		f, err := os.Open(cf.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	more, err := input.ReadClasses(r)
	if err != nil {
		return nil, errors.Wrap(err, cf.file)
	}
	return append(classes, more...), nil
}
