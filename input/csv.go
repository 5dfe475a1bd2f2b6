// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"bytes"
	"io"

	"github.com/aclements/go-descstat/stats"
	"github.com/gwenn/yacr"
	"github.com/pkg/errors"
)

// ReadClasses reads one class per CSV row of lower bound, upper bound
// and frequency.
//
// The separator is a tab or semicolon if the first non-comment line
// contains one, and a comma otherwise. A first row that does not start
// with a number is taken as a header and skipped. Blank lines and
// lines starting with '#' are ignored. Errors report the 1-based line
// number.
func ReadClasses(r io.Reader) ([]stats.Class, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	cr := yacr.NewReader(bytes.NewReader(data), separator(data), true, false)
	cr.Trim = true
	cr.Comment = '#'

	var classes []stats.Class
	for first := true; ; first = false {
		var row [3]string
		n, err := cr.ScanRecord(&row[0], &row[1], &row[2])
		// Every row ends in a newline, so the row just read is
		// on the line before the reader's current line.
		line := cr.LineNumber() - 1
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if n == 0 {
			break
		}
		if first {
			if _, ok := parseNumber(row[0]); !ok {
				continue
			}
		}
		if n != 3 {
			return nil, errors.Wrapf(stats.ErrNonFinite, "line %d: want 3 fields, got %d", line, n)
		}
		c, err := ParseClass(row[0], row[1], row[2])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// separator picks the separator from the first line that is neither
// blank nor a comment.
func separator(data []byte) byte {
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		switch {
		case bytes.IndexByte(line, '\t') >= 0:
			return '\t'
		case bytes.IndexByte(line, ';') >= 0:
			return ';'
		}
		break
	}
	return ','
}
