// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging configures l as described by c. The returned Closer
// closes the log file, if any.
func SetupLogging(l *logrus.Logger, c Log) io.Closer {
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(c.Level)
	if c.File == "" {
		l.SetOutput(os.Stderr)
		return nopCloser{}
	}
	f := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
	}
	l.SetOutput(f)
	return f
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
