// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// A Renderer draws a Spec.
type Renderer interface {
	Render(spec *Spec) (Chart, error)
}

// A Chart is a rendered chart. Once destroyed, a Chart releases its
// image and can no longer be written.
type Chart interface {
	Kind() Kind

	// Ext is the file name extension of the chart's format,
	// without a dot.
	Ext() string

	// WriteTo writes the rendered chart to w.
	WriteTo(w io.Writer) (int64, error)

	Destroy()
}

// ErrDestroyed is returned when writing a Chart that has been
// destroyed.
var ErrDestroyed = errors.New("chart has been destroyed")

// rendered is a Chart held in memory.
type rendered struct {
	kind Kind
	ext  string

	mu   sync.Mutex
	data []byte
}

func newRendered(kind Kind, ext string, data []byte) *rendered {
	return &rendered{kind: kind, ext: ext, data: data}
}

func (c *rendered) Kind() Kind {
	return c.kind
}

func (c *rendered) Ext() string {
	return c.ext
}

func (c *rendered) WriteTo(w io.Writer) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return 0, ErrDestroyed
	}
	n, err := w.Write(c.data)
	return int64(n), err
}

func (c *rendered) Destroy() {
	c.mu.Lock()
	c.data = nil
	c.mu.Unlock()
}
