// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotShown is returned when exporting a kind with no current
// chart.
var ErrNotShown = errors.New("chart has not been drawn")

// A Board holds the current chart of each kind. Showing a chart
// destroys the chart it replaces. A Board is safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	charts map[Kind]Chart
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{charts: make(map[Kind]Chart)}
}

// Show makes c the current chart of its kind.
func (b *Board) Show(c Chart) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if old := b.charts[c.Kind()]; old != nil && old != c {
		old.Destroy()
	}
	b.charts[c.Kind()] = c
}

// Get returns the current chart of kind k.
func (b *Board) Get(k Kind) (Chart, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, ok := b.charts[k]
	return c, ok
}

// Kinds returns the kinds that have a current chart, sorted by name.
func (b *Board) Kinds() []Kind {
	b.mu.Lock()
	defer b.mu.Unlock()
	kinds := make([]Kind, 0, len(b.charts))
	for k := range b.charts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Clear destroys and removes the charts of the given kinds, or of
// every kind if none are given.
func (b *Board) Clear(kinds ...Kind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(kinds) == 0 {
		for k := range b.charts {
			kinds = append(kinds, k)
		}
	}
	for _, k := range kinds {
		if c := b.charts[k]; c != nil {
			c.Destroy()
			delete(b.charts, k)
		}
	}
}

// Export writes the current chart of kind k to dir, in a file named
// after the kind, and returns the file's path. If writing fails, the
// file is removed.
func (b *Board) Export(k Kind, dir string) (string, error) {
	c, ok := b.Get(k)
	if !ok {
		return "", errors.Wrapf(ErrNotShown, "%s", k)
	}
	path := filepath.Join(dir, string(k)+"."+c.Ext())
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	_, err = c.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", errors.Wrapf(err, "exporting %s", k)
	}
	return path, nil
}
