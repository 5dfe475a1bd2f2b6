// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/aclements/go-descstat/stats"
	"github.com/aclements/go-moremath/scale"
)

const (
	// termWidth is the default plot width in characters.
	termWidth = 70
	// termRows is the default plot height in characters.
	termRows = 4

	plotXMargin = 1
	plotYMargin = 1
)

// Terminal renders charts as Unicode text. Curves and scatter plots
// are drawn in Braille dots, two across and four down per character.
// Bar and pie charts are drawn as horizontal bars.
type Terminal struct {
	// Width is the width of the plot area in characters. Zero
	// means 70.
	Width int

	// Rows is the height of dot plots in characters. Zero means
	// 4.
	Rows int
}

func (t Terminal) width() int {
	if t.Width <= 0 {
		return termWidth
	}
	return t.Width
}

func (t Terminal) rows() int {
	if t.Rows <= 0 {
		return termRows
	}
	return t.Rows
}

// Render draws spec as text.
func (t Terminal) Render(spec *Spec) (Chart, error) {
	if spec.empty() {
		return nil, ErrNoData
	}
	var buf bytes.Buffer
	fmt.Fprintln(&buf, spec.title())
	var err error
	switch spec.Kind.form() {
	case formBars, formPie:
		err = t.fprintBars(&buf, spec)
	default:
		err = t.fprintPlot(&buf, spec)
	}
	if err != nil {
		return nil, err
	}
	return newRendered(spec.Kind, "txt", buf.Bytes()), nil
}

func (t Terminal) fprintBars(w io.Writer, spec *Spec) error {
	labelWidth := 0
	for _, l := range spec.Labels {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}
	barWidth := max(t.width()-labelWidth-12, 10)
	_, hi := stats.Bounds(spec.Values)
	total := 0.0
	for _, v := range spec.Values {
		total += v
	}

	for i, v := range spec.Values {
		n := 0
		if hi > 0 {
			n = int(math.Round(v / hi * float64(barWidth)))
		}
		_, err := fmt.Fprintf(w, "%-*s │%s %g", labelWidth, spec.Labels[i], strings.Repeat("█", n), v)
		if err == nil && spec.Kind.form() == formPie && total > 0 {
			_, err = fmt.Fprintf(w, " (%.1f%%)", v/total*100)
		}
		if err == nil {
			_, err = fmt.Fprintln(w)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// makeScale creates a linear scale from [x1, x2) to [y1, y2).
func makeScale(x1, x2 float64, y1, y2 int) scale.QQ {
	return scale.QQ{
		Src:  &scale.Linear{Min: x1, Max: x2, Clamp: true},
		Dest: &scale.Linear{Min: float64(y1), Max: float64(y2) - 1e-10},
	}
}

// image is a dot bitmap indexed by [x][y].
type image [][]bool

func newImage(width, height int) image {
	img := make(image, width)
	for i := range img {
		img[i] = make([]bool, height)
	}
	return img
}

func (img image) set(x, y float64) {
	xi, yi := int(x), int(y)
	if xi >= 0 && xi < len(img) && yi >= 0 && yi < len(img[xi]) {
		img[xi][yi] = true
	}
}

// line sets the dots from (x0, y0) to (x1, y1).
func (img image) line(x0, y0, x1, y1 float64) {
	n := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		img.set(x0+f*(x1-x0), y0+f*(y1-y0))
	}
}

// A tick is a labeled mark on the X axis at dot column pos.
type tick struct {
	pos   int
	label string
}

func (t Terminal) fprintPlot(w io.Writer, spec *Spec) error {
	pts := spec.Points
	var labels []string
	if spec.Kind.form() == formLine {
		pts = make([]Point, len(spec.Values))
		for i, v := range spec.Values {
			pts[i] = Point{float64(i), v}
		}
		labels = spec.Labels
	}
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}

	width, height := t.width()*2, t.rows()*4
	xl, xh := stats.Bounds(xs)
	yl, yh := stats.Bounds(ys)
	if yl > 0 && (spec.Kind.form() != formPoints || yl-(yh-yl)*0.1 <= 0) {
		yl = 0
	}
	xscale := makeScale(xl, xh, plotXMargin, width-plotXMargin)
	yscale := makeScale(yh, yl, plotYMargin, height-plotYMargin)

	// Render the points to an image.
	img := newImage(width+2, height)
	var px, py float64
	for i, p := range pts {
		x, y := xscale.Map(p.X), yscale.Map(p.Y)
		if i > 0 && spec.Kind.form() != formPoints {
			img.line(px, py, x, y)
		} else {
			img.set(x, y)
		}
		px, py = x, y
	}

	// Render Y axis.
	ypos := width
	for y := plotYMargin; y < height-plotYMargin; y++ {
		img[ypos][y] = true
	}
	img[ypos+1][plotYMargin] = true
	img[ypos+1][height-1-plotYMargin] = true

	trail := make([]string, (height+3)/4)
	trail[0] = fmt.Sprintf(" %.4g", yh)
	trail[len(trail)-1] = fmt.Sprintf(" %.4g", yl)
	if err := fprintImage(w, img, trail); err != nil {
		return err
	}

	var ticks []tick
	if labels != nil {
		for i, l := range labels {
			ticks = append(ticks, tick{int(xscale.Map(float64(i))), l})
		}
	} else {
		major, _ := xscale.Src.Ticks(scale.TickOptions{Max: 3})
		for _, v := range major {
			ticks = append(ticks, tick{int(xscale.Map(v)), fmt.Sprintf("%g", v)})
		}
	}
	return fprintAxis(w, width, ticks)
}

// fprintAxis prints an X axis width dots wide with a mark and a label
// at each tick.
func fprintAxis(w io.Writer, width int, ticks []tick) error {
	img := make(image, width)
	for i := range img {
		if i < plotXMargin || i >= width-plotXMargin {
			img[i] = make([]bool, 2)
		} else {
			img[i] = []bool{true, false}
		}
	}
	lpos := make([]int, len(ticks))
	for i, t := range ticks {
		img[t.pos][1] = true
		n := utf8.RuneCountInString(t.label)
		lpos[i] = min(max(t.pos/2-n/2, 0), (width+1)/2-n)
	}
	if err := fprintImage(w, img, []string{""}); err != nil {
		return err
	}
	curpos := 0
	for i, t := range ticks {
		gap := lpos[i] - curpos
		if i > 0 {
			gap = max(gap, 1)
		}
		if _, err := fmt.Fprintf(w, "%*s%s", gap, "", t.label); err != nil {
			return err
		}
		curpos += gap + utf8.RuneCountInString(t.label)
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

func fprintImage(w io.Writer, img image, trail []string) error {
	var x, y int
	bit := func(ox, oy int) byte {
		if x+ox < len(img) && y+oy < len(img[x+ox]) && img[x+ox][y+oy] {
			return 1
		}
		return 0
	}

	maxTrail := 0
	for _, trail1 := range trail {
		maxTrail = max(maxTrail, len(trail1))
	}
	buf := make([]byte, 3*(len(img)+1)/2+maxTrail+1)
	for y = 0; y < len(img[0]); y += 4 {
		bufpos := 0
		for x = 0; x < len(img); x += 2 {
			// Grab the 2x4 cell of pixels and encode it
			// into a byte with the following bit layout:
			//  0 3
			//  1 4
			//  2 5
			//  6 7
			cell := bit(0, 0)<<0 | bit(1, 0)<<3
			cell |= bit(0, 1)<<1 | bit(1, 1)<<4
			cell |= bit(0, 2)<<2 | bit(1, 2)<<5
			cell |= bit(0, 3)<<6 | bit(1, 3)<<7
			// Translate cell into the Unicode Braille space.
			r := 0x2800 + rune(cell)
			bufpos += utf8.EncodeRune(buf[bufpos:], r)
		}
		bufpos += copy(buf[bufpos:], trail[y/4])
		buf[bufpos] = '\n'
		if _, err := w.Write(buf[:bufpos+1]); err != nil {
			return err
		}
	}
	return nil
}
