// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aclements/go-descstat/stats"
	"github.com/pkg/errors"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// A Format is an image format produced by Raster.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	defaultWidth  = 800
	defaultHeight = 480

	// titlePadding leaves room above the canvas for the title.
	titlePadding = 40
)

// Raster renders charts as images using go-chart.
type Raster struct {
	// Width and Height are the image size in pixels. Zero means
	// 800x480.
	Width, Height int

	// Format is the image format. The zero value means PNG.
	Format Format
}

func (r Raster) size() (int, int) {
	w, h := r.Width, r.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (r Raster) format() Format {
	if r.Format == SVG {
		return SVG
	}
	return PNG
}

func (r Raster) provider() gochart.RendererProvider {
	if r.format() == SVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// Render draws spec.
func (r Raster) Render(spec *Spec) (Chart, error) {
	if spec.empty() {
		return nil, ErrNoData
	}
	var c interface {
		Render(gochart.RendererProvider, io.Writer) error
	}
	switch spec.Kind.form() {
	case formBars:
		c = r.barChart(spec)
	case formPie:
		c = r.pieChart(spec)
	default:
		c = r.xyChart(spec)
	}
	var buf bytes.Buffer
	if err := c.Render(r.provider(), &buf); err != nil {
		return nil, errors.Wrapf(err, "rendering %s chart", spec.Kind)
	}
	return newRendered(spec.Kind, string(r.format()), buf.Bytes()), nil
}

func (r Raster) barChart(spec *Spec) gochart.BarChart {
	w, h := r.size()
	bars := make([]gochart.Value, len(spec.Values))
	for i, v := range spec.Values {
		bars[i] = gochart.Value{Label: spec.Labels[i], Value: v}
	}
	// Split the canvas into one slot per bar, two thirds bar and
	// one third gap.
	slot := (w - 2*titlePadding) / len(bars)
	_, hi := stats.Bounds(spec.Values)
	return gochart.BarChart{
		Title:      spec.title(),
		Width:      w,
		Height:     h,
		Background: gochart.Style{Padding: gochart.Box{Top: titlePadding}},
		BarWidth:   max(1, slot*2/3),
		BarSpacing: max(1, slot/3),
		YAxis: gochart.YAxis{
			Name:  spec.YName,
			Range: &gochart.ContinuousRange{Min: 0, Max: headroom(hi)},
		},
		Bars: bars,
	}
}

func (r Raster) pieChart(spec *Spec) gochart.PieChart {
	w, h := r.size()
	total := 0.0
	for _, v := range spec.Values {
		total += v
	}
	values := make([]gochart.Value, len(spec.Values))
	for i, v := range spec.Values {
		values[i] = gochart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", spec.Labels[i], v/total*100),
			Value: v,
		}
	}
	return gochart.PieChart{
		Title:      spec.title(),
		Width:      w,
		Height:     h,
		Background: gochart.Style{Padding: gochart.Box{Top: titlePadding}},
		Values:     values,
	}
}

func (r Raster) xyChart(spec *Spec) gochart.Chart {
	w, h := r.size()
	var xs, ys []float64
	var ticks []gochart.Tick
	if spec.Kind.form() == formLine {
		for i, v := range spec.Values {
			xs = append(xs, float64(i))
			ys = append(ys, v)
			ticks = append(ticks, gochart.Tick{Value: float64(i), Label: spec.Labels[i]})
		}
	} else {
		for _, p := range spec.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	style := gochart.Style{StrokeWidth: 2}
	xlo, xhi := pad(stats.Bounds(xs))
	ylo, yhi := stats.Bounds(ys)
	switch spec.Kind.form() {
	case formPoints:
		style = gochart.Style{StrokeWidth: gochart.Disabled, DotWidth: 4}
		ylo, yhi = pad(ylo, yhi)
	case formLine:
		style.DotWidth = 3
		xlo, xhi = -0.5, float64(len(xs))-0.5
		ylo, yhi = 0, headroom(yhi)
	case formCurve:
		ylo, yhi = 0, headroom(yhi)
	}

	return gochart.Chart{
		Title:      spec.title(),
		Width:      w,
		Height:     h,
		Background: gochart.Style{Padding: gochart.Box{Top: titlePadding, Left: titlePadding / 2}},
		XAxis: gochart.XAxis{
			Name:  spec.XName,
			Range: &gochart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name:  spec.YName,
			Range: &gochart.ContinuousRange{Min: ylo, Max: yhi},
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Style: style, XValues: xs, YValues: ys},
		},
	}
}

// headroom returns an axis maximum a little above hi, and never zero,
// since go-chart rejects empty ranges.
func headroom(hi float64) float64 {
	if !(hi > 0) {
		return 1
	}
	return hi * 1.1
}

// pad widens [lo, hi] by 5% on each side, or by 1 if it is empty.
func pad(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	d := (hi - lo) * 0.05
	return lo - d, hi + d
}
