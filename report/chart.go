// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import "github.com/aclements/go-descstat/chart"

var (
	phIndex          = phrase{"Index (1..n)", "Índice (1..n)"}
	phAxisValue      = phrase{"Value", "Valor"}
	phFrequency      = phrase{"Frequency", "Frequência"}
	phAxisCumulative = phrase{"Cumulative frequency", "Frequência acumulada"}
	phDensity        = phrase{"Density", "Densidade"}
	phAxisMidpoint   = phrase{"Class midpoint (xi)", "Ponto médio (xi)"}
)

// LabelChart sets the title and axis names of spec in locale l.
func LabelChart(l Locale, spec *chart.Spec) {
	spec.Title = ChartTitle(l, string(spec.Kind))
	x, y := phrase{}, phFrequency
	switch spec.Kind {
	case chart.KindPie:
		y = phrase{}
	case chart.KindScatter:
		x, y = phIndex, phAxisValue
	case chart.KindDensity:
		x, y = phAxisValue, phDensity
	case chart.KindPolygon:
		x = phAxisMidpoint
	case chart.KindOgive:
		y = phAxisCumulative
	}
	spec.XName, spec.YName = l.say(x), l.say(y)
}
