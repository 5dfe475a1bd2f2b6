// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-descstat/stats"
)

var (
	phMeasure     = phrase{"Measure", "Métrica"}
	phValue       = phrase{"Value", "Valor"}
	phPopulation  = phrase{"Population", "Populacional"}
	phSample      = phrase{"Sample", "Amostral"}
	phMean        = phrase{"Mean", "Média"}
	phMedian      = phrase{"Median", "Mediana"}
	phMode        = phrase{"Mode", "Moda"}
	phPopVariance = phrase{"Population variance", "Variância populacional"}
	phVariance    = phrase{"Sample variance", "Variância amostral"}
	phPopStdDev   = phrase{"Population std. dev.", "Desvio padrão populacional"}
	phStdDev      = phrase{"Sample std. dev.", "Desvio padrão amostral"}
	phPopCV       = phrase{"Population CV", "CV populacional"}
	phCV          = phrase{"Sample CV", "CV amostral"}
	phVarianceG   = phrase{"Variance", "Variância"}
	phStdDevG     = phrase{"Std. dev.", "Desvio padrão"}
	phCVG         = phrase{"Coefficient of variation", "Coeficiente de variação"}
	phRange       = phrase{"Range", "Amplitude"}
	phAmpTotal    = phrase{"Total range (max Ls – min Li)", "Amplitude total (Ls máx – Li mín)"}
	phAmpMid      = phrase{"Midpoint range", "Amplitude (pontos médios)"}
	phMinMax      = phrase{"Min / Max", "Mín / Máx"}
	phMedianCI    = phrase{"Median %s CI", "IC %s da mediana"}
	phSorted      = phrase{"Sorted", "Ordenados"}
	phMidpoint    = phrase{"xi (midpoint)", "xi (ponto médio)"}
	phClassCol    = phrase{"Class", "Classe"}
	phCumulative  = phrase{"Fi (cum.)", "Fi (acum.)"}
	phGroupedNote = phrase{
		"Statistics (computed from class midpoints)",
		"Estatísticas (cálculos com base no ponto médio das classes)"}
)

// table accumulates tab-separated rows and reports the first write
// error.
type table struct {
	tw  *tabwriter.Writer
	err error
}

func newTable(w io.Writer) *table {
	return &table{tw: tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)}
}

func (t *table) row(cols ...string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.tw, strings.Join(cols, "\t"))
}

func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.tw.Flush()
}

func (f Formatter) minMax(min, max float64) string {
	return f.Float(min) + " / " + f.Float(max)
}

// WriteSummary writes s to w as a two-column table of measures.
func WriteSummary(w io.Writer, f Formatter, s *stats.Summary) error {
	l := f.Locale
	t := newTable(w)
	t.row(l.say(phMeasure), l.say(phValue))
	t.row(l.say(phMean), f.Value(s.Mean))
	t.row(l.say(phMedian), f.Value(s.Median))
	t.row(l.say(phMode), f.Modes(s.Modes))
	t.row(l.say(phPopVariance), f.Value(s.PopVariance))
	t.row(l.say(phVariance), f.Value(s.Variance))
	t.row(l.say(phPopStdDev), f.Value(s.PopStdDev))
	t.row(l.say(phStdDev), f.Value(s.StdDev))
	t.row(l.say(phPopCV), f.Percent(s.PopCV))
	t.row(l.say(phCV), f.Percent(s.CV))
	t.row(l.say(phRange), f.Value(s.Range))
	t.row("n", f.Int(s.N))
	t.row(l.say(phMinMax), f.minMax(s.Min, s.Max))
	ci := s.MedianCI
	conf := f.Percent(stats.Defined(ci.Confidence * 100))
	t.row(fmt.Sprintf(l.say(phMedianCI), conf), f.Interval(ci.Lo, ci.Hi))
	return t.flush()
}

// WriteSorted writes the sorted sample on one line.
func WriteSorted(w io.Writer, f Formatter, sorted []float64) error {
	parts := make([]string, len(sorted))
	for i, x := range sorted {
		parts[i] = f.Exact(x)
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", f.Locale.say(phSorted), strings.Join(parts, f.listSep()))
	return err
}

// WriteGrouped writes the frequency distribution of g followed by its
// summary s, with population and sample columns.
func WriteGrouped(w io.Writer, f Formatter, g *stats.Grouped, s *stats.GroupedSummary) error {
	l := f.Locale
	t := newTable(w)
	t.row(l.say(phMidpoint), l.say(phClassCol), "fi", "fi / N", l.say(phCumulative))
	for _, e := range g.Entries {
		t.row(
			f.Float(e.Midpoint),
			f.Interval(stats.Defined(e.Lower), stats.Defined(e.Upper)),
			f.Int(e.Frequency),
			f.Percent(stats.Defined(e.Relative*100)),
			f.Int(e.Cumulative),
		)
	}
	if err := t.flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", l.say(phGroupedNote)); err != nil {
		return err
	}
	t = newTable(w)
	t.row(l.say(phMeasure), l.say(phPopulation), l.say(phSample))
	t.row(l.say(phMean), f.Value(s.Mean), Undefined)
	t.row(l.say(phMedian), f.Value(s.Median), Undefined)
	t.row(l.say(phMode), f.Modes(s.Modes), Undefined)
	t.row(l.say(phVarianceG), f.Value(s.PopVariance), f.Value(s.Variance))
	t.row(l.say(phStdDevG), f.Value(s.PopStdDev), f.Value(s.StdDev))
	t.row(l.say(phCVG), f.Percent(s.PopCV), f.Percent(s.CV))
	t.row(l.say(phAmpTotal), f.Value(s.AmplitudeTotal), Undefined)
	t.row(l.say(phAmpMid), f.Value(s.AmplitudeMidpoints), Undefined)
	t.row("n", f.Int(s.N), Undefined)
	t.row(l.say(phMinMax), f.minMax(s.Min, s.Max), Undefined)
	return t.flush()
}
