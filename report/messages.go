// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/aclements/go-descstat/stats"
	"github.com/pkg/errors"
)

// ErrNoGrouped is returned when a grouped chart is requested before
// any grouped data has been calculated.
var ErrNoGrouped = errors.New("grouped data has not been calculated")

var (
	phNoMode = phrase{"No mode", "Sem moda"}
	phOK     = phrase{"OK! %d values analysed.", "OK! %d valores analisados."}
	phClass  = phrase{"Class %d: ", "Classe %d: "}
)

// notices maps each input error to its user notice.
var notices = []struct {
	err error
	phrase
}{
	{stats.ErrEmptySample, phrase{
		"No valid numbers. Check the separators.",
		"Nenhum número válido. Confira separadores."}},
	{stats.ErrNonFinite, phrase{
		"Fill in Li, Ls and fi with valid numbers.",
		"Preencha Li, Ls e fi com números válidos."}},
	{stats.ErrBounds, phrase{
		"Each class must have Ls > Li.",
		"Cada classe deve ter Ls > Li."}},
	{stats.ErrFractionalFrequency, phrase{
		"The frequency (fi) must be a whole number.",
		"A frequência (fi) deve ser um número inteiro."}},
	{stats.ErrNegativeFrequency, phrase{
		"The frequency (fi) cannot be negative.",
		"A frequência (fi) não pode ser negativa."}},
	{stats.ErrNoClasses, phrase{
		"Add at least one class.",
		"Adicione pelo menos uma classe."}},
	{stats.ErrOverlap, phrase{
		"Classes cannot overlap (use contiguous or separate intervals).",
		"As classes não podem se sobrepor (use intervalos contíguos ou separados)."}},
	{stats.ErrZeroTotal, phrase{
		"The sum of the frequencies (N) must be > 0.",
		"A soma das frequências (N) deve ser > 0."}},
	{ErrNoGrouped, phrase{
		"Calculate the grouped data first.",
		"Calcule os agrupados primeiro."}},
}

func notice(err error) (phrase, bool) {
	for _, n := range notices {
		if errors.Is(err, n.err) {
			return n.phrase, true
		}
	}
	return phrase{}, false
}

// IsInputError reports whether err was caused by user input that the
// user can correct, as opposed to an internal failure.
func IsInputError(err error) bool {
	_, ok := notice(err)
	return ok
}

// Message returns the notice to show the user for err in locale l.
// Errors about a specific class name the class by its 1-based row.
// Errors that are not input errors are returned as err.Error().
func Message(l Locale, err error) string {
	if err == nil {
		return ""
	}
	p, ok := notice(err)
	if !ok {
		return err.Error()
	}
	msg := l.say(p)
	var ce *stats.ClassError
	if errors.As(err, &ce) && ce.Index >= 0 {
		msg = fmt.Sprintf(l.say(phClass), ce.Index+1) + msg
	}
	return msg
}

// StatusOK returns the status line shown after analysing n values.
func StatusOK(l Locale, n int) string {
	return fmt.Sprintf(l.say(phOK), n)
}

var chartTitles = map[string]phrase{
	"histogram":       {"Histogram (Sturges)", "Histograma (Sturges)"},
	"bar":             {"Value frequencies", "Frequência dos valores"},
	"pie":             {"Distribution (pie)", "Distribuição (pizza)"},
	"scatter":         {"Scatter (index vs value)", "Dispersão (índice vs valor)"},
	"density":         {"Density (KDE)", "Densidade (KDE)"},
	"class-histogram": {"Histogram (classes)", "Histograma (classes)"},
	"polygon":         {"Frequency polygon (xi vs fi)", "Polígono de frequências (xi vs fi)"},
	"ogive":           {"Ogive (cumulative)", "Ogiva (acumulada)"},
}

// ChartTitle returns the title of the chart of the given kind in
// locale l, or "" if kind is unknown.
func ChartTitle(l Locale, kind string) string {
	p, ok := chartTitles[kind]
	if !ok {
		return ""
	}
	return l.say(p)
}
