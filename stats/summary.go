// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// medianConfidence is the confidence level of Summary.MedianCI.
const medianConfidence = 0.95

// Summary describes the central tendency and dispersion of a sample.
type Summary struct {
	N int `json:"n"`

	// Mean, Median, the population statistics and Range are
	// undefined if they overflow.
	Mean   Value `json:"mean"`
	Median Value `json:"median"`

	// Modes is empty if no value occurs more than once.
	Modes []float64 `json:"modes"`

	PopVariance Value `json:"popVariance"`
	PopStdDev   Value `json:"popStdDev"`

	// Variance and StdDev are the sample (N-1) statistics,
	// undefined for N < 2.
	Variance Value `json:"variance"`
	StdDev   Value `json:"stdDev"`

	// PopCV and CV are the population and sample coefficients
	// of variation, in percent.
	PopCV Value `json:"popCV"`
	CV    Value `json:"cv"`

	Range Value   `json:"range"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`

	// MedianCI is a distribution-free confidence interval for the
	// population median.
	MedianCI Interval `json:"medianCI"`

	// Sorted is the sample in ascending order.
	Sorted []float64 `json:"sorted"`
}

// An Interval is a confidence interval. Lo or Hi is undefined if the
// sample is too small to bound that side at the requested confidence.
type Interval struct {
	Lo         Value   `json:"lo"`
	Hi         Value   `json:"hi"`
	Confidence float64 `json:"confidence"`
}

// Summarize computes the Summary of s. s must be unweighted. It
// returns ErrEmptySample if s has no values.
func Summarize(s Sample) (*Summary, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	sorted := s.Copy().Sort()

	sum := &Summary{
		N:           len(s.Xs),
		Mean:        ValueOf(s.Mean()),
		Median:      ValueOf(sorted.Median()),
		Modes:       sorted.Modes(),
		PopVariance: ValueOf(s.PopVariance()),
		Variance:    ValueOf(s.Variance()),
		Range:       ValueOf(sorted.Range()),
		Sorted:      sorted.Xs,
	}
	if sum.Modes == nil {
		sum.Modes = []float64{}
	}
	sum.Min, sum.Max = sorted.Bounds()
	sum.PopStdDev = sum.PopVariance.Sqrt()
	sum.StdDev = sum.Variance.Sqrt()
	sum.PopCV = CV(sum.PopStdDev, sum.Mean)
	sum.CV = CV(sum.StdDev, sum.Mean)

	ci := QuantileCI(sum.N, 0.5, medianConfidence)
	lo, hi := ci.FromSample(*sorted)
	sum.MedianCI = Interval{ValueOf(lo), ValueOf(hi), ci.Confidence}
	return sum, nil
}

// GroupedSummary describes grouped data through its class midpoints
// weighted by class frequency.
type GroupedSummary struct {
	N int `json:"n"`

	Mean Value `json:"mean"`

	// Median is the midpoint of the median class.
	Median Value `json:"median"`

	// Modes are the midpoints of the modal classes.
	Modes []float64 `json:"modes"`

	PopVariance Value `json:"popVariance"`
	PopStdDev   Value `json:"popStdDev"`
	Variance    Value `json:"variance"`
	StdDev      Value `json:"stdDev"`
	PopCV       Value `json:"popCV"`
	CV          Value `json:"cv"`

	// AmplitudeTotal is the highest upper bound minus the lowest
	// lower bound.
	AmplitudeTotal Value `json:"amplitudeTotal"`

	// AmplitudeMidpoints is the last class midpoint minus the
	// first.
	AmplitudeMidpoints Value `json:"amplitudeMidpoints"`

	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Summarize computes the GroupedSummary of g.
func (g *Grouped) Summarize() *GroupedSummary {
	s := g.Sample()
	sum := &GroupedSummary{
		N:                  g.N,
		Mean:               ValueOf(s.Mean()),
		Median:             ValueOf(g.Median()),
		Modes:              g.Modes(),
		PopVariance:        ValueOf(s.PopVariance()),
		Variance:           ValueOf(s.Variance()),
		AmplitudeMidpoints: ValueOf(g.AmplitudeMidpoints()),
	}
	sum.Min, sum.Max = g.Bounds()
	sum.AmplitudeTotal = ValueOf(sum.Max - sum.Min)
	sum.PopStdDev = sum.PopVariance.Sqrt()
	sum.StdDev = sum.Variance.Sqrt()
	sum.PopCV = CV(sum.PopStdDev, sum.Mean)
	sum.CV = CV(sum.StdDev, sum.Mean)
	return sum
}
