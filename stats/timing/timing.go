// Package timing accumulates per-repetition wall-clock samples and
// summarizes them.
//
// All values are in seconds. The mean is the accumulated total divided by
// the sample count, which is what the benchmark reports as its average.
// Median and spread come from gonum's stat package.
package timing

import (
	"math"
	"slices"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a set of timing samples.
type Summary struct {
	Count  int     `json:"count"`
	Total  float64 `json:"total_seconds"`
	Mean   float64 `json:"mean_seconds"`
	Median float64 `json:"median_seconds"`
	Min    float64 `json:"min_seconds"`
	Max    float64 `json:"max_seconds"`
	StdDev float64 `json:"stddev_seconds"` // sample standard deviation, 0 below two samples
}

// Accumulator collects samples for one benchmark mode.
// The zero value is ready to use.
type Accumulator struct {
	samples []float64
	total   float64
}

// Add records one elapsed duration.
func (a *Accumulator) Add(d time.Duration) {
	s := d.Seconds()
	a.samples = append(a.samples, s)
	a.total += s
}

// Len returns the number of samples recorded.
func (a *Accumulator) Len() int { return len(a.samples) }

// Total returns the running total in seconds.
func (a *Accumulator) Total() float64 { return a.total }

// Mean returns Total / Len, or 0 without samples.
func (a *Accumulator) Mean() float64 {
	if len(a.samples) == 0 {
		return 0
	}
	return a.total / float64(len(a.samples))
}

// Samples returns a copy of the recorded samples in order.
func (a *Accumulator) Samples() []float64 {
	return slices.Clone(a.samples)
}

// Summary summarizes the recorded samples.
func (a *Accumulator) Summary() Summary {
	s := Summarize(a.samples)
	// keep the reported mean identical to the running total's average
	s.Total = a.total
	s.Mean = a.Mean()
	return s
}

// Summarize computes a Summary of samples. An empty input yields a zero
// Summary.
func Summarize(samples []float64) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	var total float64
	minVal, maxVal := samples[0], samples[0]
	for _, x := range samples {
		total += x
		minVal = math.Min(minVal, x)
		maxVal = math.Max(maxVal, x)
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	var stdDev float64
	if n > 1 {
		stdDev = stat.StdDev(samples, nil)
	}

	return Summary{
		Count:  n,
		Total:  total,
		Mean:   total / float64(n),
		Median: median(sorted),
		Min:    minVal,
		Max:    maxVal,
		StdDev: stdDev,
	}
}

// median averages the two middle values for even counts. stat.Quantile's
// empirical estimator would return the lower one.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return stat.Quantile(0.5, stat.Empirical, sorted, nil)
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Speedup returns seq / par and true, or 0 and false when par is not
// positive.
func Speedup(seq, par float64) (float64, bool) {
	if par <= 0 {
		return 0, false
	}
	return seq / par, true
}

// Speedups returns the per-repetition ratios seq[i] / par[i]. Entries with
// a non-positive par sample are 0. Panics if the lengths differ.
func Speedups(seq, par []float64) []float64 {
	if len(seq) != len(par) {
		panic("timing: sample count mismatch")
	}

	inv := make([]float64, len(par))
	for i, p := range par {
		if p > 0 {
			inv[i] = 1 / p
		}
	}

	out := make([]float64, len(seq))
	vecmath.MulBlock(out, seq, inv)
	return out
}
