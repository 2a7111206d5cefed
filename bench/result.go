package bench

import "github.com/cwbudde/algo-parbench/stats/timing"

// Mode is the outcome for one summation mode.
type Mode struct {
	// Avg is the accumulated elapsed time divided by Reps, in seconds.
	Avg           float64        `json:"avg_seconds"`
	Timing        timing.Summary `json:"timing"`
	Verified      bool           `json:"verified"`
	FirstMismatch int            `json:"first_mismatch"` // -1 when Verified
}

// Slice holds the leading and trailing elements of an array. Tail is
// empty unless the array is longer than twice the sample size.
type Slice struct {
	Len  int     `json:"len"`
	Head []int32 `json:"head"`
	Tail []int32 `json:"tail,omitempty"`
}

// SliceOf copies the first min(len(x), k) elements of x, and the last k
// when len(x) > 2k.
func SliceOf(x []int32, k int) Slice {
	s := Slice{Len: len(x)}
	if k <= 0 {
		return s
	}
	s.Head = append([]int32(nil), x[:min(len(x), k)]...)
	if len(x) > 2*k {
		s.Tail = append([]int32(nil), x[len(x)-k:]...)
	}
	return s
}

// Sample is the spot-check view of the run's arrays.
type Sample struct {
	K   int   `json:"k"`
	A   Slice `json:"a"`
	B   Slice `json:"b"`
	Seq Slice `json:"seq"`
	Par Slice `json:"par"`
}

// Result is everything a run hands to the reporter.
type Result struct {
	Config Config `json:"config"`
	Seed   uint64 `json:"seed"` // the seed actually used

	DetectedThreads int    `json:"detected_threads"`
	LogicalCPUs     int    `json:"logical_cpus"`
	Workers         int    `json:"workers"`
	Kernel          string `json:"kernel"`
	SIMD            string `json:"simd"`

	Seq Mode `json:"sequential"`
	Par Mode `json:"parallel"`

	// Speedup is Seq.Avg / Par.Avg. Valid only when SpeedupOK.
	Speedup   float64   `json:"speedup"`
	SpeedupOK bool      `json:"speedup_computed"`
	Speedups  []float64 `json:"speedups_per_rep"`

	Sample Sample `json:"sample"`
}

// Verified reports whether both modes produced correct output.
func (r *Result) Verified() bool {
	return r.Seq.Verified && r.Par.Verified
}
