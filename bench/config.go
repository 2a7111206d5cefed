package bench

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-parbench/internal/host"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("bench: invalid configuration")

// Bound is the inclusive range and default for one integer setting.
type Bound struct {
	Name    string
	Min     int
	Max     int
	Default int
}

// Check returns an error if v lies outside [Min, Max].
func (b Bound) Check(v int) error {
	if v < b.Min || v > b.Max {
		return fmt.Errorf("%s = %d out of range (%d..%d)", b.Name, v, b.Min, b.Max)
	}
	return nil
}

// Clamp limits v to [Min, Max].
func (b Bound) Clamp(v int) int {
	return max(b.Min, min(v, b.Max))
}

// Bounds shared by flag parsing, prompting, and validation.
var (
	BoundN       = Bound{Name: "N", Min: 10, Max: 100_000_000, Default: 10_000_000}
	BoundMaxVal  = Bound{Name: "MAXVAL", Min: 2, Max: 1_000_000, Default: 100}
	BoundPrintK  = Bound{Name: "K", Min: 0, Max: 200, Default: 10}
	BoundThreads = Bound{Name: "threads", Min: 1, Max: 256} // default is detected at run time
	BoundReps    = Bound{Name: "reps", Min: 1, Max: 50, Default: 10}
)

// Config is the immutable record a run is driven by.
type Config struct {
	N       int    `json:"n"`
	MaxVal  int    `json:"maxval"`
	PrintK  int    `json:"print_k"`
	Threads int    `json:"threads"`
	Reps    int    `json:"reps"`
	Seed    uint64 `json:"seed"` // 0 selects a time-based seed
}

// DefaultThreads returns the detected scheduler parallelism clamped to
// BoundThreads.
func DefaultThreads() int {
	return BoundThreads.Clamp(host.MaxConcurrency())
}

// DefaultConfig returns the defaults of every bound.
func DefaultConfig() Config {
	return Config{
		N:       BoundN.Default,
		MaxVal:  BoundMaxVal.Default,
		PrintK:  BoundPrintK.Default,
		Threads: DefaultThreads(),
		Reps:    BoundReps.Default,
	}
}

// Validate reports every field outside its bound. The returned error
// wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	for _, f := range []struct {
		bound Bound
		value int
	}{
		{BoundN, c.N},
		{BoundMaxVal, c.MaxVal},
		{BoundPrintK, c.PrintK},
		{BoundThreads, c.Threads},
		{BoundReps, c.Reps},
	} {
		if err := f.bound.Check(f.value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
