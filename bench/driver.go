// Package bench drives one sequential vs parallel addition benchmark.
//
// A run walks Configuring → Allocating → Generating → WarmingUp →
// Measuring → Verifying → Reporting → Done. The only failure inside the
// run is AllocationFailed, which releases whatever was acquired and ends
// the run without results.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cwbudde/algo-parbench/internal/host"
	"github.com/cwbudde/algo-parbench/internal/kernel"
	"github.com/cwbudde/algo-parbench/stats/timing"
	"github.com/cwbudde/algo-parbench/vecadd"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// ErrAllocation reports that a run could not obtain its buffers.
var ErrAllocation = errors.New("bench: could not allocate buffers")

// Driver executes benchmark runs. A Driver may run several configs in
// turn but not concurrently.
type Driver struct {
	alloc   vecadd.Allocator
	logger  *slog.Logger
	observe func(State)

	started time.Time // start of the current run
}

// Option configures a Driver.
type Option func(*Driver)

// WithAllocator sets where buffers come from. The default is an
// unlimited vecadd.HeapAllocator; pass one with a Limit to turn memory
// exhaustion into AllocationFailed.
func WithAllocator(a vecadd.Allocator) Option {
	return func(d *Driver) { d.alloc = a }
}

// WithLogger sets the logger for state transitions and per-repetition
// timings, logged at debug level. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithObserver registers fn to be called on entry to every state.
func WithObserver(fn func(State)) Option {
	return func(d *Driver) { d.observe = fn }
}

// NewDriver returns a Driver configured by opts.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		alloc:  &vecadd.HeapAllocator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) enter(s State) {
	d.logger.Debug("state", "state", s.String())
	if d.observe != nil {
		d.observe(s)
	}
	if s.Terminal() {
		d.logger.Debug("run finished", "state", s.String(), "elapsed", time.Since(d.started))
	}
}

var bufferNames = [4]string{"A", "B", "C (sequential)", "C (parallel)"}

// Run executes cfg. It returns an error wrapping ErrInvalidConfig,
// ErrAllocation, or ctx.Err(). Cancellation is checked between
// repetitions, never inside a timed pass.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	d.started = time.Now()
	d.enter(Configuring)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// read before any work so the report shows the hardware's own limit
	detected := host.MaxConcurrency()
	features := cpu.DetectFeatures()

	d.enter(Allocating)
	var bufs [4][]int32
	acquired := 0
	release := func() {
		for i := 0; i < acquired; i++ {
			d.alloc.Release(bufs[i])
			bufs[i] = nil
		}
		acquired = 0
	}
	for i := range bufs {
		buf, err := d.alloc.Alloc(cfg.N)
		if err != nil {
			release()
			d.enter(AllocationFailed)
			return nil, fmt.Errorf("%w: %s (N=%d): %w", ErrAllocation, bufferNames[i], cfg.N, err)
		}
		bufs[i] = buf
		acquired++
	}
	defer release()
	a, b, seqOut, parOut := bufs[0], bufs[1], bufs[2], bufs[3]

	d.enter(Generating)
	gen := vecadd.NewGenerator(cfg.Seed)
	gen.Fill(a, int32(cfg.MaxVal))
	gen.Fill(b, int32(cfg.MaxVal))

	d.enter(WarmingUp)
	vecadd.SumSeq(seqOut, a, b)
	vecadd.SumPar(parOut, a, b, cfg.Threads)

	d.enter(Measuring)
	var seqAcc, parAcc timing.Accumulator
	for rep := 0; rep < cfg.Reps; rep++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ts := vecadd.SumSeq(seqOut, a, b)
		tp := vecadd.SumPar(parOut, a, b, cfg.Threads)
		seqAcc.Add(ts)
		parAcc.Add(tp)
		d.logger.Debug("repetition", "rep", rep+1, "seq", ts, "par", tp)
	}

	res := &Result{
		Config:          cfg,
		Seed:            gen.Seed(),
		DetectedThreads: detected,
		LogicalCPUs:     host.LogicalCPUs(),
		Workers:         vecadd.Workers(cfg.N, cfg.Threads),
		Kernel:          kernel.Selected(),
		SIMD:            host.BestSIMD(features).String(),
		Seq:             Mode{Avg: seqAcc.Mean(), Timing: seqAcc.Summary()},
		Par:             Mode{Avg: parAcc.Mean(), Timing: parAcc.Summary()},
		Speedups:        timing.Speedups(seqAcc.Samples(), parAcc.Samples()),
	}
	res.Speedup, res.SpeedupOK = timing.Speedup(res.Seq.Avg, res.Par.Avg)

	d.enter(Verifying)
	res.Seq.FirstMismatch = vecadd.FirstMismatch(a, b, seqOut)
	res.Seq.Verified = res.Seq.FirstMismatch < 0
	res.Par.FirstMismatch = vecadd.FirstMismatch(a, b, parOut)
	res.Par.Verified = res.Par.FirstMismatch < 0

	d.enter(Reporting)
	res.Sample = Sample{
		K:   cfg.PrintK,
		A:   SliceOf(a, cfg.PrintK),
		B:   SliceOf(b, cfg.PrintK),
		Seq: SliceOf(seqOut, cfg.PrintK),
		Par: SliceOf(parOut, cfg.PrintK),
	}
	d.logger.Debug("result",
		"avg_seq", res.Seq.Avg, "avg_par", res.Par.Avg,
		"speedup", res.Speedup, "verified", res.Verified())

	d.enter(Done)
	return res, nil
}
