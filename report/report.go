// Package report renders benchmark results for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-parbench/bench"
	"github.com/cwbudde/algo-parbench/internal/ansi"
)

const rule = "=============================================="

// Text writes the human-readable report, colored through its palette.
type Text struct {
	w io.Writer
	p ansi.Palette
}

// NewText returns a Text reporter writing to w.
func NewText(w io.Writer, p ansi.Palette) *Text {
	return &Text{w: w, p: p}
}

// Banner prints the program header.
func (t *Text) Banner() {
	fmt.Fprintln(t.w, t.p.Paint("\n"+rule, ansi.Cyan, ansi.Bold))
	fmt.Fprintln(t.w, t.p.Paint("   PARALLEL ARRAY ADDITION BENCHMARK", ansi.Cyan, ansi.Bold))
	fmt.Fprintln(t.w, t.p.Paint(rule, ansi.Cyan, ansi.Bold))
}

// Config echoes the resolved configuration.
func (t *Text) Config(cfg bench.Config, detected int) {
	fmt.Fprintln(t.w, t.p.Paint("\nConfig:", ansi.Magenta, ansi.Bold))
	fmt.Fprintf(t.w, "  N       = %d\n", cfg.N)
	fmt.Fprintf(t.w, "  MAXVAL  = %d\n", cfg.MaxVal)
	fmt.Fprintf(t.w, "  K       = %d\n", cfg.PrintK)
	fmt.Fprintf(t.w, "  Threads detected (max) = %d\n", detected)
	fmt.Fprintf(t.w, "  Threads requested      = %d\n", cfg.Threads)
	fmt.Fprintf(t.w, "  Repetitions (average)  = %d\n\n", cfg.Reps)
}

// Progress prints the line announcing state s.
func (t *Text) Progress(s bench.State, cfg bench.Config) {
	var msg string
	switch s {
	case bench.Generating:
		msg = "Generating arrays with random values..."
	case bench.WarmingUp:
		msg = "Warm-up..."
	case bench.Measuring:
		msg = fmt.Sprintf("Measuring times (average of %d reps)...", cfg.Reps)
	default:
		return
	}
	fmt.Fprintln(t.w, t.p.Paint(msg, ansi.Cyan))
}

// Error prints err as a failed run.
func (t *Text) Error(err error) {
	fmt.Fprintln(t.w, t.p.Paint("Error: "+err.Error(), ansi.Red))
}

// Report prints the result sections.
func (t *Text) Report(res *bench.Result) error {
	fmt.Fprintln(t.w, t.p.Paint(fmt.Sprintf("Workers used: %d", res.Workers), ansi.Cyan))
	fmt.Fprintf(t.w, "%s %s (SIMD %s, %d logical CPUs, seed %d)\n",
		t.p.Paint("Kernel:", ansi.Dim), res.Kernel, res.SIMD, res.LogicalCPUs, res.Seed)

	if res.Sample.K > 0 {
		fmt.Fprintln(t.w, t.p.Paint("\nData sample (spot check):", ansi.Green, ansi.Bold))
		t.slice("A", res.Sample.A)
		t.slice("B", res.Sample.B)
		t.slice("C (parallel)", res.Sample.Par)
	}

	fmt.Fprintln(t.w, t.p.Paint("\nVerification:", ansi.Magenta, ansi.Bold))
	fmt.Fprintf(t.w, "  Sequential: %s\n", t.status(res.Seq))
	fmt.Fprintf(t.w, "  Parallel:   %s\n", t.status(res.Par))

	fmt.Fprintln(t.w, t.p.Paint("\nPerformance (average):", ansi.Magenta, ansi.Bold))
	fmt.Fprintf(t.w, "  Sequential time: %.9f s\n", res.Seq.Avg)
	fmt.Fprintf(t.w, "  Parallel time:   %.9f s\n", res.Par.Avg)
	if res.SpeedupOK {
		fmt.Fprintf(t.w, "  Speedup (sequential/parallel): %.3fx\n", res.Speedup)
		if res.Speedup >= 1 {
			fmt.Fprintln(t.w, t.p.Paint("  Parallelism paid off.", ansi.Green))
		} else {
			fmt.Fprintln(t.w, t.p.Paint("  With small N, overhead and/or memory bandwidth limits, parallel may not win.", ansi.Yellow))
		}
	} else {
		fmt.Fprintln(t.w, "  Speedup (sequential/parallel): not computed (parallel time is zero)")
	}

	fmt.Fprintln(t.w, t.p.Paint("\nTiming distribution (seconds):", ansi.Magenta, ansi.Bold))
	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Mode\tMean\tMedian\tMin\tMax\tStdDev")
	for _, m := range []struct {
		name string
		mode bench.Mode
	}{{"sequential", res.Seq}, {"parallel", res.Par}} {
		s := m.mode.Timing
		fmt.Fprintf(tw, "  %s\t%.9f\t%.9f\t%.9f\t%.9f\t%.9f\n", m.name, s.Mean, s.Median, s.Min, s.Max, s.StdDev)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(t.w, t.p.Paint("\n"+rule, ansi.Cyan))
	return err
}

func (t *Text) status(m bench.Mode) string {
	if m.Verified {
		return t.p.Paint("OK", ansi.Green)
	}
	return t.p.Paint(fmt.Sprintf("FAILED (first mismatch at index %d)", m.FirstMismatch), ansi.Red)
}

func (t *Text) slice(name string, s bench.Slice) {
	if len(s.Head) == 0 {
		return
	}
	label := t.p.Paint(name, ansi.Blue, ansi.Bold)
	fmt.Fprintf(t.w, "%s (first %d): %s\n", label, len(s.Head), join(s.Head))
	if len(s.Tail) > 0 {
		fmt.Fprintf(t.w, "%s (last %d):  %s\n", label, len(s.Tail), join(s.Tail))
	}
}

func join(xs []int32) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", x)
	}
	return sb.String()
}

// JSON writes the result as one indented JSON document.
type JSON struct {
	w io.Writer
}

// NewJSON returns a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Report encodes res.
func (j *JSON) Report(res *bench.Result) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("report: encoding result: %w", err)
	}
	return nil
}
