// Command parbench benchmarks element-wise addition of two int32 arrays,
// comparing a sequential loop with a fork-join parallel loop.
//
// Usage:
//
//	parbench [flags]
//
// When stdin is a terminal, each setting is confirmed interactively with
// the flag value as its default. Otherwise the flags are used as given.
//
// Examples:
//
//	parbench
//	parbench -n 50000000 -threads 8 -reps 20
//	parbench -interactive never -format json -seed 1
//	parbench -force-generic -k 0
//	parbench -mem-limit 0 -n 100000000
//
// The four arrays are allocated against a byte budget (-mem-limit). On
// linux the default is the free physical memory at start-up, so a run
// that would exhaust memory ends with an allocation error instead of a
// runtime crash.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-parbench/bench"
	"github.com/cwbudde/algo-parbench/internal/ansi"
	"github.com/cwbudde/algo-parbench/internal/host"
	"github.com/cwbudde/algo-parbench/internal/kernel"
	"github.com/cwbudde/algo-parbench/internal/prompt"
	"github.com/cwbudde/algo-parbench/report"
	"github.com/cwbudde/algo-parbench/vecadd"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	cfg          bench.Config
	forceGeneric bool
	memLimit     int64
	format       string
	noColor      bool
	interactive  string
	verbose      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("parbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&opts.cfg.N, "n", bench.BoundN.Default, "array length (10..100000000)")
	fs.IntVar(&opts.cfg.MaxVal, "maxval", bench.BoundMaxVal.Default, "exclusive upper bound of generated values (2..1000000)")
	fs.IntVar(&opts.cfg.PrintK, "k", bench.BoundPrintK.Default, "elements to print from each end of the arrays (0..200)")
	fs.IntVar(&opts.cfg.Threads, "threads", bench.DefaultThreads(), "parallel worker count (1..256)")
	fs.IntVar(&opts.cfg.Reps, "reps", bench.BoundReps.Default, "timed repetitions to average (1..50)")
	fs.Uint64Var(&opts.cfg.Seed, "seed", 0, "random seed, 0 for time-based")
	fs.BoolVar(&opts.forceGeneric, "force-generic", false, "use the reference add loop instead of the fastest kernel")
	fs.Int64Var(&opts.memLimit, "mem-limit", defaultMemLimit(), "byte budget for the four arrays, 0 for unlimited; defaults to free memory")
	fs.StringVar(&opts.format, "format", "text", "output format: text or json")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.StringVar(&opts.interactive, "interactive", "auto", "prompt for settings: auto, always or never")
	fs.BoolVar(&opts.verbose, "v", false, "log state transitions and per-repetition timings to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: parbench [flags]\n\n")
		fmt.Fprintf(stderr, "Benchmarks sequential vs parallel element-wise addition of two int32 arrays.\n")
		fmt.Fprintf(stderr, "Prompts for each setting when stdin is a terminal.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  parbench -n 50000000 -threads 8 -reps 20\n")
		fmt.Fprintf(stderr, "  parbench -interactive never -format json -seed 1\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.memLimit < 0 {
		return nil, fmt.Errorf("-mem-limit must not be negative, got %d", opts.memLimit)
	}
	switch opts.format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	switch opts.interactive {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("unknown -interactive mode %q", opts.interactive)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// prompts and progress go to stderr when stdout carries JSON
	ui := stdout
	if opts.format == "json" {
		ui = stderr
	}
	uiFile, _ := ui.(*os.File)
	text := report.NewText(ui, ansi.ForFile(uiFile, opts.noColor))

	if opts.forceGeneric {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
		kernel.Reselect()
	}

	// read before the thread prompt so its default is the hardware limit
	detected := host.MaxConcurrency()

	text.Banner()
	if isInteractive(opts.interactive, stdin) {
		p := prompt.New(stdin, ui, ansi.ForFile(uiFile, opts.noColor))
		if opts.cfg, err = ask(p, opts.cfg); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
	}

	if err := opts.cfg.Validate(); err != nil {
		text.Error(err)
		return exitUsage
	}
	text.Config(opts.cfg, detected)

	logger.Debug("allocation budget", "bytes", opts.memLimit)
	driver := bench.NewDriver(
		bench.WithAllocator(&vecadd.HeapAllocator{Limit: opts.memLimit}),
		bench.WithLogger(logger),
		bench.WithObserver(func(s bench.State) { text.Progress(s, opts.cfg) }),
	)
	res, err := driver.Run(ctx, opts.cfg)
	if err != nil {
		if errors.Is(err, bench.ErrAllocation) {
			text.Error(fmt.Errorf("%w (try a smaller N)", err))
		} else {
			text.Error(err)
		}
		return exitFailure
	}

	var r interface{ Report(*bench.Result) error } = text
	if opts.format == "json" {
		r = report.NewJSON(stdout)
	}
	if err := r.Report(res); err != nil {
		logger.Error("writing report", "err", err)
		return exitFailure
	}
	return exitOK
}

// defaultMemLimit returns the free physical memory, or 0 (unlimited)
// where it cannot be read.
func defaultMemLimit() int64 {
	if free, ok := host.FreeMemory(); ok {
		return free
	}
	return 0
}

func isInteractive(mode string, stdin io.Reader) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := stdin.(*os.File)
	return ok && ansi.IsTerminal(f)
}

// ask confirms each setting with cfg's values as defaults, in the order
// N, MAXVAL, K, threads, reps.
func ask(p *prompt.Prompter, cfg bench.Config) (bench.Config, error) {
	questions := []struct {
		label string
		bound bench.Bound
		value *int
	}{
		{"Enter N (array length)", bench.BoundN, &cfg.N},
		{"Enter MAXVAL (values 0..MAXVAL-1)", bench.BoundMaxVal, &cfg.MaxVal},
		{"How many elements to print (K)", bench.BoundPrintK, &cfg.PrintK},
		{"How many threads to use", bench.BoundThreads, &cfg.Threads},
		{"Repetitions to average times", bench.BoundReps, &cfg.Reps},
	}
	for _, q := range questions {
		v, err := p.Int(q.label, q.bound.Clamp(*q.value), q.bound.Min, q.bound.Max)
		if err != nil {
			return cfg, err
		}
		*q.value = v
	}
	return cfg, nil
}
