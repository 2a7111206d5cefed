// Package host describes the machine a benchmark run executes on.
//
// SIMD feature detection itself lives in github.com/cwbudde/algo-vecmath/cpu,
// which also drives add-kernel selection. This package adds what a run
// reports next to it: the logical CPU count, the scheduler's parallelism
// limit, the best SIMD level, and the free physical memory used as the
// default allocation budget.
package host

import (
	"runtime"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// LogicalCPUs returns the number of logical CPUs usable by the process.
func LogicalCPUs() int {
	return runtime.NumCPU()
}

// MaxConcurrency returns how many goroutines the scheduler can run in
// parallel right now (GOMAXPROCS). It never changes the setting.
func MaxConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

// BestSIMD returns the highest SIMD level the features support.
// ForceGeneric reports SIMDNone regardless of the hardware flags.
//
// Levels are not strictly comparable across architectures (AVX2 vs NEON);
// a feature set only ever carries flags for its own architecture.
func BestSIMD(f cpu.Features) cpu.SIMDLevel {
	switch {
	case f.ForceGeneric:
		return cpu.SIMDNone
	case f.HasAVX512:
		return cpu.SIMDAVX512
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasAVX:
		return cpu.SIMDAVX
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}
