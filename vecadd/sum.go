package vecadd

import (
	"sync"
	"time"

	"github.com/cwbudde/algo-parbench/internal/kernel"
)

func checkLengths(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecadd: slice length mismatch")
	}
}

// SumSeq computes dst[i] = a[i] + b[i] on the calling goroutine and returns
// the wall-clock time of the loop alone.
// Panics if the slice lengths differ.
func SumSeq(dst, a, b []int32) time.Duration {
	checkLengths(dst, a, b)
	add := kernel.Func()

	start := time.Now()
	add(dst, a, b)
	return time.Since(start)
}

// SumPar computes dst[i] = a[i] + b[i] across Workers(len(dst), threads)
// goroutines and returns the wall-clock time from fork to join.
// A thread count above len(dst) leaves the surplus threads idle.
// Panics if the slice lengths differ.
func SumPar(dst, a, b []int32, threads int) time.Duration {
	checkLengths(dst, a, b)
	add := kernel.Func()
	workers := Workers(len(dst), threads)

	start := time.Now()
	forkJoin(add, dst, a, b, workers)
	return time.Since(start)
}

func forkJoin(add func(dst, a, b []int32), dst, a, b []int32, workers int) {
	n := len(dst)
	if workers <= 1 {
		add(dst, a, b)
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers - 1)
	for w := 1; w < workers; w++ {
		lo, hi := chunk(n, workers, w)
		go func() {
			defer wg.Done()
			add(dst[lo:hi], a[lo:hi], b[lo:hi])
		}()
	}

	lo, hi := chunk(n, workers, 0)
	add(dst[lo:hi], a[lo:hi], b[lo:hi])
	wg.Wait()
}
