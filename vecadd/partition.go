package vecadd

// Range is the half-open index interval [Lo, Hi) assigned to one worker.
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.Hi - r.Lo }

// Workers returns how many goroutines SumPar uses for length elements and
// the requested thread count. It never exceeds length, and a thread count
// below one counts as one.
func Workers(length, threads int) int {
	if threads < 1 {
		threads = 1
	}
	if length <= 0 {
		return 0
	}
	if threads > length {
		return length
	}
	return threads
}

// Partition splits [0, length) into Workers(length, threads) ordered,
// contiguous, non-empty ranges. The first length%workers ranges hold one
// extra element. Returns an empty slice for length <= 0.
func Partition(length, threads int) []Range {
	workers := Workers(length, threads)
	ranges := make([]Range, workers)
	for w := range ranges {
		lo, hi := chunk(length, workers, w)
		ranges[w] = Range{Lo: lo, Hi: hi}
	}
	return ranges
}

// chunk returns worker w's bounds without allocating.
func chunk(length, workers, w int) (lo, hi int) {
	q, r := length/workers, length%workers
	lo = w*q + min(w, r)
	hi = lo + q
	if w < r {
		hi++
	}
	return lo, hi
}
