package vecadd

// Verify reports whether c[i] == a[i] + b[i] for every index. Slices of
// different lengths never verify. Empty slices verify vacuously.
func Verify(a, b, c []int32) bool {
	return FirstMismatch(a, b, c) < 0
}

// FirstMismatch returns the first index where c[i] != a[i] + b[i], or -1
// when there is none. If the lengths differ, the shortest length is
// returned.
func FirstMismatch(a, b, c []int32) int {
	n := min(len(a), len(b), len(c))
	for i := 0; i < n; i++ {
		if c[i] != a[i]+b[i] {
			return i
		}
	}
	if len(a) != n || len(b) != n || len(c) != n {
		return n
	}
	return -1
}
