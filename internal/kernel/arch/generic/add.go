// Package generic provides the reference add kernel.
package generic

// AddBlock computes dst[i] = a[i] + b[i] in strict index order.
// Panics if the slice lengths differ.
func AddBlock(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
