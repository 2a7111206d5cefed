// Package unroll provides an eight-way unrolled scalar add kernel.
//
// The loop body re-slices each operand to exactly eight elements so the
// compiler drops the per-element bounds checks. The tail runs one element
// at a time. Results are identical to the reference loop.
package unroll

// AddBlock computes dst[i] = a[i] + b[i].
// Panics if the slice lengths differ.
func AddBlock(dst, a, b []int32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}

	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		d := dst[i : i+8 : i+8]
		x := a[i : i+8 : i+8]
		y := b[i : i+8 : i+8]
		d[0] = x[0] + y[0]
		d[1] = x[1] + y[1]
		d[2] = x[2] + y[2]
		d[3] = x[3] + y[3]
		d[4] = x[4] + y[4]
		d[5] = x[5] + y[5]
		d[6] = x[6] + y[6]
		d[7] = x[7] + y[7]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}
