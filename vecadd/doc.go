// Package vecadd implements the element-wise int32 addition benchmarked by
// parbench.
//
// # Operations
//
//   - Generator.Fill: uniform values in [0, bound) from one seeded stream
//   - SumSeq: dst[i] = a[i] + b[i] on the calling goroutine, timed
//   - SumPar: the same sum split across a fixed number of goroutines, timed
//   - Partition: the contiguous index ranges SumPar hands to its workers
//   - Verify, FirstMismatch: check dst against a + b
//
// Both summations dispatch to the add kernel selected for the current CPU
// (see internal/kernel) and panic when slice lengths differ.
//
// # Parallel model
//
// SumPar is fork-join. Each call splits [0, len) into at most threads
// contiguous ranges whose sizes differ by at most one, runs the first range
// on the calling goroutine and the rest on new goroutines, then waits for
// all of them. Workers write disjoint sub-slices of dst, so no locking is
// needed. Inputs are only read.
package vecadd
