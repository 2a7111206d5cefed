// Package testutil holds helpers shared by tests across the module.
package testutil

import "math/rand/v2"

// Ramp returns [start, start+step, start+2*step, ...] of the given length.
func Ramp(start, step int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = start + int32(i)*step
	}
	return out
}

// DeterministicInts returns length values in [0, bound) from a fixed seed.
func DeterministicInts(seed uint64, bound int32, length int) []int32 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]int32, length)
	for i := range out {
		out[i] = rng.Int32N(bound)
	}
	return out
}

// Expected returns the reference element-wise sum of a and b.
func Expected(a, b []int32) []int32 {
	out := make([]int32, len(a))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}
