package testutil

import "testing"

// RequireSliceEqual fails t if got and want differ in length or at any
// index. Only the first differing index is reported.
func RequireSliceEqual(t *testing.T, got, want []int32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// RequireInRange fails t if any element lies outside [lo, hi).
func RequireInRange(t *testing.T, data []int32, lo, hi int32) {
	t.Helper()
	for i, v := range data {
		if v < lo || v >= hi {
			t.Fatalf("index %d: value %d outside [%d, %d)", i, v, lo, hi)
		}
	}
}
