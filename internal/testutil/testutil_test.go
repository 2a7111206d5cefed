package testutil

import (
	"slices"
	"testing"
)

func TestRamp(t *testing.T) {
	RequireSliceEqual(t, Ramp(10, 10, 5), []int32{10, 20, 30, 40, 50})
	if got := Ramp(0, 1, 0); len(got) != 0 {
		t.Fatalf("Ramp length 0 returned %d elements", len(got))
	}
}

func TestDeterministicInts(t *testing.T) {
	a := DeterministicInts(42, 100, 1000)
	b := DeterministicInts(42, 100, 1000)
	RequireSliceEqual(t, a, b)
	RequireInRange(t, a, 0, 100)

	c := DeterministicInts(43, 100, 1000)
	if slices.Equal(a, c) {
		t.Error("different seeds produced identical data")
	}
}

func TestExpected(t *testing.T) {
	got := Expected([]int32{1, 2, 3, 4, 5}, []int32{10, 20, 30, 40, 50})
	RequireSliceEqual(t, got, []int32{11, 22, 33, 44, 55})
}
