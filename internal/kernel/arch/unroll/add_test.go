package unroll

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestAddBlockMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	sizes := []int{0, 1, 2, 7, 8, 9, 15, 16, 17, 63, 64, 65, 1001}

	for _, n := range sizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := make([]int32, n)
			b := make([]int32, n)
			dst := make([]int32, n)
			for i := range a {
				a[i] = rng.Int32N(1_000_000)
				b[i] = rng.Int32N(1_000_000)
			}

			AddBlock(dst, a, b)

			for i := range dst {
				if want := a[i] + b[i]; dst[i] != want {
					t.Fatalf("AddBlock[%d] = %d, want %d", i, dst[i], want)
				}
			}
		})
	}
}

func TestAddBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]int32, 9), make([]int32, 8), make([]int32, 9))
}

func BenchmarkAddBlock(b *testing.B) {
	for _, n := range []int{64, 4096, 1 << 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := make([]int32, n)
			y := make([]int32, n)
			dst := make([]int32, n)

			b.SetBytes(int64(n * 4 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				AddBlock(dst, x, y)
			}
		})
	}
}
