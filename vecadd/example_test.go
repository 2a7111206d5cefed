package vecadd_test

import (
	"fmt"

	"github.com/cwbudde/algo-parbench/vecadd"
)

func ExampleSumPar() {
	a := []int32{1, 2, 3, 4, 5}
	b := []int32{10, 20, 30, 40, 50}
	c := make([]int32, len(a))

	vecadd.SumPar(c, a, b, 2)
	fmt.Println(c, vecadd.Verify(a, b, c))

	// Output:
	// [11 22 33 44 55] true
}

func ExamplePartition() {
	fmt.Println(vecadd.Partition(10, 4))
	fmt.Println(vecadd.Partition(3, 8))

	// Output:
	// [{0 3} {3 6} {6 8} {8 10}]
	// [{0 1} {1 2} {2 3}]
}
