package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-apsp/matrix"
)

// ExampleNewDistance builds a 3-node grid and records two directed edges.
func ExampleNewDistance() {
	d, err := matrix.NewDistance(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = d.Set(0, 1, 4) // 0→1
	_ = d.Set(1, 2, 2) // 1→2

	fmt.Print(d)
	fmt.Println("edges:", d.EdgeCount())
	// Output:
	// [0, 4, ∞]
	// [∞, 0, 2]
	// [∞, ∞, 0]
	// edges: 2
}
