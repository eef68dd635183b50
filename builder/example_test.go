// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphworld/builder"
)

// ExampleGenerateLabyrinth builds the classic demo world (50 vertices,
// 2x oversampling) and reports the guarantees that hold for any seed.
func ExampleGenerateLabyrinth() {
	g, err := builder.GenerateLabyrinth(50, builder.WithAlpha(2), builder.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	s := g.Stats()
	fmt.Println("vertices:", s.Vertices)
	fmt.Println("connected:", s.Components == 1)
	fmt.Println("min degree >= 3:", s.MinDegree >= 3)
	// Output:
	// vertices: 50
	// connected: true
	// min degree >= 3: true
}

// ExampleGenerateTriangulated shows the Euler relation E = 3V - 6 of a
// closed triangulated sphere.
func ExampleGenerateTriangulated() {
	g, err := builder.GenerateTriangulated(100, builder.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 100 294
}
