package implicit_test

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/implicit"
)

////////////////////////////////////////////////////////////////////////////////
// Example: 2D grid walk
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_VertexStar walks the star of the centre vertex of a 3×3 grid.
// Scenario:
//
//   - 2×2 quads, each split into a top and a bottom triangle.
//   - Vertex 4 sits at logical (1,1) and touches six triangles.
func ExampleGrid_VertexStar() {
	g, err := implicit.NewGrid([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{3, 3, 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("vertices:", g.VertexNumber(), "edges:", g.EdgeNumber(), "triangles:", g.TriangleNumber())
	fmt.Print("star of 4:")
	for l := 0; l < g.VertexStarNumber(4); l++ {
		tri, _ := g.VertexStar(4, l)
		fmt.Print(" ", tri)
	}
	fmt.Println()

	// Output:
	// vertices: 9 edges: 16 triangles: 8
	// star of 4: 1 2 3 4 5 6
}

////////////////////////////////////////////////////////////////////////////////
// Example: 3D counts
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_VertexStarNumber compares an interior vertex with a corner.
func ExampleGrid_VertexStarNumber() {
	g, _ := implicit.NewGrid([3]float64{}, [3]float64{1, 1, 1}, [3]int{3, 3, 3})

	center := 1 + 1*3 + 1*9
	fmt.Println("center:", g.VertexEdgeNumber(center), g.VertexTriangleNumber(center), g.VertexStarNumber(center))
	fmt.Println("corner:", g.VertexEdgeNumber(0), g.VertexTriangleNumber(0), g.VertexStarNumber(0))

	// Output:
	// center: 14 36 24
	// corner: 4 5 2
}

// ExampleGrid_CellNeighbors materializes the face adjacency of a 2×2×2 grid.
func ExampleGrid_CellNeighbors() {
	g, _ := implicit.NewGrid([3]float64{}, [3]float64{1, 1, 1}, [3]int{2, 2, 2})

	rows, err := g.CellNeighbors()
	if err != nil {
		fmt.Println(err)
		return
	}
	for c, row := range rows {
		fmt.Println(c, row)
	}

	// Output:
	// 0 [1 2]
	// 1 [0 5]
	// 2 [0 3]
	// 3 [2 4]
	// 4 [3 5]
	// 5 [1 4]
}
