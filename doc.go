// Package gridtopo answers topological queries on regular grids without
// building a mesh.
//
// A regular 1D, 2D or 3D grid of vertices carries an implicit simplicial
// complex: every voxel splits into six tetrahedra, every quad into two
// triangles. Adjacency (stars, links, faces, cell neighbours, boundary
// tests) is computed by index arithmetic in O(1).
//
// Packages:
//
//	implicit/       the Grid: numbering, adjacency queries, cached tables
//	triangulation/  the query interface consumed by analysis code
//	scalarfield/    elevation fields and critical point classification
//	gridconfig/     grid parameter files (TOML, INI)
//	cmd/gridtopo/   command-line inspector
//	examples/       runnable walkthroughs
//
// Quick example (3×3 vertices, 8 triangles):
//
//	6───7───8
//	│ ╲ │ ╲ │
//	3───4───5
//	│ ╲ │ ╲ │
//	0───1───2
//
//	g, _ := implicit.NewGrid([3]float64{}, [3]float64{1, 1, 1}, [3]int{3, 3, 1})
//	g.VertexStarNumber(4) // 6
//
//	go get github.com/katalvlaran/gridtopo
package gridtopo
