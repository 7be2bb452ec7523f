// SPDX-License-Identifier: MIT

// Package triangulation defines the read-only query surface that mesh
// consumers (scalar-field analysis, topology pipelines) use to walk a
// simplicial complex, independently of how the complex is stored.
//
// The surface is split into small interfaces so a consumer can ask for only
// what it walks; Triangulation composes all of them. Ids are dense,
// zero-based ints; a relation is read as a count plus an indexed getter.
//
// Getters return (id, error). Counts return -1 for an invalid id when the
// implementation validates input.
package triangulation

import "gonum.org/v1/gonum/spatial/r3"

// Sizes reports the simplex counts of a complex.
type Sizes interface {
	Dimensionality() int
	VertexNumber() int
	EdgeNumber() int
	TriangleNumber() int
	TetrahedronNumber() int
	CellNumber() int
}

// Geometry places vertices in space.
type Geometry interface {
	VertexPoint(v int) (r3.Vec, error)
}

// VertexAdjacency walks the neighbourhood of a vertex.
type VertexAdjacency interface {
	VertexNeighborNumber(v int) int
	VertexNeighbor(v, local int) (int, error)
	VertexEdgeNumber(v int) int
	VertexEdge(v, local int) (int, error)
	VertexTriangleNumber(v int) int
	VertexTriangle(v, local int) (int, error)
	VertexStarNumber(v int) int
	VertexStar(v, local int) (int, error)
	VertexLinkNumber(v int) int
	VertexLink(v, local int) (int, error)
	IsVertexOnBoundary(v int) bool
}

// EdgeAdjacency walks the neighbourhood of an edge.
type EdgeAdjacency interface {
	EdgeVertex(e, local int) (int, error)
	EdgeTriangleNumber(e int) int
	EdgeTriangle(e, local int) (int, error)
	EdgeStarNumber(e int) int
	EdgeStar(e, local int) (int, error)
	EdgeLinkNumber(e int) int
	EdgeLink(e, local int) (int, error)
	IsEdgeOnBoundary(e int) bool
}

// TriangleAdjacency walks the faces and cofaces of a triangle.
type TriangleAdjacency interface {
	TriangleVertex(t, local int) (int, error)
	TriangleEdge(t, local int) (int, error)
	TriangleStarNumber(t int) int
	TriangleStar(t, local int) (int, error)
	TriangleLinkNumber(t int) int
	TriangleLink(t, local int) (int, error)
	IsTriangleOnBoundary(t int) bool
}

// CellAdjacency walks top-dimensional simplices regardless of dimension.
type CellAdjacency interface {
	CellVertexNumber(c int) int
	CellVertex(c, local int) (int, error)
	CellNeighborNumber(c int) int
	CellNeighbor(c, local int) (int, error)
}

// Triangulation is the complete query surface.
type Triangulation interface {
	Sizes
	Geometry
	VertexAdjacency
	EdgeAdjacency
	TriangleAdjacency
	CellAdjacency
}
