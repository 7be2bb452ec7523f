// SPDX-License-Identifier: MIT

package implicit

import "gonum.org/v1/gonum/spatial/r3"

// checkID validates id against a simplex count n.
func (g *Grid) checkID(id, n int) error {
	if !g.configured {
		return ErrNotConfigured
	}
	if id < 0 || id >= n {
		return ErrSimplexOutOfRange
	}

	return nil
}

// pick resolves entry local of s from base p.
func (g *Grid) pick(s stencil, local int, p [3]int) (int, error) {
	if g.checked && (local < 0 || local >= len(s)) {
		return -1, ErrLocalOutOfRange
	}

	return g.resolve(s[local], p), nil
}

type vertexSelector func(*vertexFormula) stencil

func vertexNeighbors(f *vertexFormula) stencil { return f.neighbors }
func vertexEdges(f *vertexFormula) stencil     { return f.edges }
func vertexTriangles(f *vertexFormula) stencil { return f.triangles }
func vertexStar(f *vertexFormula) stencil      { return f.star }
func vertexLink(f *vertexFormula) stencil      { return f.link }

func (g *Grid) vertexCount(v int, sel vertexSelector) int {
	if g.checked && g.checkID(v, g.vertexNumber) != nil {
		return -1
	}

	return len(sel(&vertexBank[g.vertexPositions[v]]))
}

func (g *Grid) vertexQuery(v, local int, sel vertexSelector) (int, error) {
	if g.checked {
		if err := g.checkID(v, g.vertexNumber); err != nil {
			return -1, err
		}
	}

	return g.pick(sel(&vertexBank[g.vertexPositions[v]]), local, g.vertexCoords(v))
}

// VertexNeighborNumber returns the number of vertices sharing an edge with v,
// or -1 for an invalid id in checked mode.
func (g *Grid) VertexNeighborNumber(v int) int { return g.vertexCount(v, vertexNeighbors) }

// VertexNeighbor returns the local-th neighbour of v. Neighbours are listed
// in ascending id order.
func (g *Grid) VertexNeighbor(v, local int) (int, error) {
	return g.vertexQuery(v, local, vertexNeighbors)
}

// VertexEdgeNumber returns the number of edges incident to v. It always
// equals VertexNeighborNumber(v).
func (g *Grid) VertexEdgeNumber(v int) int { return g.vertexCount(v, vertexEdges) }

// VertexEdge returns the local-th edge incident to v.
func (g *Grid) VertexEdge(v, local int) (int, error) {
	return g.vertexQuery(v, local, vertexEdges)
}

// VertexTriangleNumber returns the number of triangles incident to v.
// In 2D the incident triangles are the star.
func (g *Grid) VertexTriangleNumber(v int) int { return g.vertexCount(v, vertexTriangles) }

// VertexTriangle returns the local-th triangle incident to v.
func (g *Grid) VertexTriangle(v, local int) (int, error) {
	return g.vertexQuery(v, local, vertexTriangles)
}

// VertexStarNumber returns the number of top-dimensional simplices incident
// to v: tetrahedra in 3D, triangles in 2D, edges in 1D.
func (g *Grid) VertexStarNumber(v int) int { return g.vertexCount(v, vertexStar) }

// VertexStar returns the local-th simplex of the star of v.
func (g *Grid) VertexStar(v, local int) (int, error) {
	return g.vertexQuery(v, local, vertexStar)
}

// VertexLinkNumber returns the size of the link of v. Link entry n is the
// face of star entry n opposite v: a triangle in 3D, an edge in 2D, a vertex
// in 1D.
func (g *Grid) VertexLinkNumber(v int) int { return g.vertexCount(v, vertexLink) }

// VertexLink returns the local-th simplex of the link of v.
func (g *Grid) VertexLink(v, local int) (int, error) {
	return g.vertexQuery(v, local, vertexLink)
}

// VertexPoint returns the position of v: origin + spacing·coordinates on the
// non-flat axes, origin on the flat ones.
func (g *Grid) VertexPoint(v int) (r3.Vec, error) {
	if g.checked {
		if err := g.checkID(v, g.vertexNumber); err != nil {
			return r3.Vec{}, err
		}
	}

	p := g.vertexCoords(v)
	pt := g.origin
	switch g.dimensionality {
	case 3:
		for a := 0; a < 3; a++ {
			pt[a] += g.spacing[a] * float64(p[a])
		}
	case 2:
		pt[g.di] += g.spacing[g.di] * float64(p[0])
		pt[g.dj] += g.spacing[g.dj] * float64(p[1])
	case 1:
		pt[g.di] += g.spacing[g.di] * float64(p[0])
	}

	return r3.Vec{X: pt[0], Y: pt[1], Z: pt[2]}, nil
}

// IsVertexOnBoundary reports whether v lies on the grid boundary. It returns
// false for an invalid id in checked mode and for the single vertex of a 0D
// grid.
func (g *Grid) IsVertexOnBoundary(v int) bool {
	if g.checked && g.checkID(v, g.vertexNumber) != nil {
		return false
	}
	switch g.vertexPositions[v] {
	case VertexCenter3D, VertexCenter2D, VertexCenter1D, VertexSingle0D:
		return false
	}

	return true
}
