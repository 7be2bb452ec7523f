// SPDX-License-Identifier: MIT

package implicit

type edgeSelector func(*edgeFormula) stencil

func edgeVertices(f *edgeFormula) stencil  { return f.vertices }
func edgeTriangles(f *edgeFormula) stencil { return f.triangles }
func edgeStar(f *edgeFormula) stencil      { return f.star }
func edgeLink(f *edgeFormula) stencil      { return f.link }

func (g *Grid) edgeCount(e int, sel edgeSelector) int {
	if g.checked && g.checkID(e, g.edgeNumber) != nil {
		return -1
	}

	return len(sel(&edgeBank[g.edgePositions[e]]))
}

func (g *Grid) edgeQuery(e, local int, sel edgeSelector) (int, error) {
	if g.checked {
		if err := g.checkID(e, g.edgeNumber); err != nil {
			return -1, err
		}
	}
	_, p := g.edgeCoords(e)

	return g.pick(sel(&edgeBank[g.edgePositions[e]]), local, p)
}

// EdgeVertexNumber returns 2 for a valid edge, -1 for an invalid id in
// checked mode.
func (g *Grid) EdgeVertexNumber(e int) int { return g.edgeCount(e, edgeVertices) }

// EdgeVertex returns endpoint local (0 or 1) of e; endpoint 0 has the
// smaller id.
func (g *Grid) EdgeVertex(e, local int) (int, error) {
	return g.edgeQuery(e, local, edgeVertices)
}

// EdgeTriangleNumber returns the number of triangles incident to e.
func (g *Grid) EdgeTriangleNumber(e int) int { return g.edgeCount(e, edgeTriangles) }

// EdgeTriangle returns the local-th triangle incident to e.
func (g *Grid) EdgeTriangle(e, local int) (int, error) {
	return g.edgeQuery(e, local, edgeTriangles)
}

// EdgeStarNumber returns the number of top-dimensional simplices incident to
// e. Edges of a 1D grid are cells and have an empty star.
func (g *Grid) EdgeStarNumber(e int) int { return g.edgeCount(e, edgeStar) }

// EdgeStar returns the local-th simplex of the star of e.
func (g *Grid) EdgeStar(e, local int) (int, error) {
	return g.edgeQuery(e, local, edgeStar)
}

// EdgeLinkNumber returns the size of the link of e: edges in 3D, vertices
// in 2D.
func (g *Grid) EdgeLinkNumber(e int) int { return g.edgeCount(e, edgeLink) }

// EdgeLink returns the local-th simplex of the link of e, the face of star
// entry local opposite e.
func (g *Grid) EdgeLink(e, local int) (int, error) {
	return g.edgeQuery(e, local, edgeLink)
}

// IsEdgeOnBoundary reports whether e lies on the grid boundary. Edges of a
// 1D grid are never on the boundary.
func (g *Grid) IsEdgeOnBoundary(e int) bool {
	if g.checked && g.checkID(e, g.edgeNumber) != nil {
		return false
	}

	return !edgeInterior[g.edgePositions[e]]
}
