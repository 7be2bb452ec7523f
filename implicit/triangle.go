// SPDX-License-Identifier: MIT

package implicit

type triangleSelector func(*triangleFormula) stencil

func triangleVertices(f *triangleFormula) stencil { return f.vertices }
func triangleEdges(f *triangleFormula) stencil    { return f.edges }
func triangleStar(f *triangleFormula) stencil     { return f.star }
func triangleLink(f *triangleFormula) stencil     { return f.link }

// formulaOfTriangle selects the formulas of triangle t and returns its base.
// Axis-aligned 3D families depend on the state of their orthogonal axis.
func (g *Grid) formulaOfTriangle(t int) (*triangleFormula, [3]int) {
	class, p := g.triangleCoords(t)
	state := stateInterior
	if g.dimensionality == 3 {
		if a := triangleTransverse[class>>1]; a >= 0 {
			state = axisState(p[a], g.ldims[a]-1)
		}
	}

	return &triangleBank[g.trianglePositions[t]][class&1][state], p
}

func (g *Grid) triangleCount(t int, sel triangleSelector) int {
	if g.checked && g.checkID(t, g.triangleNumber) != nil {
		return -1
	}
	f, _ := g.formulaOfTriangle(t)

	return len(sel(f))
}

func (g *Grid) triangleQuery(t, local int, sel triangleSelector) (int, error) {
	if g.checked {
		if err := g.checkID(t, g.triangleNumber); err != nil {
			return -1, err
		}
	}
	f, p := g.formulaOfTriangle(t)

	return g.pick(sel(f), local, p)
}

// TriangleVertex returns vertex local (0..2) of t in ascending id order.
func (g *Grid) TriangleVertex(t, local int) (int, error) {
	return g.triangleQuery(t, local, triangleVertices)
}

// TriangleEdgeNumber returns 3 for a valid triangle.
func (g *Grid) TriangleEdgeNumber(t int) int { return g.triangleCount(t, triangleEdges) }

// TriangleEdge returns edge local (0..2) of t in ascending id order.
func (g *Grid) TriangleEdge(t, local int) (int, error) {
	return g.triangleQuery(t, local, triangleEdges)
}

// TriangleStarNumber returns the number of tetrahedra incident to t: 1 or 2
// in 3D, 0 in 2D where triangles are cells.
func (g *Grid) TriangleStarNumber(t int) int { return g.triangleCount(t, triangleStar) }

// TriangleStar returns the local-th tetrahedron incident to t.
func (g *Grid) TriangleStar(t, local int) (int, error) {
	return g.triangleQuery(t, local, triangleStar)
}

// TriangleLinkNumber returns the size of the link of t, always equal to
// TriangleStarNumber(t).
func (g *Grid) TriangleLinkNumber(t int) int { return g.triangleCount(t, triangleLink) }

// TriangleLink returns the vertex of star entry local opposite t.
func (g *Grid) TriangleLink(t, local int) (int, error) {
	return g.triangleQuery(t, local, triangleLink)
}

// TriangleNeighborNumber returns the number of 2D triangles sharing an edge
// with t. It is 0 in 3D.
func (g *Grid) TriangleNeighborNumber(t int) int {
	if g.checked && g.checkID(t, g.triangleNumber) != nil {
		return -1
	}
	f, p := g.formulaOfTriangle(t)
	n := 0
	for _, r := range f.neighbors {
		if g.cellExists(p, r.off) {
			n++
		}
	}

	return n
}

// TriangleNeighbor returns the local-th 2D triangle sharing an edge with t,
// in ascending id order.
func (g *Grid) TriangleNeighbor(t, local int) (int, error) {
	if g.checked {
		if err := g.checkID(t, g.triangleNumber); err != nil {
			return -1, err
		}
	}
	f, p := g.formulaOfTriangle(t)

	return g.pickExisting(f.neighbors, local, p)
}

// pickExisting resolves the local-th candidate of s whose cell exists.
func (g *Grid) pickExisting(s stencil, local int, p [3]int) (int, error) {
	n := 0
	for _, r := range s {
		if !g.cellExists(p, r.off) {
			continue
		}
		if n == local {
			return g.resolve(r, p), nil
		}
		n++
	}

	return -1, ErrLocalOutOfRange
}

// IsTriangleOnBoundary reports whether t is a 3D triangle with a single
// incident tetrahedron. Triangles of a 2D grid are cells and never on the
// boundary.
func (g *Grid) IsTriangleOnBoundary(t int) bool {
	if g.dimensionality != 3 {
		return false
	}

	return g.TriangleStarNumber(t) == 1
}
