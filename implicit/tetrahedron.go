// SPDX-License-Identifier: MIT

package implicit

type tetrahedronSelector func(*tetrahedronFormula) stencil

func tetrahedronVertices(f *tetrahedronFormula) stencil  { return f.vertices }
func tetrahedronEdges(f *tetrahedronFormula) stencil     { return f.edges }
func tetrahedronTriangles(f *tetrahedronFormula) stencil { return f.triangles }

func (g *Grid) tetrahedronQuery(t, local int, sel tetrahedronSelector) (int, error) {
	if g.checked {
		if err := g.checkID(t, g.tetrahedronNumber); err != nil {
			return -1, err
		}
	}
	c, p := g.tetrahedronCoords(t)

	return g.pick(sel(&tetrahedronBank[c]), local, p)
}

// TetrahedronVertex returns vertex local (0..3) of t in ascending id order.
func (g *Grid) TetrahedronVertex(t, local int) (int, error) {
	return g.tetrahedronQuery(t, local, tetrahedronVertices)
}

// TetrahedronEdge returns edge local (0..5) of t in ascending id order.
func (g *Grid) TetrahedronEdge(t, local int) (int, error) {
	return g.tetrahedronQuery(t, local, tetrahedronEdges)
}

// TetrahedronTriangle returns face local (0..3) of t in ascending id order.
func (g *Grid) TetrahedronTriangle(t, local int) (int, error) {
	return g.tetrahedronQuery(t, local, tetrahedronTriangles)
}

// TetrahedronNeighborNumber returns the number of tetrahedra sharing a face
// with t: 4 minus the faces of t lying on the grid boundary.
func (g *Grid) TetrahedronNeighborNumber(t int) int {
	if g.checked && g.checkID(t, g.tetrahedronNumber) != nil {
		return -1
	}
	c, p := g.tetrahedronCoords(t)
	n := 0
	for _, r := range tetrahedronBank[c].neighbors {
		if g.cellExists(p, r.off) {
			n++
		}
	}

	return n
}

// TetrahedronNeighbor returns the local-th tetrahedron sharing a face with
// t, in ascending id order.
func (g *Grid) TetrahedronNeighbor(t, local int) (int, error) {
	if g.checked {
		if err := g.checkID(t, g.tetrahedronNumber); err != nil {
			return -1, err
		}
	}
	c, p := g.tetrahedronCoords(t)

	return g.pickExisting(tetrahedronBank[c].neighbors, local, p)
}
