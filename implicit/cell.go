// SPDX-License-Identifier: MIT

package implicit

// Cells are the top-dimensional simplices: tetrahedra in 3D, triangles in
// 2D, edges in 1D. The Cell* methods dispatch on the dimensionality.

func (g *Grid) validCell(c int) bool {
	return !g.checked || g.checkID(c, g.cellNumber) == nil
}

// CellVertexNumber returns dimensionality+1, 0 for a 0D grid and -1 for an
// invalid id in checked mode.
func (g *Grid) CellVertexNumber(c int) int {
	if g.dimensionality < 1 {
		return 0
	}
	if !g.validCell(c) {
		return -1
	}

	return g.dimensionality + 1
}

// CellVertex returns vertex local of cell c.
func (g *Grid) CellVertex(c, local int) (int, error) {
	switch g.dimensionality {
	case 3:
		return g.TetrahedronVertex(c, local)
	case 2:
		return g.TriangleVertex(c, local)
	case 1:
		return g.EdgeVertex(c, local)
	}

	return -1, ErrUnsupportedDimension
}

// CellEdgeNumber returns 6 in 3D, 3 in 2D and 0 otherwise.
func (g *Grid) CellEdgeNumber(c int) int {
	if !g.validCell(c) {
		return -1
	}
	switch g.dimensionality {
	case 3:
		return 6
	case 2:
		return 3
	}

	return 0
}

// CellEdge returns edge local of cell c. A 1D cell is itself an edge and
// has no edge faces; the query reports ErrNotImplemented1D.
func (g *Grid) CellEdge(c, local int) (int, error) {
	switch g.dimensionality {
	case 3:
		return g.TetrahedronEdge(c, local)
	case 2:
		return g.TriangleEdge(c, local)
	case 1:
		g.log.WithField("cell", c).Error("cell edge queries are not implemented for 1D grids")
		return -1, ErrNotImplemented1D
	}

	return -1, ErrUnsupportedDimension
}

// CellTriangleNumber returns 4 in 3D and 0 otherwise.
func (g *Grid) CellTriangleNumber(c int) int {
	if !g.validCell(c) {
		return -1
	}
	if g.dimensionality == 3 {
		return 4
	}

	return 0
}

// CellTriangle returns face local of a 3D cell.
func (g *Grid) CellTriangle(c, local int) (int, error) {
	if g.dimensionality != 3 {
		return -1, ErrUnsupportedDimension
	}

	return g.TetrahedronTriangle(c, local)
}

// CellNeighborNumber returns the number of cells sharing a facet with c.
// It logs an error and returns -1 on a 1D grid.
func (g *Grid) CellNeighborNumber(c int) int {
	switch g.dimensionality {
	case 3:
		return g.TetrahedronNeighborNumber(c)
	case 2:
		return g.TriangleNeighborNumber(c)
	case 1:
		g.log.WithField("cell", c).Error("cell neighbor queries are not implemented for 1D grids")
		return -1
	}

	return 0
}

// CellNeighbor returns the local-th cell sharing a facet with c.
// It reports ErrNotImplemented1D on a 1D grid.
func (g *Grid) CellNeighbor(c, local int) (int, error) {
	switch g.dimensionality {
	case 3:
		return g.TetrahedronNeighbor(c, local)
	case 2:
		return g.TriangleNeighbor(c, local)
	case 1:
		g.log.WithField("cell", c).Error("cell neighbor queries are not implemented for 1D grids")
		return -1, ErrNotImplemented1D
	}

	return -1, ErrUnsupportedDimension
}
