// SPDX-License-Identifier: MIT

package implicit

// Per-axis boundary states. A coordinate is low at 0, high at the last
// vertex index and interior in between.
const (
	stateInterior = iota
	stateLow
	stateHigh
	stateCount
)

// axisState classifies coordinate c on an axis whose last vertex index is last.
func axisState(c, last int) int {
	switch {
	case c == 0:
		return stateLow
	case c == last:
		return stateHigh
	default:
		return stateInterior
	}
}

// VertexPosition is the boundary category of a vertex.
//
// In 3D the category index is sx + 3·sy + 9·sz over the per-axis states
// (interior, low, high). Axis naming: x low/high = Left/Right, y low/high =
// Top/Bottom, z low/high = Front/Back. The letter after a corner name is the
// canonical voxel corner it coincides with.
type VertexPosition uint8

// Vertex categories.
const (
	VertexCenter3D VertexPosition = iota
	VertexLeftFace3D
	VertexRightFace3D
	VertexTopFace3D
	VertexTopLeftEdge3D
	VertexTopRightEdge3D
	VertexBottomFace3D
	VertexBottomLeftEdge3D
	VertexBottomRightEdge3D
	VertexFrontFace3D
	VertexLeftFrontEdge3D
	VertexRightFrontEdge3D
	VertexTopFrontEdge3D
	VertexTopLeftFrontCorner3D  // a
	VertexTopRightFrontCorner3D // b
	VertexBottomFrontEdge3D
	VertexBottomLeftFrontCorner3D  // c
	VertexBottomRightFrontCorner3D // d
	VertexBackFace3D
	VertexLeftBackEdge3D
	VertexRightBackEdge3D
	VertexTopBackEdge3D
	VertexTopLeftBackCorner3D  // e
	VertexTopRightBackCorner3D // f
	VertexBottomBackEdge3D
	VertexBottomLeftBackCorner3D  // g
	VertexBottomRightBackCorner3D // h

	VertexCenter2D
	VertexLeftEdge2D
	VertexRightEdge2D
	VertexTopEdge2D
	VertexTopLeftCorner2D  // a
	VertexTopRightCorner2D // b
	VertexBottomEdge2D
	VertexBottomLeftCorner2D  // c
	VertexBottomRightCorner2D // d

	VertexCenter1D
	VertexLeftCorner1D
	VertexRightCorner1D

	VertexSingle0D

	vertexPositionCount
)

var vertexPositionNames = [vertexPositionCount]string{
	"Center3D", "LeftFace3D", "RightFace3D",
	"TopFace3D", "TopLeftEdge3D", "TopRightEdge3D",
	"BottomFace3D", "BottomLeftEdge3D", "BottomRightEdge3D",
	"FrontFace3D", "LeftFrontEdge3D", "RightFrontEdge3D",
	"TopFrontEdge3D", "TopLeftFrontCorner3D", "TopRightFrontCorner3D",
	"BottomFrontEdge3D", "BottomLeftFrontCorner3D", "BottomRightFrontCorner3D",
	"BackFace3D", "LeftBackEdge3D", "RightBackEdge3D",
	"TopBackEdge3D", "TopLeftBackCorner3D", "TopRightBackCorner3D",
	"BottomBackEdge3D", "BottomLeftBackCorner3D", "BottomRightBackCorner3D",
	"Center2D", "LeftEdge2D", "RightEdge2D",
	"TopEdge2D", "TopLeftCorner2D", "TopRightCorner2D",
	"BottomEdge2D", "BottomLeftCorner2D", "BottomRightCorner2D",
	"Center1D", "LeftCorner1D", "RightCorner1D",
	"Single0D",
}

// String returns the category name.
func (p VertexPosition) String() string {
	if p < vertexPositionCount {
		return vertexPositionNames[p]
	}

	return "VertexPosition(?)"
}

// vertexPosition3D maps per-axis states to a 3D vertex category.
func vertexPosition3D(sx, sy, sz int) VertexPosition {
	return VertexPosition(sx + 3*sy + 9*sz)
}

// vertexPosition2D maps per-axis states to a 2D vertex category.
func vertexPosition2D(sx, sy int) VertexPosition {
	return VertexCenter2D + VertexPosition(sx+3*sy)
}

// EdgePosition is the boundary category of an edge: its family plus the
// states of the axes the edge does not run along.
//
// 3D families: L (x axis, a-b), H (y axis, a-c), P (z axis, a-e),
// D1 (b-c, xy diagonal), D2 (a-g, yz diagonal), D3 (b-e, xz diagonal) and
// D4 (b-g, the voxel diagonal). 2D families: L (a-b), H (a-c), D1 (b-c).
type EdgePosition uint8

// Edge categories.
const (
	// L edges, transverse axes y then z.
	EdgeLInterior EdgePosition = iota
	EdgeLTop
	EdgeLBottom
	EdgeLFront
	EdgeLTopFront
	EdgeLBottomFront
	EdgeLBack
	EdgeLTopBack
	EdgeLBottomBack

	// H edges, transverse axes x then z.
	EdgeHInterior
	EdgeHLeft
	EdgeHRight
	EdgeHFront
	EdgeHLeftFront
	EdgeHRightFront
	EdgeHBack
	EdgeHLeftBack
	EdgeHRightBack

	// P edges, transverse axes x then y.
	EdgePInterior
	EdgePLeft
	EdgePRight
	EdgePTop
	EdgePTopLeft
	EdgePTopRight
	EdgePBottom
	EdgePBottomLeft
	EdgePBottomRight

	EdgeD1Interior
	EdgeD1Front
	EdgeD1Back

	EdgeD2Interior
	EdgeD2Left
	EdgeD2Right

	EdgeD3Interior
	EdgeD3Top
	EdgeD3Bottom

	EdgeD4

	Edge2DLInterior
	Edge2DLTop
	Edge2DLBottom
	Edge2DHInterior
	Edge2DHLeft
	Edge2DHRight
	Edge2DD1

	Edge1D

	edgePositionCount
)

var edgePositionNames = [edgePositionCount]string{
	"LInterior", "LTop", "LBottom", "LFront", "LTopFront", "LBottomFront", "LBack", "LTopBack", "LBottomBack",
	"HInterior", "HLeft", "HRight", "HFront", "HLeftFront", "HRightFront", "HBack", "HLeftBack", "HRightBack",
	"PInterior", "PLeft", "PRight", "PTop", "PTopLeft", "PTopRight", "PBottom", "PBottomLeft", "PBottomRight",
	"D1Interior", "D1Front", "D1Back",
	"D2Interior", "D2Left", "D2Right",
	"D3Interior", "D3Top", "D3Bottom",
	"D4",
	"2DLInterior", "2DLTop", "2DLBottom", "2DHInterior", "2DHLeft", "2DHRight", "2DD1",
	"1D",
}

// String returns the category name.
func (p EdgePosition) String() string {
	if p < edgePositionCount {
		return edgePositionNames[p]
	}

	return "EdgePosition(?)"
}

// Edge families, in id layout order.
const (
	familyL = iota
	familyH
	familyP
	familyD1
	familyD2
	familyD3
	familyD4
	edgeFamilies3D = 7
	edgeFamilies2D = 3
)

var (
	// edgeTransverse3D lists, per family, the axes the edge does not run along.
	edgeTransverse3D = [edgeFamilies3D][]int{{1, 2}, {0, 2}, {0, 1}, {2}, {0}, {1}, {}}
	edgeTransverse2D = [edgeFamilies2D][]int{{1}, {0}, {}}

	edgeFamilyBase3D = [edgeFamilies3D]EdgePosition{
		EdgeLInterior, EdgeHInterior, EdgePInterior, EdgeD1Interior, EdgeD2Interior, EdgeD3Interior, EdgeD4,
	}
	edgeFamilyBase2D = [edgeFamilies2D]EdgePosition{Edge2DLInterior, Edge2DHInterior, Edge2DD1}

	// edgeInterior marks categories whose transverse states are all interior.
	edgeInterior [edgePositionCount]bool
)

// edgePosition folds the transverse states of family f into a category.
func edgePosition(base EdgePosition, transverse []int, state [3]int) EdgePosition {
	p, w := base, EdgePosition(1)
	for _, axis := range transverse {
		p += EdgePosition(state[axis]) * w
		w *= stateCount
	}

	return p
}

// TrianglePosition is the family of a triangle. The boundary state of
// axis-aligned families is derived from the triangle's coordinates at query
// time.
type TrianglePosition uint8

// Triangle categories.
const (
	TriangleXY TrianglePosition = iota
	TriangleXZ
	TriangleYZ
	TriangleDiagonal1
	TriangleDiagonal2
	TriangleDiagonal3
	Triangle2DTop
	Triangle2DBottom

	trianglePositionCount
)

const triangleFamilies3D = 6

var trianglePositionNames = [trianglePositionCount]string{
	"XY", "XZ", "YZ", "Diagonal1", "Diagonal2", "Diagonal3", "2DTop", "2DBottom",
}

// String returns the category name.
func (p TrianglePosition) String() string {
	if p < trianglePositionCount {
		return trianglePositionNames[p]
	}

	return "TrianglePosition(?)"
}

// triangleTransverse is the axis a 3D triangle family is orthogonal to, or
// -1 for the interior diagonal families.
var triangleTransverse = [triangleFamilies3D]int{2, 1, 0, -1, -1, -1}
