// SPDX-License-Identifier: MIT

package implicit

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/triangulation"
	"github.com/sirupsen/logrus"
)

var _ triangulation.Triangulation = (*Grid)(nil)

// Grid is an implicit triangulation of a regular grid.
//
// The zero value is not usable; build one with New and configure it with
// SetInputGrid, or use NewGrid for both steps. A configured Grid is
// immutable apart from its lazily built tables and is safe for concurrent
// use.
type Grid struct {
	log     logrus.FieldLogger
	checked bool

	configured     bool
	dimensionality int
	origin         [3]float64
	spacing        [3]float64
	dimensions     [3]int
	nbvoxels       [3]int

	// ldims holds the vertex counts along the logical axes: the non-flat
	// axes in x, y, z order, padded with 1.
	ldims [3]int
	// di and dj are the physical axes of the two logical axes of a 2D grid
	// (di alone for 1D).
	di, dj int

	vshift    [2]int
	esetdims  [7]int
	esetshift [7]int
	eshift    [14]int
	tsetdims  [6]int
	tsetshift [6]int
	tshift    [12]int
	tetshift  [2]int

	vertexNumber      int
	edgeNumber        int
	triangleNumber    int
	tetrahedronNumber int
	cellNumber        int

	accelerated bool
	mod         [2]int
	div         [2]uint

	vertexPositions   []VertexPosition
	edgePositions     []EdgePosition
	trianglePositions []TrianglePosition

	tables [tableCount]lazyTable
}

// New returns an unconfigured Grid.
func New(opts ...Option) *Grid {
	g := &Grid{
		log:            logrus.StandardLogger().WithField("component", logComponent),
		checked:        DefaultBoundsChecking,
		dimensionality: -1,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewGrid builds and configures a Grid in one step.
func NewGrid(origin, spacing [3]float64, dims [3]int, opts ...Option) (*Grid, error) {
	g := New(opts...)
	if err := g.SetInputGrid(origin, spacing, dims); err != nil {
		return nil, err
	}

	return g, nil
}

// SetInputGrid configures the grid geometry. It may succeed only once per
// Grid; a failed call leaves the Grid unconfigured.
//
// The dimensionality is the number of entries of dims greater than 1.
// Complexity: O(V + E + T) for the position tables.
func (g *Grid) SetInputGrid(origin, spacing [3]float64, dims [3]int) error {
	if g.configured {
		return ErrAlreadyConfigured
	}
	for a, d := range dims {
		if d < 1 {
			return fmt.Errorf("%w: dims[%d]=%d", ErrInvalidDimensions, a, d)
		}
	}

	g.origin, g.spacing, g.dimensions = origin, spacing, dims
	g.dimensionality = 0
	for a, d := range dims {
		g.nbvoxels[a] = d - 1
		if d > 1 {
			g.dimensionality++
		}
	}

	switch g.dimensionality {
	case 3:
		g.setStrides3D()
	case 2:
		g.setStrides2D()
	case 1:
		g.setStrides1D()
	default:
		g.ldims = [3]int{1, 1, 1}
		g.vertexNumber = 1
	}
	g.checkAcceleration()
	g.classify()
	g.configured = true

	g.log.WithFields(logrus.Fields{
		"dimensionality": g.dimensionality,
		"dimensions":     dims,
		"vertices":       g.vertexNumber,
		"cells":          g.cellNumber,
	}).Debug("grid configured")

	return nil
}

func (g *Grid) setStrides3D() {
	x, y, z := g.dimensions[0], g.dimensions[1], g.dimensions[2]
	g.ldims = g.dimensions
	g.di, g.dj = 0, 1

	g.vshift = [2]int{x, x * y}

	g.esetdims = [7]int{
		(x - 1) * y * z,
		x * (y - 1) * z,
		x * y * (z - 1),
		(x - 1) * (y - 1) * z,
		x * (y - 1) * (z - 1),
		(x - 1) * y * (z - 1),
		(x - 1) * (y - 1) * (z - 1),
	}
	g.esetshift = cumulative7(g.esetdims)
	g.eshift = [14]int{
		x - 1, (x - 1) * y,
		x, x * (y - 1),
		x, x * y,
		x - 1, (x - 1) * (y - 1),
		x, x * (y - 1),
		x - 1, (x - 1) * y,
		x - 1, (x - 1) * (y - 1),
	}

	g.tsetdims = [6]int{
		(x - 1) * (y - 1) * z * 2,
		(x - 1) * y * (z - 1) * 2,
		x * (y - 1) * (z - 1) * 2,
		(x - 1) * (y - 1) * (z - 1) * 2,
		(x - 1) * (y - 1) * (z - 1) * 2,
		(x - 1) * (y - 1) * (z - 1) * 2,
	}
	for f, acc := 0, 0; f < 6; f++ {
		acc += g.tsetdims[f]
		g.tsetshift[f] = acc
	}
	g.tshift = [12]int{
		(x - 1) * 2, (x - 1) * (y - 1) * 2,
		(x - 1) * 2, (x - 1) * y * 2,
		x * 2, x * (y - 1) * 2,
		(x - 1) * 2, (x - 1) * (y - 1) * 2,
		(x - 1) * 2, (x - 1) * (y - 1) * 2,
		(x - 1) * 2, (x - 1) * (y - 1) * 2,
	}

	g.tetshift = [2]int{(x - 1) * 6, (x - 1) * (y - 1) * 6}

	g.vertexNumber = x * y * z
	g.edgeNumber = g.esetshift[6]
	g.triangleNumber = g.tsetshift[5]
	g.tetrahedronNumber = (x - 1) * (y - 1) * (z - 1) * 6
	g.cellNumber = g.tetrahedronNumber
}

func (g *Grid) setStrides2D() {
	switch {
	case g.dimensions[0] == 1:
		g.di, g.dj = 1, 2
	case g.dimensions[1] == 1:
		g.di, g.dj = 0, 2
	default:
		g.di, g.dj = 0, 1
	}
	in, jn := g.dimensions[g.di], g.dimensions[g.dj]
	g.ldims = [3]int{in, jn, 1}

	g.vshift[0] = in

	g.esetdims[0] = (in - 1) * jn
	g.esetdims[1] = in * (jn - 1)
	g.esetdims[2] = (in - 1) * (jn - 1)
	for f, acc := 0, 0; f < 3; f++ {
		acc += g.esetdims[f]
		g.esetshift[f] = acc
	}
	g.eshift[0] = in - 1
	g.eshift[2] = in
	g.eshift[4] = in - 1

	g.tshift[0] = (in - 1) * 2

	g.vertexNumber = in * jn
	g.edgeNumber = g.esetshift[2]
	g.triangleNumber = (in - 1) * (jn - 1) * 2
	g.cellNumber = g.triangleNumber
}

func (g *Grid) setStrides1D() {
	for a, d := range g.dimensions {
		if d > 1 {
			g.di = a
			break
		}
	}
	g.ldims = [3]int{g.dimensions[g.di], 1, 1}
	g.vertexNumber = g.dimensions[g.di]
	g.edgeNumber = g.vertexNumber - 1
	g.cellNumber = g.edgeNumber
}

func cumulative7(in [7]int) [7]int {
	var out [7]int
	acc := 0
	for f, n := range in {
		acc += n
		out[f] = acc
	}

	return out
}

// classify fills the position tables, walking every family in id order.
func (g *Grid) classify() {
	last := [3]int{g.ldims[0] - 1, g.ldims[1] - 1, g.ldims[2] - 1}

	g.vertexPositions = make([]VertexPosition, 0, g.vertexNumber)
	switch g.dimensionality {
	case 3:
		for k := 0; k < g.ldims[2]; k++ {
			for j := 0; j < g.ldims[1]; j++ {
				for i := 0; i < g.ldims[0]; i++ {
					g.vertexPositions = append(g.vertexPositions,
						vertexPosition3D(axisState(i, last[0]), axisState(j, last[1]), axisState(k, last[2])))
				}
			}
		}
	case 2:
		for j := 0; j < g.ldims[1]; j++ {
			for i := 0; i < g.ldims[0]; i++ {
				g.vertexPositions = append(g.vertexPositions,
					vertexPosition2D(axisState(i, last[0]), axisState(j, last[1])))
			}
		}
	case 1:
		for i := 0; i < g.ldims[0]; i++ {
			g.vertexPositions = append(g.vertexPositions,
				VertexCenter1D+VertexPosition(axisState(i, last[0])))
		}
	default:
		g.vertexPositions = append(g.vertexPositions, VertexSingle0D)
	}

	g.edgePositions = make([]EdgePosition, 0, g.edgeNumber)
	switch g.dimensionality {
	case 3:
		for f := 0; f < edgeFamilies3D; f++ {
			g.appendEdgeFamily(edgeFamilyBase3D[f], edgeTransverse3D[f], tmpl3.edges[f], last)
		}
	case 2:
		for f := 0; f < edgeFamilies2D; f++ {
			g.appendEdgeFamily(edgeFamilyBase2D[f], edgeTransverse2D[f], tmpl2.edges[f], last)
		}
	case 1:
		for e := 0; e < g.edgeNumber; e++ {
			g.edgePositions = append(g.edgePositions, Edge1D)
		}
	}

	g.trianglePositions = make([]TrianglePosition, 0, g.triangleNumber)
	switch g.dimensionality {
	case 3:
		for f := 0; f < triangleFamilies3D; f++ {
			for n := 0; n < g.tsetdims[f]; n++ {
				g.trianglePositions = append(g.trianglePositions, TrianglePosition(f))
			}
		}
	case 2:
		for t := 0; t < g.triangleNumber; t++ {
			g.trianglePositions = append(g.trianglePositions, Triangle2DTop+TrianglePosition(t&1))
		}
	}
}

// appendEdgeFamily classifies one edge family. The family spans one vertex
// fewer along every axis its endpoints differ on.
func (g *Grid) appendEdgeFamily(base EdgePosition, transverse []int, ends [2]corner, last [3]int) {
	span := sub(ends[1].at(), ends[0].at())
	var n [3]int
	for a := 0; a < 3; a++ {
		n[a] = g.ldims[a]
		if span[a] != 0 {
			n[a]--
		}
	}
	for k := 0; k < n[2]; k++ {
		for j := 0; j < n[1]; j++ {
			for i := 0; i < n[0]; i++ {
				p := [3]int{i, j, k}
				var state [3]int
				for _, a := range transverse {
					state[a] = axisState(p[a], last[a])
				}
				g.edgePositions = append(g.edgePositions, edgePosition(base, transverse, state))
			}
		}
	}
}

// Dimensionality returns 0..3, or -1 before configuration.
func (g *Grid) Dimensionality() int { return g.dimensionality }

// Dimensions returns the configured vertex counts per physical axis.
func (g *Grid) Dimensions() [3]int { return g.dimensions }

// Origin returns the configured origin.
func (g *Grid) Origin() [3]float64 { return g.origin }

// Spacing returns the configured spacing.
func (g *Grid) Spacing() [3]float64 { return g.spacing }

// VertexNumber returns the number of vertices.
func (g *Grid) VertexNumber() int { return g.vertexNumber }

// EdgeNumber returns the number of edges.
func (g *Grid) EdgeNumber() int { return g.edgeNumber }

// TriangleNumber returns the number of triangles.
func (g *Grid) TriangleNumber() int { return g.triangleNumber }

// TetrahedronNumber returns the number of tetrahedra.
func (g *Grid) TetrahedronNumber() int { return g.tetrahedronNumber }

// CellNumber returns the number of top-dimensional simplices.
func (g *Grid) CellNumber() int { return g.cellNumber }

// Accelerated reports whether power-of-two decoding is active.
func (g *Grid) Accelerated() bool { return g.accelerated }

// VertexPosition returns the boundary category of vertex v.
func (g *Grid) VertexPosition(v int) (VertexPosition, error) {
	if v < 0 || v >= g.vertexNumber {
		return 0, ErrSimplexOutOfRange
	}

	return g.vertexPositions[v], nil
}

// EdgePosition returns the boundary category of edge e.
func (g *Grid) EdgePosition(e int) (EdgePosition, error) {
	if e < 0 || e >= g.edgeNumber {
		return 0, ErrSimplexOutOfRange
	}

	return g.edgePositions[e], nil
}

// TrianglePosition returns the family of triangle t.
func (g *Grid) TrianglePosition(t int) (TrianglePosition, error) {
	if t < 0 || t >= g.triangleNumber {
		return 0, ErrSimplexOutOfRange
	}

	return g.trianglePositions[t], nil
}
