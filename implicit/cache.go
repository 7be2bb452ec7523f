// SPDX-License-Identifier: MIT

package implicit

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Table names one of the full adjacency tables a Grid can materialize.
type Table int

// Cached tables.
const (
	TableVertexNeighbors Table = iota
	TableVertexEdges
	TableVertexTriangles
	TableVertexStars
	TableVertexLinks
	TableEdges
	TableEdgeTriangles
	TableEdgeStars
	TableEdgeLinks
	TableTriangles
	TableTriangleEdges
	TableTriangleStars
	TableTriangleLinks
	TableTriangleNeighbors
	TableTetrahedra
	TableTetrahedronEdges
	TableTetrahedronTriangles
	TableTetrahedronNeighbors
	TableCellEdges
	TableCellTriangles
	TableCellNeighbors

	tableCount
)

var tableNames = [tableCount]string{
	"vertex neighbors", "vertex edges", "vertex triangles", "vertex stars", "vertex links",
	"edges", "edge triangles", "edge stars", "edge links",
	"triangles", "triangle edges", "triangle stars", "triangle links", "triangle neighbors",
	"tetrahedra", "tetrahedron edges", "tetrahedron triangles", "tetrahedron neighbors",
	"cell edges", "cell triangles", "cell neighbors",
}

// String returns the table name.
func (t Table) String() string {
	if t >= 0 && t < tableCount {
		return tableNames[t]
	}

	return fmt.Sprintf("Table(%d)", int(t))
}

// lazyTable is built at most once; builds counts completed builds.
type lazyTable struct {
	once   sync.Once
	rows   [][]int
	err    error
	builds int
}

// cached returns table kind, building it on first use.
func (g *Grid) cached(kind Table) ([][]int, error) {
	if kind < 0 || kind >= tableCount {
		return nil, fmt.Errorf("implicit: unknown table %d", int(kind))
	}
	if !g.configured {
		return nil, ErrNotConfigured
	}

	lt := &g.tables[kind]
	lt.once.Do(func() {
		start := time.Now()
		lt.rows, lt.err = g.buildTable(kind)
		lt.builds++
		entry := g.log.WithFields(logrus.Fields{
			"table":   kind.String(),
			"rows":    len(lt.rows),
			"elapsed": time.Since(start),
		})
		if lt.err != nil {
			entry.WithError(lt.err).Error("adjacency table build failed")
			return
		}
		entry.Debug("adjacency table built")
	})

	return lt.rows, lt.err
}

func (g *Grid) buildTable(kind Table) ([][]int, error) {
	switch kind {
	case TableVertexNeighbors:
		return g.fill(g.vertexNumber, g.VertexNeighborNumber, g.VertexNeighbor)
	case TableVertexEdges:
		return g.fill(g.vertexNumber, g.VertexEdgeNumber, g.VertexEdge)
	case TableVertexTriangles:
		return g.fill(g.vertexNumber, g.VertexTriangleNumber, g.VertexTriangle)
	case TableVertexStars:
		return g.fill(g.vertexNumber, g.VertexStarNumber, g.VertexStar)
	case TableVertexLinks:
		return g.fill(g.vertexNumber, g.VertexLinkNumber, g.VertexLink)
	case TableEdges:
		return g.fill(g.edgeNumber, g.EdgeVertexNumber, g.EdgeVertex)
	case TableEdgeTriangles:
		return g.fill(g.edgeNumber, g.EdgeTriangleNumber, g.EdgeTriangle)
	case TableEdgeStars:
		return g.fill(g.edgeNumber, g.EdgeStarNumber, g.EdgeStar)
	case TableEdgeLinks:
		return g.fill(g.edgeNumber, g.EdgeLinkNumber, g.EdgeLink)
	case TableTriangles:
		return g.fill(g.triangleNumber, fixed(3), g.TriangleVertex)
	case TableTriangleEdges:
		return g.fill(g.triangleNumber, g.TriangleEdgeNumber, g.TriangleEdge)
	case TableTriangleStars:
		return g.fill(g.triangleNumber, g.TriangleStarNumber, g.TriangleStar)
	case TableTriangleLinks:
		return g.fill(g.triangleNumber, g.TriangleLinkNumber, g.TriangleLink)
	case TableTriangleNeighbors:
		return g.fill(g.triangleNumber, g.TriangleNeighborNumber, g.TriangleNeighbor)
	case TableTetrahedra:
		return g.fill(g.tetrahedronNumber, fixed(4), g.TetrahedronVertex)
	case TableTetrahedronEdges:
		return g.fill(g.tetrahedronNumber, fixed(6), g.TetrahedronEdge)
	case TableTetrahedronTriangles:
		return g.fill(g.tetrahedronNumber, fixed(4), g.TetrahedronTriangle)
	case TableTetrahedronNeighbors:
		return g.fill(g.tetrahedronNumber, g.TetrahedronNeighborNumber, g.TetrahedronNeighbor)
	case TableCellEdges:
		if g.dimensionality == 1 {
			return nil, ErrNotImplemented1D
		}
		return g.fill(g.cellNumber, g.CellEdgeNumber, g.CellEdge)
	case TableCellTriangles:
		return g.fill(g.cellNumber, g.CellTriangleNumber, g.CellTriangle)
	case TableCellNeighbors:
		if g.dimensionality == 1 {
			return nil, ErrNotImplemented1D
		}
		return g.fill(g.cellNumber, g.CellNeighborNumber, g.CellNeighbor)
	}

	return nil, fmt.Errorf("implicit: unknown table %d", int(kind))
}

func fixed(n int) func(int) int {
	return func(int) int { return n }
}

// fill builds n rows; all rows share one backing array.
func (g *Grid) fill(n int, count func(int) int, get func(int, int) (int, error)) ([][]int, error) {
	rows := make([][]int, n)
	total := 0
	for id := 0; id < n; id++ {
		total += count(id)
	}
	flat := make([]int, total)
	for id := 0; id < n; id++ {
		c := count(id)
		rows[id], flat = flat[:c:c], flat[c:]
		for local := 0; local < c; local++ {
			v, err := get(id, local)
			if err != nil {
				return nil, fmt.Errorf("implicit: row %d entry %d: %w", id, local, err)
			}
			rows[id][local] = v
		}
	}

	return rows, nil
}

// Precompute builds the given tables now instead of on first access.
func (g *Grid) Precompute(kinds ...Table) error {
	for _, kind := range kinds {
		if _, err := g.cached(kind); err != nil {
			return fmt.Errorf("implicit: precompute %s: %w", kind, err)
		}
	}

	return nil
}

func (g *Grid) rows(kind Table) [][]int {
	rows, _ := g.cached(kind)
	return rows
}

// VertexNeighbors returns the neighbour list of every vertex.
func (g *Grid) VertexNeighbors() [][]int { return g.rows(TableVertexNeighbors) }

// VertexEdges returns the incident edges of every vertex.
func (g *Grid) VertexEdges() [][]int { return g.rows(TableVertexEdges) }

// VertexTriangles returns the incident triangles of every vertex.
func (g *Grid) VertexTriangles() [][]int { return g.rows(TableVertexTriangles) }

// VertexStars returns the star of every vertex.
func (g *Grid) VertexStars() [][]int { return g.rows(TableVertexStars) }

// VertexLinks returns the link of every vertex.
func (g *Grid) VertexLinks() [][]int { return g.rows(TableVertexLinks) }

// Edges returns the two endpoints of every edge.
func (g *Grid) Edges() [][]int { return g.rows(TableEdges) }

// EdgeTriangles returns the incident triangles of every edge.
func (g *Grid) EdgeTriangles() [][]int { return g.rows(TableEdgeTriangles) }

// EdgeStars returns the star of every edge.
func (g *Grid) EdgeStars() [][]int { return g.rows(TableEdgeStars) }

// EdgeLinks returns the link of every edge.
func (g *Grid) EdgeLinks() [][]int { return g.rows(TableEdgeLinks) }

// Triangles returns the three vertices of every triangle.
func (g *Grid) Triangles() [][]int { return g.rows(TableTriangles) }

// TriangleEdges returns the three edges of every triangle.
func (g *Grid) TriangleEdges() [][]int { return g.rows(TableTriangleEdges) }

// TriangleStars returns the star of every triangle.
func (g *Grid) TriangleStars() [][]int { return g.rows(TableTriangleStars) }

// TriangleLinks returns the link of every triangle.
func (g *Grid) TriangleLinks() [][]int { return g.rows(TableTriangleLinks) }

// TriangleNeighbors returns the edge-adjacent triangles of every 2D triangle.
func (g *Grid) TriangleNeighbors() [][]int { return g.rows(TableTriangleNeighbors) }

// Tetrahedra returns the four vertices of every tetrahedron.
func (g *Grid) Tetrahedra() [][]int { return g.rows(TableTetrahedra) }

// TetrahedronEdges returns the six edges of every tetrahedron.
func (g *Grid) TetrahedronEdges() [][]int { return g.rows(TableTetrahedronEdges) }

// TetrahedronTriangles returns the four faces of every tetrahedron.
func (g *Grid) TetrahedronTriangles() [][]int { return g.rows(TableTetrahedronTriangles) }

// TetrahedronNeighbors returns the face-adjacent tetrahedra of every
// tetrahedron.
func (g *Grid) TetrahedronNeighbors() [][]int { return g.rows(TableTetrahedronNeighbors) }

// CellEdges returns the edges of every cell. It fails with
// ErrNotImplemented1D on a 1D grid.
func (g *Grid) CellEdges() ([][]int, error) { return g.cached(TableCellEdges) }

// CellTriangles returns the faces of every cell (empty rows below 3D).
func (g *Grid) CellTriangles() [][]int { return g.rows(TableCellTriangles) }

// CellNeighbors returns the facet-adjacent cells of every cell. It fails
// with ErrNotImplemented1D on a 1D grid.
func (g *Grid) CellNeighbors() ([][]int, error) { return g.cached(TableCellNeighbors) }
