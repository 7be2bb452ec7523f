package implicit

import (
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTablesMatchQueries compares every cached row with the per-id queries.
func TestTablesMatchQueries(t *testing.T) {
	g := quietGrid(t, [3]int{3, 4, 3})

	check := func(rows [][]int, n int, count func(int) int, get func(int, int) (int, error)) {
		t.Helper()
		require.Len(t, rows, n)
		for id, row := range rows {
			require.Len(t, row, count(id))
			for l, want := range row {
				got, err := get(id, l)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		}
	}

	check(g.VertexNeighbors(), g.vertexNumber, g.VertexNeighborNumber, g.VertexNeighbor)
	check(g.VertexEdges(), g.vertexNumber, g.VertexEdgeNumber, g.VertexEdge)
	check(g.VertexTriangles(), g.vertexNumber, g.VertexTriangleNumber, g.VertexTriangle)
	check(g.VertexStars(), g.vertexNumber, g.VertexStarNumber, g.VertexStar)
	check(g.VertexLinks(), g.vertexNumber, g.VertexLinkNumber, g.VertexLink)
	check(g.Edges(), g.edgeNumber, g.EdgeVertexNumber, g.EdgeVertex)
	check(g.EdgeTriangles(), g.edgeNumber, g.EdgeTriangleNumber, g.EdgeTriangle)
	check(g.EdgeStars(), g.edgeNumber, g.EdgeStarNumber, g.EdgeStar)
	check(g.EdgeLinks(), g.edgeNumber, g.EdgeLinkNumber, g.EdgeLink)
	check(g.Triangles(), g.triangleNumber, fixed(3), g.TriangleVertex)
	check(g.TriangleEdges(), g.triangleNumber, g.TriangleEdgeNumber, g.TriangleEdge)
	check(g.TriangleStars(), g.triangleNumber, g.TriangleStarNumber, g.TriangleStar)
	check(g.TriangleLinks(), g.triangleNumber, g.TriangleLinkNumber, g.TriangleLink)
	check(g.Tetrahedra(), g.tetrahedronNumber, fixed(4), g.TetrahedronVertex)
	check(g.TetrahedronEdges(), g.tetrahedronNumber, fixed(6), g.TetrahedronEdge)
	check(g.TetrahedronTriangles(), g.tetrahedronNumber, fixed(4), g.TetrahedronTriangle)
	check(g.TetrahedronNeighbors(), g.tetrahedronNumber, g.TetrahedronNeighborNumber, g.TetrahedronNeighbor)
	check(g.CellTriangles(), g.cellNumber, g.CellTriangleNumber, g.CellTriangle)

	cellEdges, err := g.CellEdges()
	require.NoError(t, err)
	check(cellEdges, g.cellNumber, g.CellEdgeNumber, g.CellEdge)
	cellNeighbors, err := g.CellNeighbors()
	require.NoError(t, err)
	check(cellNeighbors, g.cellNumber, g.CellNeighborNumber, g.CellNeighbor)

	g2 := quietGrid(t, [3]int{4, 3, 1})
	check(g2.TriangleNeighbors(), g2.triangleNumber, g2.TriangleNeighborNumber, g2.TriangleNeighbor)
}

// TestTablesBuiltOnce hammers the first access from many goroutines.
func TestTablesBuiltOnce(t *testing.T) {
	g := quietGrid(t, [3]int{5, 5, 5})

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	results := make([][][]int, readers)
	for r := 0; r < readers; r++ {
		go func(r int) {
			defer wg.Done()
			results[r] = g.VertexStars()
			_ = g.EdgeLinks()
		}(r)
	}
	wg.Wait()

	require.Equal(t, 1, g.tables[TableVertexStars].builds)
	require.Equal(t, 1, g.tables[TableEdgeLinks].builds)
	require.Equal(t, 0, g.tables[TableVertexNeighbors].builds)
	for r := 1; r < readers; r++ {
		require.Same(t, &results[0][0][0], &results[r][0][0], "readers must share one table")
	}

	_ = g.VertexStars()
	require.Equal(t, 1, g.tables[TableVertexStars].builds)
}

func TestPrecompute(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	g, err := NewGrid([3]float64{}, [3]float64{1, 1, 1}, [3]int{3, 3, 3}, WithLogger(logger))
	require.NoError(t, err)
	hook.Reset()

	require.NoError(t, g.Precompute(TableVertexNeighbors, TableTetrahedronNeighbors))
	assert.Equal(t, 1, g.tables[TableVertexNeighbors].builds)
	assert.Equal(t, 1, g.tables[TableTetrahedronNeighbors].builds)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "vertex neighbors", entries[0].Data["table"])
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)

	require.Error(t, g.Precompute(Table(99)))

	g1 := quietGrid(t, [3]int{1, 4, 1})
	err = g1.Precompute(TableCellNeighbors)
	require.ErrorIs(t, err, ErrNotImplemented1D)
}

func TestTableString(t *testing.T) {
	assert.Equal(t, "edge stars", TableEdgeStars.String())
	assert.Equal(t, "Table(42)", Table(42).String())
}
