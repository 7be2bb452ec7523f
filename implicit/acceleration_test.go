package implicit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAccelerationEquivalence compares shift/mask decoding with the
// division path on power-of-two grids.
func TestAccelerationEquivalence(t *testing.T) {
	for _, dims := range [][3]int{{4, 4, 4}, {8, 2, 4}, {4, 8, 1}, {1, 4, 2}} {
		fast := quietGrid(t, dims)
		require.True(t, fast.accelerated, "dims %v", dims)
		slow := quietGrid(t, dims)
		slow.accelerated = false

		for v := 0; v < fast.vertexNumber; v++ {
			require.Equal(t, slow.vertexCoords(v), fast.vertexCoords(v), "vertex %d in %v", v, dims)
			p := fast.vertexCoords(v)
			require.Equal(t, v, fast.vertexID(p[0], p[1], p[2]))

			for l := 0; l < fast.VertexStarNumber(v); l++ {
				a, err := fast.VertexStar(v, l)
				require.NoError(t, err)
				b, err := slow.VertexStar(v, l)
				require.NoError(t, err)
				require.Equal(t, b, a)
			}
			for l := 0; l < fast.VertexNeighborNumber(v); l++ {
				a, err := fast.VertexNeighbor(v, l)
				require.NoError(t, err)
				b, err := slow.VertexNeighbor(v, l)
				require.NoError(t, err)
				require.Equal(t, b, a)
			}
		}
		for c := 0; c < fast.cellNumber; c++ {
			for l := 0; l < fast.CellVertexNumber(c); l++ {
				a, err := fast.CellVertex(c, l)
				require.NoError(t, err)
				b, err := slow.CellVertex(c, l)
				require.NoError(t, err)
				require.Equal(t, b, a)
			}
		}
	}
}

func TestAccelerationSkipsOtherDimensions(t *testing.T) {
	require.False(t, quietGrid(t, [3]int{8, 1, 1}).accelerated)
	require.False(t, quietGrid(t, [3]int{4, 6, 4}).accelerated)
	require.False(t, quietGrid(t, [3]int{3, 4, 1}).accelerated)
}
