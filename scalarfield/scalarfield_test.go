package scalarfield_test

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridtopo/implicit"
	"github.com/katalvlaran/gridtopo/scalarfield"
)

func newGrid(t testing.TB, dims [3]int) *implicit.Grid {
	t.Helper()
	logger, _ := test.NewNullLogger()
	g, err := implicit.NewGrid([3]float64{}, [3]float64{1, 1, 1}, dims, implicit.WithLogger(logger))
	require.NoError(t, err)

	return g
}

// TestElevationLinear checks that a generic linear field has exactly one
// minimum and one maximum, at the extreme corners.
func TestElevationLinear(t *testing.T) {
	dir := r3.Vec{X: 1, Y: 2.1, Z: 4.3}
	for _, dims := range [][3]int{{5, 5, 1}, {4, 4, 4}, {3, 5, 2}, {6, 1, 1}} {
		g := newGrid(t, dims)
		f, err := scalarfield.Elevation(g, dir)
		require.NoError(t, err)
		require.Equal(t, g.VertexNumber(), f.Len())

		types, err := scalarfield.CriticalPoints(g, f)
		require.NoError(t, err)

		last := g.VertexNumber() - 1
		for v, c := range types {
			switch v {
			case 0:
				assert.Equal(t, scalarfield.Minimum, c, "dims %v", dims)
			case last:
				assert.Equal(t, scalarfield.Maximum, c, "dims %v", dims)
			default:
				assert.Equal(t, scalarfield.Regular, c, "dims %v vertex %d", dims, v)
			}
		}

		census := scalarfield.Count(types)
		assert.Equal(t, 2, census.Critical())
		assert.Equal(t, g.VertexNumber()-2, census[scalarfield.Regular])
	}
}

func TestElevationValues(t *testing.T) {
	g, err := implicit.NewGrid([3]float64{1, 0, 0}, [3]float64{0.5, 2, 1}, [3]int{3, 2, 1})
	require.NoError(t, err)

	f, err := scalarfield.Elevation(g, r3.Vec{X: 1, Y: 1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2, 3, 3.5, 4}, f.Values, 1e-12)

	_, err = scalarfield.Elevation(g, r3.Vec{})
	require.ErrorIs(t, err, scalarfield.ErrZeroDirection)
}

// TestClassify2DSaddles builds a 3×3 grid whose centre has the link cycle
// 1-2-5-7-6-3.
func TestClassify2DSaddles(t *testing.T) {
	g := newGrid(t, [3]int{3, 3, 1})

	cases := []struct {
		name   string
		values []float64
		want   scalarfield.CriticalType
	}{
		{"saddle", []float64{10, 0, 10, 10, 5, 10, 10, 0, 10}, scalarfield.Saddle1},
		{"monkey", []float64{10, 0, 10, 10, 5, 0, 0, 10, 10}, scalarfield.Degenerate},
		{"minimum", []float64{9, 9, 9, 9, 0, 9, 9, 9, 9}, scalarfield.Minimum},
		{"maximum", []float64{0, 0, 0, 0, 9, 0, 0, 0, 0}, scalarfield.Maximum},
		{"regular", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, scalarfield.Regular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := scalarfield.Classify(g, scalarfield.NewField(tc.values), 4)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

// TestClassify3DSaddles uses x²+y²-3z² around the centre of a 3×3×3 grid:
// the lower link splits into the caps above and below the centre.
func TestClassify3DSaddles(t *testing.T) {
	g := newGrid(t, [3]int{3, 3, 3})
	values := make([]float64, g.VertexNumber())
	for v := range values {
		x, y, z := float64(v%3-1), float64(v/3%3-1), float64(v/9-1)
		values[v] = x*x + y*y - 3*z*z
	}
	center := 13

	c, err := scalarfield.Classify(g, scalarfield.NewField(values), center)
	require.NoError(t, err)
	assert.Equal(t, scalarfield.Saddle1, c)

	neg := make([]float64, len(values))
	for v, x := range values {
		neg[v] = -x
	}
	c, err = scalarfield.Classify(g, scalarfield.NewField(neg), center)
	require.NoError(t, err)
	assert.Equal(t, scalarfield.Saddle2, c)
}

func TestClassify1D(t *testing.T) {
	g := newGrid(t, [3]int{5, 1, 1})
	types, err := scalarfield.CriticalPoints(g, scalarfield.NewField([]float64{3, 1, 2, 0, 5}))
	require.NoError(t, err)
	assert.Equal(t, []scalarfield.CriticalType{
		scalarfield.Maximum, scalarfield.Minimum, scalarfield.Maximum, scalarfield.Minimum, scalarfield.Maximum,
	}, types)
}

// TestOffsetsBreakTies classifies a constant field under two tie orders.
func TestOffsetsBreakTies(t *testing.T) {
	g := newGrid(t, [3]int{3, 1, 1})
	flat := []float64{1, 1, 1}

	byID, err := scalarfield.CriticalPoints(g, scalarfield.NewField(flat))
	require.NoError(t, err)
	assert.Equal(t, []scalarfield.CriticalType{scalarfield.Minimum, scalarfield.Regular, scalarfield.Maximum}, byID)

	reversed := &scalarfield.Field{Values: flat, Offsets: []int{2, 1, 0}}
	byOffset, err := scalarfield.CriticalPoints(g, reversed)
	require.NoError(t, err)
	assert.Equal(t, []scalarfield.CriticalType{scalarfield.Maximum, scalarfield.Regular, scalarfield.Minimum}, byOffset)
}

func TestSingleVertexIsRegular(t *testing.T) {
	g := newGrid(t, [3]int{1, 1, 1})
	c, err := scalarfield.Classify(g, scalarfield.NewField([]float64{4}), 0)
	require.NoError(t, err)
	assert.Equal(t, scalarfield.Regular, c)
}

func TestErrors(t *testing.T) {
	g := newGrid(t, [3]int{3, 3, 1})

	_, err := scalarfield.CriticalPoints(g, scalarfield.NewField(make([]float64, 4)))
	require.ErrorIs(t, err, scalarfield.ErrFieldSize)

	bad := &scalarfield.Field{Values: make([]float64, 9), Offsets: []int{0}}
	_, err = scalarfield.Classify(g, bad, 0)
	require.ErrorIs(t, err, scalarfield.ErrFieldSize)

	_, err = scalarfield.Classify(g, scalarfield.NewField(make([]float64, 9)), 9)
	require.ErrorIs(t, err, scalarfield.ErrVertexOutOfRange)
	_, err = scalarfield.Classify(g, scalarfield.NewField(make([]float64, 9)), -1)
	require.ErrorIs(t, err, scalarfield.ErrVertexOutOfRange)
}

func TestCriticalTypeString(t *testing.T) {
	assert.Equal(t, "1-saddle", scalarfield.Saddle1.String())
	assert.Equal(t, "maximum", scalarfield.Maximum.String())
	assert.Equal(t, "CriticalType(9)", scalarfield.CriticalType(9).String())
}
