// SPDX-License-Identifier: MIT

package scalarfield

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridtopo/triangulation"
)

// Field is a scalar value per vertex. Offsets, when non-nil, break ties
// between equal values; otherwise the vertex id does.
type Field struct {
	Values  []float64
	Offsets []int
}

// NewField wraps values with vertex-id tie breaking.
func NewField(values []float64) *Field {
	return &Field{Values: values}
}

// Len returns the number of vertices the field covers.
func (f *Field) Len() int { return len(f.Values) }

// Lower reports whether u comes strictly before v in the field order.
func (f *Field) Lower(u, v int) bool {
	if f.Values[u] != f.Values[v] {
		return f.Values[u] < f.Values[v]
	}
	if f.Offsets != nil {
		return f.Offsets[u] < f.Offsets[v]
	}

	return u < v
}

// check verifies the field matches a triangulation with n vertices.
func (f *Field) check(n int) error {
	if len(f.Values) != n {
		return fmt.Errorf("values: got %d, want %d: %w", len(f.Values), n, ErrFieldSize)
	}
	if f.Offsets != nil && len(f.Offsets) != n {
		return fmt.Errorf("offsets: got %d, want %d: %w", len(f.Offsets), n, ErrFieldSize)
	}

	return nil
}

// Elevation projects every vertex point of t onto dir.
func Elevation(t triangulation.Triangulation, dir r3.Vec) (*Field, error) {
	if r3.Norm(dir) == 0 {
		return nil, ErrZeroDirection
	}

	n := t.VertexNumber()
	values := make([]float64, n)
	for v := 0; v < n; v++ {
		p, err := t.VertexPoint(v)
		if err != nil {
			return nil, fmt.Errorf("Elevation: vertex %d: %w", v, err)
		}
		values[v] = r3.Dot(p, dir)
	}

	return NewField(values), nil
}
