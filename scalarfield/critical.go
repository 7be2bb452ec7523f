// SPDX-License-Identifier: MIT

package scalarfield

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/triangulation"
)

// CriticalType labels a vertex by the topology of its lower and upper link.
type CriticalType int

const (
	Regular CriticalType = iota
	Minimum
	Saddle1
	Saddle2
	Maximum
	Degenerate
)

var criticalNames = [...]string{
	Regular:    "regular",
	Minimum:    "minimum",
	Saddle1:    "1-saddle",
	Saddle2:    "2-saddle",
	Maximum:    "maximum",
	Degenerate: "degenerate",
}

func (c CriticalType) String() string {
	if c < 0 || int(c) >= len(criticalNames) {
		return fmt.Sprintf("CriticalType(%d)", int(c))
	}

	return criticalNames[c]
}

// Census counts vertices per critical type.
type Census map[CriticalType]int

// Critical returns the number of non-regular vertices.
func (c Census) Critical() int {
	n := 0
	for k, v := range c {
		if k != Regular {
			n += v
		}
	}

	return n
}

// Classify labels vertex v of t under field f.
//
//	lower = 0            minimum
//	upper = 0            maximum
//	lower = upper = 1    regular
//	3D (2,1) / (1,2)     1-saddle / 2-saddle
//	2D both <= 2         1-saddle
//	otherwise            degenerate
//
// A vertex with an empty link (single-vertex complex) is regular.
func Classify(t triangulation.Triangulation, f *Field, v int) (CriticalType, error) {
	if err := f.check(t.VertexNumber()); err != nil {
		return Regular, fmt.Errorf("Classify: %w", err)
	}
	if v < 0 || v >= t.VertexNumber() {
		return Regular, fmt.Errorf("Classify: vertex %d: %w", v, ErrVertexOutOfRange)
	}

	return classify(t, f, v)
}

// CriticalPoints labels every vertex of t under f.
func CriticalPoints(t triangulation.Triangulation, f *Field) ([]CriticalType, error) {
	n := t.VertexNumber()
	if err := f.check(n); err != nil {
		return nil, fmt.Errorf("CriticalPoints: %w", err)
	}

	out := make([]CriticalType, n)
	for v := 0; v < n; v++ {
		c, err := classify(t, f, v)
		if err != nil {
			return nil, fmt.Errorf("CriticalPoints: vertex %d: %w", v, err)
		}
		out[v] = c
	}

	return out, nil
}

// Count tallies a classification.
func Count(types []CriticalType) Census {
	c := make(Census)
	for _, k := range types {
		c[k]++
	}

	return c
}

func classify(t triangulation.Triangulation, f *Field, v int) (CriticalType, error) {
	lk, err := linkOf(t, v)
	if err != nil {
		return Regular, err
	}
	if len(lk.vertices) == 0 {
		return Regular, nil
	}

	lower := lk.components(func(u int) bool { return f.Lower(u, v) })
	upper := lk.components(func(u int) bool { return !f.Lower(u, v) })

	switch {
	case lower == 0:
		return Minimum, nil
	case upper == 0:
		return Maximum, nil
	case lower == 1 && upper == 1:
		return Regular, nil
	}

	switch t.Dimensionality() {
	case 3:
		if lower == 2 && upper == 1 {
			return Saddle1, nil
		}
		if lower == 1 && upper == 2 {
			return Saddle2, nil
		}
	case 2:
		if lower <= 2 && upper <= 2 {
			return Saddle1, nil
		}
	}

	return Degenerate, nil
}
