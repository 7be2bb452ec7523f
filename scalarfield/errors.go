// SPDX-License-Identifier: MIT

package scalarfield

import "errors"

var (
	// ErrFieldSize indicates a field whose length differs from the vertex count.
	ErrFieldSize = errors.New("scalarfield: field size does not match vertex count")
	// ErrVertexOutOfRange indicates a vertex id outside the triangulation.
	ErrVertexOutOfRange = errors.New("scalarfield: vertex id out of range")
	// ErrZeroDirection indicates an elevation direction of zero length.
	ErrZeroDirection = errors.New("scalarfield: elevation direction must be non-zero")
)
