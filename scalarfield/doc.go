// SPDX-License-Identifier: MIT

// Package scalarfield analyses piecewise-linear scalar fields defined on the
// vertices of any triangulation.Triangulation.
//
// What:
//
//   - Field pairs one value per vertex with an optional offset array used to
//     break ties (simulation of simplicity): u is lower than v when its value
//     is smaller, or when values are equal and its offset is smaller.
//   - Elevation builds the field f(v) = <point(v), dir>.
//   - Classify labels one vertex as regular, minimum, 1-saddle, 2-saddle,
//     maximum or degenerate from the number of connected components of its
//     lower and upper link.
//   - CriticalPoints labels every vertex; Census counts the labels.
//
// Link connectivity:
//
//	3D  link triangles give the edges between link vertices
//	2D  link edges give the edges between link vertices
//	1D  the link is two isolated vertices at most
//
// Complexity:
//
//   - Classify: O(L) where L is the link size (bounded by 36 triangles on an
//     implicit grid).
//   - CriticalPoints: O(V·L).
//
// Errors:
//
//   - ErrFieldSize: value or offset count differs from the vertex count.
//   - ErrVertexOutOfRange: vertex id outside [0, VertexNumber).
//   - ErrZeroDirection: elevation direction of zero length.
package scalarfield
