// SPDX-License-Identifier: MIT

// Package implicit answers simplicial-mesh adjacency queries on a regular
// 1D, 2D or 3D grid without ever storing the mesh.
//
// What:
//
//   - Grid is configured once from an origin, a spacing and up to three
//     vertex counts; a dimension equal to 1 is "flat" and drops out.
//   - Every cube (voxel) of a 3D grid is split into 6 tetrahedra along its
//     b-g diagonal, every 2D quad into 2 triangles along its b-c diagonal.
//   - Vertices, edges, triangles and tetrahedra are numbered densely from 0;
//     edges and triangles are grouped into families (axis-aligned and
//     diagonal) laid out one after another.
//   - Adjacency (neighbours, stars, links, faces, cell neighbours) is
//     computed arithmetically from a simplex's grid coordinates and its
//     boundary category.
//
// Why:
//
//   - Memory: a 512³ grid has ~800M tetrahedra; explicit connectivity would
//     need tens of gigabytes, the implicit form needs a few stride tables.
//   - Speed: a query is a decode, a table lookup and a few multiply-adds.
//     When every dimension is a power of two, decoding uses shifts and masks.
//
// Numbering:
//
//	vertex      id = i + j·X + k·X·Y
//	edge        id = offset(f) + i + j·eshift[2f] + k·eshift[2f+1]
//	triangle    id = offset(f) + 2i + parity + j·tshift[2f] + k·tshift[2f+1]
//	tetrahedron id = 6i + type + j·tetshift[0] + k·tetshift[1]
//
// Canonical voxel corners (x,y,z):
//
//	a(0,0,0) b(1,0,0) c(0,1,0) d(1,1,0) e(0,0,1) f(1,0,1) g(0,1,1) h(1,1,1)
//	tetrahedra: 0 ABCG, 1 BCDG, 2 ABEG, 3 BEFG, 4 BFGH, 5 BDGH
//
// Complexity:
//
//   - SetInputGrid: O(V + E + T) time and memory for the position tables.
//   - Every XxxNumber / Xxx(id, local) query: O(1).
//   - Cached tables (VertexNeighbors, EdgeStars, ...): O(n) on first call,
//     O(1) afterwards; each table is built at most once per Grid.
//
// Options:
//
//   - WithLogger: structured logger (logrus) for acceleration notices,
//     table builds and unsupported operations.
//   - WithBoundsChecking: validate ids and local indices (default true).
//
// Errors:
//
//   - ErrInvalidDimensions: a dimension below 1.
//   - ErrAlreadyConfigured: SetInputGrid called twice.
//   - ErrSimplexOutOfRange / ErrLocalOutOfRange: checked-mode range failures.
//   - ErrNotImplemented1D: cell neighbour queries on a 1D grid.
//   - ErrUnsupportedDimension: cell queries on a 0D grid.
//
// Concurrency: after SetInputGrid returns, a Grid is safe for concurrent
// readers, including concurrent first calls to the cached table accessors.
package implicit
