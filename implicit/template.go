// SPDX-License-Identifier: MIT

package implicit

import "fmt"

// corner is a canonical voxel corner; bit 0 is x, bit 1 is y, bit 2 is z.
type corner uint8

const (
	cornerA corner = iota // (0,0,0)
	cornerB               // (1,0,0)
	cornerC               // (0,1,0)
	cornerD               // (1,1,0)
	cornerE               // (0,0,1)
	cornerF               // (1,0,1)
	cornerG               // (0,1,1)
	cornerH               // (1,1,1)
)

func (c corner) at() [3]int8 {
	return [3]int8{int8(c & 1), int8(c >> 1 & 1), int8(c >> 2 & 1)}
}

type simplexKind uint8

const (
	kindVertex simplexKind = iota
	kindEdge
	kindTriangle
	kindTetrahedron
)

// ref addresses a simplex relative to the grid coordinates of the simplex
// a query starts from.
//
// class is the edge family, the triangle family·2+parity (the bare parity
// in 2D) or the tetrahedron type. off is the simplex's base coordinate
// (componentwise minimum of its vertices) relative to the query's base.
type ref struct {
	kind  simplexKind
	class int8
	off   [3]int8
}

func (r ref) family() int8 {
	switch r.kind {
	case kindEdge:
		return r.class
	case kindTriangle:
		return r.class >> 1
	}

	return 0
}

func (r ref) minor() int8 {
	switch r.kind {
	case kindTriangle:
		return r.class & 1
	case kindTetrahedron:
		return r.class
	}

	return 0
}

// less orders refs of the same kind by the id they resolve to: family
// blocks first, then k, j, i, then parity or type.
func (r ref) less(o ref) bool {
	if r.kind != o.kind {
		return r.kind < o.kind
	}
	if fr, fo := r.family(), o.family(); fr != fo {
		return fr < fo
	}
	for a := 2; a >= 0; a-- {
		if r.off[a] != o.off[a] {
			return r.off[a] < o.off[a]
		}
	}

	return r.minor() < o.minor()
}

// stencil is an ordered list of relative simplices; entry n answers local
// index n of a relation.
type stencil []ref

// template is the subdivision of one voxel (3D) or quad (2D).
type template struct {
	corners   int
	cellKind  simplexKind
	edges     [][2]corner
	triangles [][3]corner
	cells     [][]corner
	classOf   [kindTetrahedron + 1][256]int8
}

var tmpl3 = newTemplate(8, kindTetrahedron,
	[][2]corner{
		{cornerA, cornerB}, // L
		{cornerA, cornerC}, // H
		{cornerA, cornerE}, // P
		{cornerB, cornerC}, // D1
		{cornerA, cornerG}, // D2
		{cornerB, cornerE}, // D3
		{cornerB, cornerG}, // D4
	},
	[][3]corner{
		{cornerA, cornerB, cornerC}, {cornerB, cornerC, cornerD}, // xy
		{cornerA, cornerB, cornerE}, {cornerB, cornerE, cornerF}, // xz
		{cornerA, cornerC, cornerG}, {cornerA, cornerE, cornerG}, // yz
		{cornerB, cornerD, cornerG}, {cornerB, cornerE, cornerG}, // D1
		{cornerA, cornerB, cornerG}, {cornerB, cornerG, cornerH}, // D2
		{cornerB, cornerC, cornerG}, {cornerB, cornerF, cornerG}, // D3
	},
	[][]corner{
		{cornerA, cornerB, cornerC, cornerG},
		{cornerB, cornerC, cornerD, cornerG},
		{cornerA, cornerB, cornerE, cornerG},
		{cornerB, cornerE, cornerF, cornerG},
		{cornerB, cornerF, cornerG, cornerH},
		{cornerB, cornerD, cornerG, cornerH},
	},
)

var tmpl2 = newTemplate(4, kindTriangle,
	[][2]corner{
		{cornerA, cornerB}, // L
		{cornerA, cornerC}, // H
		{cornerB, cornerC}, // D1
	},
	[][3]corner{
		{cornerA, cornerB, cornerC}, // top
		{cornerB, cornerD, cornerC}, // bottom
	},
	[][]corner{
		{cornerA, cornerB, cornerC},
		{cornerB, cornerD, cornerC},
	},
)

func newTemplate(corners int, cellKind simplexKind, edges [][2]corner, triangles [][3]corner, cells [][]corner) *template {
	t := &template{corners: corners, cellKind: cellKind, edges: edges, triangles: triangles, cells: cells}
	for k := range t.classOf {
		for m := range t.classOf[k] {
			t.classOf[k][m] = -1
		}
	}
	for c, e := range edges {
		t.classOf[kindEdge][maskOf(e[:])] = int8(c)
	}
	for c, tr := range triangles {
		t.classOf[kindTriangle][maskOf(tr[:])] = int8(c)
	}
	if cellKind == kindTetrahedron {
		for c, tet := range cells {
			t.classOf[kindTetrahedron][maskOf(tet)] = int8(c)
		}
	}

	return t
}

func maskOf(cs []corner) int {
	m := 0
	for _, c := range cs {
		m |= 1 << c
	}

	return m
}

// normalize identifies the simplex spanned by pts (coordinates relative to
// the query base). It reports false when the points do not span a simplex of
// the subdivision.
func (t *template) normalize(pts ...[3]int8) (ref, bool) {
	base := pts[0]
	for _, p := range pts[1:] {
		for a := 0; a < 3; a++ {
			if p[a] < base[a] {
				base[a] = p[a]
			}
		}
	}
	kind := simplexKind(len(pts) - 1)
	if kind == kindVertex {
		return ref{kind: kindVertex, off: base}, true
	}

	mask := 0
	for _, p := range pts {
		bit := 0
		for a := 0; a < 3; a++ {
			d := p[a] - base[a]
			if d > 1 {
				return ref{}, false
			}
			bit |= int(d) << a
		}
		mask |= 1 << bit
	}
	class := t.classOf[kind][mask]
	if class < 0 {
		return ref{}, false
	}

	return ref{kind: kind, class: class, off: base}, true
}

func (t *template) mustNormalize(pts ...[3]int8) ref {
	r, ok := t.normalize(pts...)
	if !ok {
		panic(fmt.Sprintf("implicit: %v does not span a simplex of the subdivision", pts))
	}

	return r
}

func add(p, q [3]int8) [3]int8 {
	return [3]int8{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

func sub(p, q [3]int8) [3]int8 {
	return [3]int8{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// placed returns the positions of cs in the voxel whose base is at w.
func placed(w [3]int8, cs ...corner) [][3]int8 {
	out := make([][3]int8, len(cs))
	for n, c := range cs {
		out[n] = add(w, c.at())
	}

	return out
}

func without(cs []corner, drop ...corner) []corner {
	out := make([]corner, 0, len(cs))
next:
	for _, c := range cs {
		for _, d := range drop {
			if c == d {
				continue next
			}
		}
		out = append(out, c)
	}

	return out
}

func hasCorner(cs []corner, c corner) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}

	return false
}
