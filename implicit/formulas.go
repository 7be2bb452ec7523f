// SPDX-License-Identifier: MIT

package implicit

import (
	"fmt"
	"sort"
)

// Every relation of every category is a stencil derived once from the voxel
// template. A vertex at grid coordinate p belongs to the voxel whose base is
// p - X for each corner X; the per-axis states decide which of those voxels
// exist, so the stencil of a category only lists simplices that exist.

type vertexFormula struct {
	neighbors, edges, triangles, star, link stencil
}

type edgeFormula struct {
	vertices, triangles, star, link stencil
}

type triangleFormula struct {
	vertices, edges, star, link stencil
	// neighbors lists candidate 2D triangles sharing an edge; a candidate
	// applies only when its quad exists.
	neighbors stencil
}

type tetrahedronFormula struct {
	vertices, edges, triangles stencil
	// neighbors lists candidate tetrahedra sharing a face; a candidate
	// applies only when its voxel exists.
	neighbors stencil
}

var (
	vertexBank      [vertexPositionCount]vertexFormula
	edgeBank        [edgePositionCount]edgeFormula
	triangleBank    [trianglePositionCount][2][stateCount]triangleFormula
	tetrahedronBank [6]tetrahedronFormula
)

func init() {
	buildVertexBank()
	buildEdgeBank()
	buildTriangleBank()
	buildTetrahedronBank()
	if err := checkBanks(); err != nil {
		panic(err)
	}
}

// admits reports whether a voxel lying o (0 or 1) steps behind a coordinate
// in the given state exists along that axis.
func admits(state int, o int8) bool {
	switch state {
	case stateLow:
		return o == 0
	case stateHigh:
		return o == 1
	}

	return true
}

func admitted(state [3]int, o [3]int8) bool {
	for a := 0; a < 3; a++ {
		if !admits(state[a], o[a]) {
			return false
		}
	}

	return true
}

// refSet collects refs in insertion order without duplicates.
type refSet struct {
	seen map[ref]bool
	list stencil
}

func newRefSet() *refSet { return &refSet{seen: make(map[ref]bool)} }

func (s *refSet) add(r ref) {
	if !s.seen[r] {
		s.seen[r] = true
		s.list = append(s.list, r)
	}
}

func (s *refSet) sorted() stencil {
	sortStencil(s.list)
	return s.list
}

func sortStencil(s stencil) {
	sort.Slice(s, func(i, j int) bool { return s[i].less(s[j]) })
}

// starEntry pairs a star simplex with its link simplex so both lists share
// one order.
type starEntry struct {
	star, link ref
}

func splitEntries(es []starEntry) (star, link stencil) {
	sort.Slice(es, func(i, j int) bool { return es[i].star.less(es[j].star) })
	star = make(stencil, len(es))
	link = make(stencil, len(es))
	for n, e := range es {
		star[n], link[n] = e.star, e.link
	}

	return star, link
}

func vertexRef(p [3]int8) ref { return ref{kind: kindVertex, off: p} }

func buildVertexBank() {
	for sz := 0; sz < stateCount; sz++ {
		for sy := 0; sy < stateCount; sy++ {
			for sx := 0; sx < stateCount; sx++ {
				vertexBank[vertexPosition3D(sx, sy, sz)] = deriveVertex(tmpl3, [3]int{sx, sy, sz})
			}
		}
	}
	for sy := 0; sy < stateCount; sy++ {
		for sx := 0; sx < stateCount; sx++ {
			vertexBank[vertexPosition2D(sx, sy)] = deriveVertex(tmpl2, [3]int{sx, sy, stateLow})
		}
	}

	v := func(dx int8) ref { return ref{kind: kindVertex, off: [3]int8{dx, 0, 0}} }
	e := func(dx int8) ref { return ref{kind: kindEdge, off: [3]int8{dx, 0, 0}} }
	vertexBank[VertexCenter1D] = vertexFormula{
		neighbors: stencil{v(-1), v(1)},
		edges:     stencil{e(-1), e(0)},
		star:      stencil{e(-1), e(0)},
		link:      stencil{v(-1), v(1)},
	}
	vertexBank[VertexLeftCorner1D] = vertexFormula{
		neighbors: stencil{v(1)},
		edges:     stencil{e(0)},
		star:      stencil{e(0)},
		link:      stencil{v(1)},
	}
	vertexBank[VertexRightCorner1D] = vertexFormula{
		neighbors: stencil{v(-1)},
		edges:     stencil{e(-1)},
		star:      stencil{e(-1)},
		link:      stencil{v(-1)},
	}
}

func deriveVertex(t *template, state [3]int) vertexFormula {
	var entries []starEntry
	neighbors, edges, triangles := newRefSet(), newRefSet(), newRefSet()
	origin := [3]int8{}

	for x := 0; x < t.corners; x++ {
		cx := corner(x)
		o := cx.at()
		if !admitted(state, o) {
			continue
		}
		w := sub(origin, o) // voxel base relative to the vertex
		for c, cell := range t.cells {
			if !hasCorner(cell, cx) {
				continue
			}
			others := without(cell, cx)
			entries = append(entries, starEntry{
				star: ref{kind: t.cellKind, class: int8(c), off: w},
				link: t.mustNormalize(placed(w, others...)...),
			})
			pts := placed(w, others...)
			for n, p := range pts {
				neighbors.add(vertexRef(p))
				edges.add(t.mustNormalize(origin, p))
				if t.cellKind != kindTetrahedron {
					continue
				}
				for _, q := range pts[n+1:] {
					triangles.add(t.mustNormalize(origin, p, q))
				}
			}
		}
	}

	f := vertexFormula{
		neighbors: neighbors.sorted(),
		edges:     edges.sorted(),
		triangles: triangles.sorted(),
	}
	f.star, f.link = splitEntries(entries)
	if t.cellKind == kindTriangle {
		f.triangles = append(stencil(nil), f.star...)
	}

	return f
}

func buildEdgeBank() {
	for f := 0; f < edgeFamilies3D; f++ {
		forEachState(edgeTransverse3D[f], func(state [3]int) {
			p := edgePosition(edgeFamilyBase3D[f], edgeTransverse3D[f], state)
			edgeBank[p] = deriveEdge(tmpl3, f, state)
		})
		edgeInterior[edgeFamilyBase3D[f]] = true
	}
	for f := 0; f < edgeFamilies2D; f++ {
		forEachState(edgeTransverse2D[f], func(state [3]int) {
			p := edgePosition(edgeFamilyBase2D[f], edgeTransverse2D[f], state)
			edgeBank[p] = deriveEdge(tmpl2, f, state)
		})
		edgeInterior[edgeFamilyBase2D[f]] = true
	}
	edgeBank[Edge1D] = edgeFormula{
		vertices: stencil{vertexRef([3]int8{0, 0, 0}), vertexRef([3]int8{1, 0, 0})},
	}
	edgeInterior[Edge1D] = true
}

// forEachState calls fn for every combination of states on the given axes;
// the other axes stay interior.
func forEachState(axes []int, fn func(state [3]int)) {
	total := 1
	for range axes {
		total *= stateCount
	}
	for code := 0; code < total; code++ {
		var state [3]int
		rest := code
		for _, a := range axes {
			state[a] = rest % stateCount
			rest /= stateCount
		}
		fn(state)
	}
}

func deriveEdge(t *template, family int, state [3]int) edgeFormula {
	fc := t.edges[family]
	f := edgeFormula{
		vertices: stencil{vertexRef(fc[0].at()), vertexRef(fc[1].at())},
	}
	sortStencil(f.vertices)

	var entries []starEntry
	triangles := newRefSet()
	for c, cell := range t.cells {
		for i := 0; i < len(cell); i++ {
			for j := i + 1; j < len(cell); j++ {
				e := t.mustNormalize(cell[i].at(), cell[j].at())
				if int(e.class) != family || !admitted(state, e.off) {
					continue
				}
				w := sub([3]int8{}, e.off)
				ends := placed(w, cell[i], cell[j])
				others := placed(w, without(cell, cell[i], cell[j])...)
				entry := starEntry{star: ref{kind: t.cellKind, class: int8(c), off: w}}
				if t.cellKind == kindTetrahedron {
					entry.link = t.mustNormalize(others...)
					for _, r := range others {
						triangles.add(t.mustNormalize(ends[0], ends[1], r))
					}
				} else {
					entry.link = vertexRef(others[0])
				}
				entries = append(entries, entry)
			}
		}
	}

	f.star, f.link = splitEntries(entries)
	f.triangles = triangles.sorted()
	if t.cellKind == kindTriangle {
		f.triangles = append(stencil(nil), f.star...)
	}

	return f
}

func buildTriangleBank() {
	for fam := 0; fam < triangleFamilies3D; fam++ {
		for parity := 0; parity < 2; parity++ {
			axis := triangleTransverse[fam]
			for s := 0; s < stateCount; s++ {
				if axis < 0 && s != stateInterior {
					continue
				}
				var state [3]int
				if axis >= 0 {
					state[axis] = s
				}
				triangleBank[fam][parity][s] = deriveTriangle3D(fam*2+parity, state)
			}
		}
	}
	for parity := 0; parity < 2; parity++ {
		triangleBank[Triangle2DTop+TrianglePosition(parity)][parity][stateInterior] = deriveTriangle2D(parity)
	}
}

// triangleFaces returns the vertices and edges of triangle class of t.
func triangleFaces(t *template, class int) (vertices, edges stencil) {
	tc := t.triangles[class]
	for n, c := range tc {
		vertices = append(vertices, vertexRef(c.at()))
		for _, d := range tc[n+1:] {
			edges = append(edges, t.mustNormalize(c.at(), d.at()))
		}
	}
	sortStencil(vertices)
	sortStencil(edges)

	return vertices, edges
}

func deriveTriangle3D(class int, state [3]int) triangleFormula {
	var f triangleFormula
	f.vertices, f.edges = triangleFaces(tmpl3, class)

	var entries []starEntry
	for c, cell := range tmpl3.cells {
		for _, apex := range cell {
			face := without(cell, apex)
			tr := tmpl3.mustNormalize(placed([3]int8{}, face...)...)
			if int(tr.class) != class || !admitted(state, tr.off) {
				continue
			}
			w := sub([3]int8{}, tr.off)
			entries = append(entries, starEntry{
				star: ref{kind: kindTetrahedron, class: int8(c), off: w},
				link: vertexRef(add(w, apex.at())),
			})
		}
	}
	f.star, f.link = splitEntries(entries)

	return f
}

func deriveTriangle2D(parity int) triangleFormula {
	var f triangleFormula
	f.vertices, f.edges = triangleFaces(tmpl2, parity)
	f.neighbors = sharedFaceCandidates(tmpl2, parity)

	return f
}

func buildTetrahedronBank() {
	for c, cell := range tmpl3.cells {
		f := tetrahedronFormula{neighbors: sharedFaceCandidates(tmpl3, c)}
		for n, x := range cell {
			f.vertices = append(f.vertices, vertexRef(x.at()))
			for _, y := range cell[n+1:] {
				f.edges = append(f.edges, tmpl3.mustNormalize(x.at(), y.at()))
			}
			f.triangles = append(f.triangles, tmpl3.mustNormalize(placed([3]int8{}, without(cell, x)...)...))
		}
		sortStencil(f.vertices)
		sortStencil(f.edges)
		sortStencil(f.triangles)
		tetrahedronBank[c] = f
	}
}

// sharedFaceCandidates lists every top-dimensional cell that shares a facet
// with cell class of t placed at the origin, assuming all voxels exist.
func sharedFaceCandidates(t *template, class int) stencil {
	facets := func(cell []corner) []ref {
		out := make([]ref, 0, len(cell))
		for _, x := range cell {
			out = append(out, t.mustNormalize(placed([3]int8{}, without(cell, x)...)...))
		}
		return out
	}

	out := newRefSet()
	for _, mine := range facets(t.cells[class]) {
		for c, cell := range t.cells {
			for _, theirs := range facets(cell) {
				if theirs.class != mine.class {
					continue
				}
				w := sub(mine.off, theirs.off)
				if w == ([3]int8{}) && c == class {
					continue
				}
				out.add(ref{kind: t.cellKind, class: int8(c), off: w})
			}
		}
	}

	return out.sorted()
}

// checkBanks verifies that every category received formulas.
func checkBanks() error {
	for p := VertexPosition(0); p < VertexSingle0D; p++ {
		f := &vertexBank[p]
		if len(f.neighbors) == 0 || len(f.star) == 0 || len(f.star) != len(f.link) {
			return fmt.Errorf("implicit: incomplete formulas for vertex category %s", p)
		}
	}
	for p := EdgePosition(0); p < edgePositionCount; p++ {
		f := &edgeBank[p]
		if len(f.vertices) != 2 {
			return fmt.Errorf("implicit: incomplete formulas for edge category %s", p)
		}
		if p != Edge1D && (len(f.star) == 0 || len(f.star) != len(f.link)) {
			return fmt.Errorf("implicit: incomplete star for edge category %s", p)
		}
	}
	for fam := 0; fam < triangleFamilies3D; fam++ {
		for parity := 0; parity < 2; parity++ {
			for s := 0; s < stateCount; s++ {
				if triangleTransverse[fam] < 0 && s != stateInterior {
					continue
				}
				f := &triangleBank[fam][parity][s]
				if len(f.vertices) != 3 || len(f.edges) != 3 || len(f.star) == 0 {
					return fmt.Errorf("implicit: incomplete formulas for triangle family %s", TrianglePosition(fam))
				}
			}
		}
	}
	for parity := 0; parity < 2; parity++ {
		f := &triangleBank[Triangle2DTop+TrianglePosition(parity)][parity][stateInterior]
		if len(f.vertices) != 3 || len(f.edges) != 3 || len(f.neighbors) != 3 {
			return fmt.Errorf("implicit: incomplete formulas for 2D triangle parity %d", parity)
		}
	}
	for c := range tetrahedronBank {
		f := &tetrahedronBank[c]
		if len(f.vertices) != 4 || len(f.edges) != 6 || len(f.triangles) != 4 || len(f.neighbors) != 4 {
			return fmt.Errorf("implicit: incomplete formulas for tetrahedron type %d", c)
		}
	}

	return nil
}
