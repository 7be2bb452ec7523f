// SPDX-License-Identifier: MIT

package scalarfield

import "github.com/katalvlaran/gridtopo/triangulation"

// link is the 1-skeleton of a vertex link: its vertices and, per vertex,
// the link vertices it shares a link edge with.
type link struct {
	vertices []int
	adj      map[int][]int
}

// linkOf collects the link of v. Edges come from the faces of the link
// simplices: triangles in 3D, edges in 2D, none in 1D.
func linkOf(t triangulation.Triangulation, v int) (*link, error) {
	lk := &link{adj: make(map[int][]int)}

	nv := t.VertexNeighborNumber(v)
	lk.vertices = make([]int, 0, nv)
	for l := 0; l < nv; l++ {
		u, err := t.VertexNeighbor(v, l)
		if err != nil {
			return nil, err
		}
		lk.vertices = append(lk.vertices, u)
	}

	var (
		face  func(s, local int) (int, error)
		arity int
	)
	switch t.Dimensionality() {
	case 3:
		face, arity = t.TriangleVertex, 3
	case 2:
		face, arity = t.EdgeVertex, 2
	default:
		return lk, nil
	}

	corners := make([]int, arity)
	for l := 0; l < t.VertexLinkNumber(v); l++ {
		s, err := t.VertexLink(v, l)
		if err != nil {
			return nil, err
		}
		for i := range corners {
			if corners[i], err = face(s, i); err != nil {
				return nil, err
			}
		}
		for i := 0; i < arity; i++ {
			for j := i + 1; j < arity; j++ {
				lk.connect(corners[i], corners[j])
			}
		}
	}
	return lk, nil
}

func (lk *link) connect(a, b int) {
	lk.adj[a] = append(lk.adj[a], b)
	lk.adj[b] = append(lk.adj[b], a)
}

// components counts the connected components of the link vertices that
// satisfy keep.
func (lk *link) components(keep func(int) bool) int {
	seen := make(map[int]bool, len(lk.vertices))
	comps := 0

	for _, u0 := range lk.vertices {
		if !keep(u0) || seen[u0] {
			continue
		}
		// BFS over the kept sub-link
		queue := []int{u0}
		seen[u0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, w := range lk.adj[u] {
				if !seen[w] && keep(w) {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps++
	}

	return comps
}
