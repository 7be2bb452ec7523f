// SPDX-License-Identifier: MIT

package implicit

// Conversions between linear ids and logical grid coordinates. Coordinates
// of an edge, triangle or tetrahedron are those of its base vertex (the
// componentwise minimum of its vertices).

func (g *Grid) vertexID(i, j, k int) int {
	switch g.dimensionality {
	case 3:
		if g.accelerated {
			return i + j<<g.div[0] + k<<g.div[1]
		}
		return i + j*g.vshift[0] + k*g.vshift[1]
	case 2:
		if g.accelerated {
			return i + j<<g.div[0]
		}
		return i + j*g.vshift[0]
	}

	return i
}

func (g *Grid) vertexCoords(v int) [3]int {
	switch g.dimensionality {
	case 3:
		if g.accelerated {
			return [3]int{v & g.mod[0], (v & g.mod[1]) >> g.div[0], v >> g.div[1]}
		}
		return [3]int{v % g.vshift[0], (v % g.vshift[1]) / g.vshift[0], v / g.vshift[1]}
	case 2:
		if g.accelerated {
			return [3]int{v & g.mod[0], v >> g.div[0], 0}
		}
		return [3]int{v % g.vshift[0], v / g.vshift[0], 0}
	}

	return [3]int{v, 0, 0}
}

func (g *Grid) edgeOffset(f int) int {
	if f == 0 {
		return 0
	}

	return g.esetshift[f-1]
}

func (g *Grid) edgeID(f, i, j, k int) int {
	switch g.dimensionality {
	case 3:
		return g.edgeOffset(f) + i + j*g.eshift[2*f] + k*g.eshift[2*f+1]
	case 2:
		return g.edgeOffset(f) + i + j*g.eshift[2*f]
	}

	return i
}

// edgeCoords returns the family and base coordinates of edge e.
func (g *Grid) edgeCoords(e int) (int, [3]int) {
	switch g.dimensionality {
	case 3:
		f := 0
		for e >= g.esetshift[f] {
			f++
		}
		p := e - g.edgeOffset(f)
		return f, [3]int{p % g.eshift[2*f], (p % g.eshift[2*f+1]) / g.eshift[2*f], p / g.eshift[2*f+1]}
	case 2:
		f := 0
		for e >= g.esetshift[f] {
			f++
		}
		p := e - g.edgeOffset(f)
		return f, [3]int{p % g.eshift[2*f], p / g.eshift[2*f], 0}
	}

	return 0, [3]int{e, 0, 0}
}

func (g *Grid) triangleOffset(f int) int {
	if f == 0 {
		return 0
	}

	return g.tsetshift[f-1]
}

// triangleID encodes a triangle of class c (family·2+parity in 3D, parity
// in 2D) whose base sits at (i, j, k).
func (g *Grid) triangleID(c, i, j, k int) int {
	if g.dimensionality == 2 {
		return 2*i + c + j*g.tshift[0]
	}
	f := c >> 1

	return g.triangleOffset(f) + 2*i + c&1 + j*g.tshift[2*f] + k*g.tshift[2*f+1]
}

// triangleCoords returns the class and base coordinates of triangle t.
func (g *Grid) triangleCoords(t int) (int, [3]int) {
	if g.dimensionality == 2 {
		p0 := t % g.tshift[0]
		return p0 & 1, [3]int{p0 >> 1, t / g.tshift[0], 0}
	}
	f := 0
	for t >= g.tsetshift[f] {
		f++
	}
	p := t - g.triangleOffset(f)
	p0 := p % g.tshift[2*f]

	return f<<1 | p0&1, [3]int{p0 >> 1, (p % g.tshift[2*f+1]) / g.tshift[2*f], p / g.tshift[2*f+1]}
}

func (g *Grid) tetrahedronID(c, i, j, k int) int {
	return 6*i + c + j*g.tetshift[0] + k*g.tetshift[1]
}

// tetrahedronCoords returns the type and voxel coordinates of tetrahedron t.
func (g *Grid) tetrahedronCoords(t int) (int, [3]int) {
	return t % 6, [3]int{(t % g.tetshift[0]) / 6, (t % g.tetshift[1]) / g.tetshift[0], t / g.tetshift[1]}
}

// resolve turns a relative ref into an absolute id, starting from base p.
func (g *Grid) resolve(r ref, p [3]int) int {
	i, j, k := p[0]+int(r.off[0]), p[1]+int(r.off[1]), p[2]+int(r.off[2])
	switch r.kind {
	case kindVertex:
		return g.vertexID(i, j, k)
	case kindEdge:
		return g.edgeID(int(r.class), i, j, k)
	case kindTriangle:
		return g.triangleID(int(r.class), i, j, k)
	}

	return g.tetrahedronID(int(r.class), i, j, k)
}

// cellExists reports whether the voxel (or quad) based at p+off lies inside
// the grid.
func (g *Grid) cellExists(p [3]int, off [3]int8) bool {
	for a := 0; a < g.dimensionality; a++ {
		q := p[a] + int(off[a])
		if q < 0 || q >= g.ldims[a]-1 {
			return false
		}
	}

	return true
}
