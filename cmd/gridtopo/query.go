// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridtopo/implicit"
)

var (
	errUnknownKind     = errors.New("unknown simplex kind")
	errUnknownRelation = errors.New("unknown relation")
)

// relation reads one adjacency list as a count plus an indexed getter.
type relation struct {
	count func(id int) int
	get   func(id, local int) (int, error)
}

func fixed(n int) func(int) int { return func(int) int { return n } }

// kind groups the relations of one simplex kind with its id range and
// boundary predicate.
type kind struct {
	total     func() int
	relations map[string]relation
	boundary  func(id int) bool
	position  func(id int) (fmt.Stringer, error)
}

func kinds(g *implicit.Grid) map[string]kind {
	return map[string]kind{
		"vertex": {
			total: g.VertexNumber,
			relations: map[string]relation{
				"neighbors": {g.VertexNeighborNumber, g.VertexNeighbor},
				"edges":     {g.VertexEdgeNumber, g.VertexEdge},
				"triangles": {g.VertexTriangleNumber, g.VertexTriangle},
				"star":      {g.VertexStarNumber, g.VertexStar},
				"link":      {g.VertexLinkNumber, g.VertexLink},
			},
			boundary: g.IsVertexOnBoundary,
			position: func(id int) (fmt.Stringer, error) {
				p, err := g.VertexPosition(id)
				return p, err
			},
		},
		"edge": {
			total: g.EdgeNumber,
			relations: map[string]relation{
				"vertices":  {g.EdgeVertexNumber, g.EdgeVertex},
				"triangles": {g.EdgeTriangleNumber, g.EdgeTriangle},
				"star":      {g.EdgeStarNumber, g.EdgeStar},
				"link":      {g.EdgeLinkNumber, g.EdgeLink},
			},
			boundary: g.IsEdgeOnBoundary,
			position: func(id int) (fmt.Stringer, error) {
				p, err := g.EdgePosition(id)
				return p, err
			},
		},
		"triangle": {
			total: g.TriangleNumber,
			relations: map[string]relation{
				"vertices":  {fixed(3), g.TriangleVertex},
				"edges":     {g.TriangleEdgeNumber, g.TriangleEdge},
				"star":      {g.TriangleStarNumber, g.TriangleStar},
				"link":      {g.TriangleLinkNumber, g.TriangleLink},
				"neighbors": {g.TriangleNeighborNumber, g.TriangleNeighbor},
			},
			boundary: g.IsTriangleOnBoundary,
			position: func(id int) (fmt.Stringer, error) {
				p, err := g.TrianglePosition(id)
				return p, err
			},
		},
		"tetrahedron": {
			total: g.TetrahedronNumber,
			relations: map[string]relation{
				"vertices":  {fixed(4), g.TetrahedronVertex},
				"edges":     {fixed(6), g.TetrahedronEdge},
				"triangles": {fixed(4), g.TetrahedronTriangle},
				"neighbors": {g.TetrahedronNeighborNumber, g.TetrahedronNeighbor},
			},
		},
		"cell": {
			total: g.CellNumber,
			relations: map[string]relation{
				"vertices":  {g.CellVertexNumber, g.CellVertex},
				"edges":     {g.CellEdgeNumber, g.CellEdge},
				"triangles": {g.CellTriangleNumber, g.CellTriangle},
				"neighbors": {g.CellNeighborNumber, g.CellNeighbor},
			},
		},
	}
}

func names[V any](m map[string]V) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return strings.Join(out, ", ")
}

func newQueryCmd(gf *gridFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query <vertex|edge|triangle|tetrahedron|cell> <relation> <id>",
		Short: "Print one adjacency relation of a simplex",
		Long: `Print one adjacency relation of a simplex.

Relations:
  vertex       neighbors edges triangles star link point boundary position
  edge         vertices triangles star link boundary position
  triangle     vertices edges star link neighbors boundary position
  tetrahedron  vertices edges triangles neighbors
  cell         vertices edges triangles neighbors`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.grid(cmd)
			if err != nil {
				return err
			}
			id, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("id %q: %w", args[2], err)
			}

			return runQuery(cmd, g, args[0], args[1], id)
		},
	}
}

func runQuery(cmd *cobra.Command, g *implicit.Grid, kindName, relName string, id int) error {
	k, ok := kinds(g)[kindName]
	if !ok {
		return fmt.Errorf("%q (want one of %s): %w", kindName, names(kinds(g)), errUnknownKind)
	}
	if id < 0 || id >= k.total() {
		return fmt.Errorf("%s %d of %d: %w", kindName, id, k.total(), implicit.ErrSimplexOutOfRange)
	}

	w := cmd.OutOrStdout()
	switch {
	case relName == "point" && kindName == "vertex":
		p, err := g.VertexPoint(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d point: %g %g %g\n", kindName, id, p.X, p.Y, p.Z)
		return nil
	case relName == "boundary" && k.boundary != nil:
		fmt.Fprintf(w, "%s %d boundary: %t\n", kindName, id, k.boundary(id))
		return nil
	case relName == "position" && k.position != nil:
		pos, err := k.position(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d position: %s\n", kindName, id, pos)
		return nil
	}

	rel, ok := k.relations[relName]
	if !ok {
		return fmt.Errorf("%s %q (want one of %s): %w", kindName, relName, names(k.relations), errUnknownRelation)
	}
	n := rel.count(id)
	if n < 0 {
		_, err := rel.get(id, 0)
		if err == nil {
			err = implicit.ErrUnsupportedDimension
		}
		return fmt.Errorf("%s %d %s: %w", kindName, id, relName, err)
	}
	ids := make([]int, n)
	for l := range ids {
		v, err := rel.get(id, l)
		if err != nil {
			return fmt.Errorf("%s %d %s: %w", kindName, id, relName, err)
		}
		ids[l] = v
	}
	fmt.Fprintf(w, "%s %d %s: %v\n", kindName, id, relName, ids)

	return nil
}
