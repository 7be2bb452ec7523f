// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(gf *gridFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dimensionality, simplex counts and acceleration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.grid(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "dimensionality: %d\n", g.Dimensionality())
			fmt.Fprintf(w, "dimensions:     %v\n", g.Dimensions())
			fmt.Fprintf(w, "origin:         %v\n", g.Origin())
			fmt.Fprintf(w, "spacing:        %v\n", g.Spacing())
			fmt.Fprintf(w, "vertices:       %d\n", g.VertexNumber())
			fmt.Fprintf(w, "edges:          %d\n", g.EdgeNumber())
			fmt.Fprintf(w, "triangles:      %d\n", g.TriangleNumber())
			fmt.Fprintf(w, "tetrahedra:     %d\n", g.TetrahedronNumber())
			fmt.Fprintf(w, "cells:          %d\n", g.CellNumber())
			fmt.Fprintf(w, "accelerated:    %t\n", g.Accelerated())

			return nil
		},
	}
}
