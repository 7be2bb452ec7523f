// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/gridtopo/scalarfield"
)

func newCriticalCmd(gf *gridFlags) *cobra.Command {
	var direction []float64
	var list bool

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Count the critical points of an elevation field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var d [3]float64
			if err := copyFloats(d[:], direction, "direction"); err != nil {
				return err
			}
			g, err := gf.grid(cmd)
			if err != nil {
				return err
			}

			f, err := scalarfield.Elevation(g, r3.Vec{X: d[0], Y: d[1], Z: d[2]})
			if err != nil {
				return err
			}
			types, err := scalarfield.CriticalPoints(g, f)
			if err != nil {
				return err
			}
			census := scalarfield.Count(types)
			gf.log.WithFields(logrus.Fields{
				"vertices": len(types),
				"critical": census.Critical(),
			}).Debug("classified elevation field")

			w := cmd.OutOrStdout()
			if list {
				for v, c := range types {
					if c != scalarfield.Regular {
						fmt.Fprintf(w, "%d %s\n", v, c)
					}
				}
			}
			for c := scalarfield.Minimum; c <= scalarfield.Degenerate; c++ {
				fmt.Fprintf(w, "%-11s %d\n", c.String()+":", census[c])
			}
			fmt.Fprintf(w, "%-11s %d\n", "regular:", census[scalarfield.Regular])

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&direction, "direction", []float64{0, 0, 1}, "elevation direction x,y,z")
	cmd.Flags().BoolVar(&list, "list", false, "print every critical vertex")

	return cmd
}
