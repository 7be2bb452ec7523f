// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/gridtopo/gridconfig"
	"github.com/katalvlaran/gridtopo/implicit"
)

// gridFlags are the grid parameters shared by every subcommand.
type gridFlags struct {
	config    string
	dims      []int
	origin    []float64
	spacing   []float64
	unchecked bool
	verbose   bool

	log *logrus.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	gf := &gridFlags{log: logrus.New()}
	gf.log.SetOutput(errOut)
	gf.log.SetLevel(logrus.WarnLevel)

	root := &cobra.Command{
		Use:           "gridtopo",
		Short:         "Query the implicit triangulation of a regular grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if gf.verbose {
				gf.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	gf.register(root.PersistentFlags())
	root.AddCommand(newInfoCmd(gf), newQueryCmd(gf), newCriticalCmd(gf))

	return root
}

// register binds the grid flags to fs.
func (gf *gridFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&gf.config, "config", "c", "", "grid parameter file (.toml, .cfg, .ini)")
	fs.IntSliceVarP(&gf.dims, "dims", "d", nil, "vertex counts per axis, e.g. 4,4,4")
	fs.Float64SliceVar(&gf.origin, "origin", nil, "grid origin x,y,z")
	fs.Float64SliceVar(&gf.spacing, "spacing", nil, "grid spacing x,y,z")
	fs.BoolVar(&gf.unchecked, "unchecked", false, "disable id and local index validation")
	fs.BoolVarP(&gf.verbose, "verbose", "v", false, "debug logging")
}

// grid resolves the configuration and builds the grid.
func (gf *gridFlags) grid(cmd *cobra.Command) (*implicit.Grid, error) {
	c := gridconfig.Default()
	if gf.config != "" {
		var err error
		if c, err = gridconfig.Load(gf.config); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dims") {
		if err := copyInts(c.Dimensions[:], gf.dims, "dims"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("origin") {
		if err := copyFloats(c.Origin[:], gf.origin, "origin"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("spacing") {
		if err := copyFloats(c.Spacing[:], gf.spacing, "spacing"); err != nil {
			return nil, err
		}
	}
	if gf.unchecked {
		c.BoundsChecking = false
	}

	g, err := c.Grid(implicit.WithLogger(gf.log))
	if err != nil {
		return nil, err
	}
	gf.log.WithFields(logrus.Fields{
		"dims":    c.Dimensions,
		"checked": c.BoundsChecking,
	}).Debug("grid ready")

	return g, nil
}

// copyInts fills dst from up to three flag values; missing axes are 1.
func copyInts(dst []int, src []int, name string) error {
	if len(src) == 0 || len(src) > len(dst) {
		return fmt.Errorf("--%s takes 1 to %d values, got %d", name, len(dst), len(src))
	}
	for a := range dst {
		dst[a] = 1
		if a < len(src) {
			dst[a] = src[a]
		}
	}

	return nil
}

// copyFloats fills dst from exactly len(dst) flag values.
func copyFloats(dst []float64, src []float64, name string) error {
	if len(src) != len(dst) {
		return fmt.Errorf("--%s takes %d values, got %d", name, len(dst), len(src))
	}
	copy(dst, src)

	return nil
}
