// SPDX-License-Identifier: MIT

package gridconfig

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/gcfg.v1"

	"github.com/katalvlaran/gridtopo/implicit"
)

var (
	// ErrInvalidConfig indicates grid parameters that cannot configure a grid.
	ErrInvalidConfig = errors.New("gridconfig: invalid grid configuration")
	// ErrUnknownFormat indicates a file extension with no registered reader.
	ErrUnknownFormat = errors.New("gridconfig: unknown configuration format")
)

// Config holds everything needed to build an implicit.Grid.
type Config struct {
	Origin         [3]float64 `toml:"origin"`
	Spacing        [3]float64 `toml:"spacing"`
	Dimensions     [3]int     `toml:"dimensions"`
	BoundsChecking bool       `toml:"bounds_checking"`
}

// Default returns a unit-spaced single vertex at the origin with bounds
// checking enabled.
func Default() Config {
	return Config{
		Spacing:        [3]float64{1, 1, 1},
		Dimensions:     [3]int{1, 1, 1},
		BoundsChecking: implicit.DefaultBoundsChecking,
	}
}

// Validate checks every dimension is at least 1 and every spacing is a
// finite positive number.
func (c *Config) Validate() error {
	for a, d := range c.Dimensions {
		if d < 1 {
			return fmt.Errorf("dimension %d is %d: %w", a, d, ErrInvalidConfig)
		}
	}
	for a, s := range c.Spacing {
		if !(s > 0) || math.IsInf(s, 0) {
			return fmt.Errorf("spacing %d is %g: %w", a, s, ErrInvalidConfig)
		}
	}
	for a, o := range c.Origin {
		if math.IsNaN(o) || math.IsInf(o, 0) {
			return fmt.Errorf("origin %d is %g: %w", a, o, ErrInvalidConfig)
		}
	}

	return nil
}

// Grid builds and configures an implicit grid from c.
func (c *Config) Grid(opts ...implicit.Option) (*implicit.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts = append([]implicit.Option{implicit.WithBoundsChecking(c.BoundsChecking)}, opts...)

	return implicit.NewGrid(c.Origin, c.Spacing, c.Dimensions, opts...)
}

// Load reads path, starting from Default, and validates the result.
func Load(path string) (Config, error) {
	c := Default()

	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = loadTOML(path, &c)
	case ".cfg", ".ini", ".gcfg":
		err = loadGcfg(path, &c)
	default:
		return c, fmt.Errorf("Load %q: extension %q: %w", path, ext, ErrUnknownFormat)
	}
	if err != nil {
		return c, fmt.Errorf("Load %q: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return c, fmt.Errorf("Load %q: %w", path, err)
	}

	return c, nil
}

type tomlFile struct {
	Grid *Config `toml:"grid"`
}

func loadTOML(path string, c *Config) error {
	md, err := toml.DecodeFile(path, &tomlFile{Grid: c})
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}

	return nil
}

// gcfgGrid is the [grid] section of an INI-style file. It is pre-filled
// from the current config so absent keys keep their values.
type gcfgGrid struct {
	OriginX        float64 `gcfg:"origin-x"`
	OriginY        float64 `gcfg:"origin-y"`
	OriginZ        float64 `gcfg:"origin-z"`
	SpacingX       float64 `gcfg:"spacing-x"`
	SpacingY       float64 `gcfg:"spacing-y"`
	SpacingZ       float64 `gcfg:"spacing-z"`
	DimX           int     `gcfg:"dim-x"`
	DimY           int     `gcfg:"dim-y"`
	DimZ           int     `gcfg:"dim-z"`
	BoundsChecking bool    `gcfg:"bounds-checking"`
}

type gcfgFile struct {
	Grid gcfgGrid
}

func loadGcfg(path string, c *Config) error {
	f := gcfgFile{Grid: gcfgGrid{
		OriginX: c.Origin[0], OriginY: c.Origin[1], OriginZ: c.Origin[2],
		SpacingX: c.Spacing[0], SpacingY: c.Spacing[1], SpacingZ: c.Spacing[2],
		DimX: c.Dimensions[0], DimY: c.Dimensions[1], DimZ: c.Dimensions[2],
		BoundsChecking: c.BoundsChecking,
	}}
	if err := gcfg.ReadFileInto(&f, path); err != nil {
		return err
	}

	g := f.Grid
	c.Origin = [3]float64{g.OriginX, g.OriginY, g.OriginZ}
	c.Spacing = [3]float64{g.SpacingX, g.SpacingY, g.SpacingZ}
	c.Dimensions = [3]int{g.DimX, g.DimY, g.DimZ}
	c.BoundsChecking = g.BoundsChecking

	return nil
}
