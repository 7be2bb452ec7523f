package gridconfig

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/implicit"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "grid.toml", `
[grid]
origin = [1.0, -2.0, 0.5]
spacing = [0.5, 0.5, 2.0]
dimensions = [4, 3, 2]
bounds_checking = false
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, -2, 0.5}, c.Origin)
	assert.Equal(t, [3]float64{0.5, 0.5, 2}, c.Spacing)
	assert.Equal(t, [3]int{4, 3, 2}, c.Dimensions)
	assert.False(t, c.BoundsChecking)
}

func TestLoadTOMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "grid.toml", "[grid]\ndimensions = [5, 5, 1]\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 1, 1}, c.Spacing)
	assert.True(t, c.BoundsChecking)
	assert.Equal(t, [3]int{5, 5, 1}, c.Dimensions)
}

func TestLoadTOMLUnknownKey(t *testing.T) {
	path := writeFile(t, "grid.toml", "[grid]\ndims = [5, 5, 1]\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadGcfg(t *testing.T) {
	path := writeFile(t, "grid.cfg", `
[grid]
origin-x = 2
spacing-z = 0.25
dim-x = 8
dim-y = 8
dim-z = 8
bounds-checking = false
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 0, 0}, c.Origin)
	assert.Equal(t, [3]float64{1, 1, 0.25}, c.Spacing)
	assert.Equal(t, [3]int{8, 8, 8}, c.Dimensions)
	assert.False(t, c.BoundsChecking)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "grid.yaml", "grid: {}"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(writeFile(t, "grid.ini", "[grid]\ndim-x = 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "grid.toml", "[grid]\nspacing = [1.0, 0.0, 1.0]\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "grid.toml", "[grid\n"))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{"default", func(*Config) {}, true},
		{"zero dimension", func(c *Config) { c.Dimensions[1] = 0 }, false},
		{"negative spacing", func(c *Config) { c.Spacing[2] = -1 }, false},
		{"nan origin", func(c *Config) { c.Origin[0] = math.NaN() }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.edit(&c)
			err := c.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigGrid(t *testing.T) {
	c := Default()
	c.Dimensions = [3]int{3, 3, 1}
	c.BoundsChecking = false

	g, err := c.Grid()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dimensionality())
	assert.Equal(t, 8, g.TriangleNumber())

	c.Dimensions[0] = 0
	_, err = c.Grid()
	require.ErrorIs(t, err, ErrInvalidConfig)

	// The caller's options come after the file's bounds checking.
	c = Default()
	g, err = c.Grid(implicit.WithBoundsChecking(true))
	require.NoError(t, err)
	assert.Equal(t, -1, g.VertexNeighborNumber(5))
}
