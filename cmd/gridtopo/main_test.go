package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/implicit"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", "--dims", "4,4,4")
	require.NoError(t, err)
	assert.Contains(t, out, "dimensionality: 3\n")
	assert.Contains(t, out, "vertices:       64\n")
	assert.Contains(t, out, "edges:          279\n")
	assert.Contains(t, out, "triangles:      378\n")
	assert.Contains(t, out, "tetrahedra:     162\n")
	assert.Contains(t, out, "accelerated:    true\n")
}

func TestInfoShortDims(t *testing.T) {
	out, _, err := run(t, "info", "-d", "3,3")
	require.NoError(t, err)
	assert.Contains(t, out, "dimensionality: 2\n")
	assert.Contains(t, out, "edges:          16\n")
	assert.Contains(t, out, "triangles:      8\n")
	assert.Contains(t, out, "accelerated:    false\n")
}

func TestInfoFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	require.NoError(t, os.WriteFile(path, []byte("[grid]\ndimensions = [5, 1, 1]\n"), 0o600))

	out, _, err := run(t, "info", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "dimensionality: 1\n")
	assert.Contains(t, out, "edges:          4\n")

	// Flags override the file.
	out, _, err = run(t, "info", "--config", path, "--dims", "2,2,2")
	require.NoError(t, err)
	assert.Contains(t, out, "tetrahedra:     6\n")
}

func TestQuery(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"query", "vertex", "star", "4", "--dims", "3,3"}, "vertex 4 star: [1 2 3 4 5 6]\n"},
		{[]string{"query", "vertex", "neighbors", "0", "--dims", "3,3"}, "vertex 0 neighbors: [1 3]\n"},
		{[]string{"query", "vertex", "boundary", "4", "--dims", "3,3"}, "vertex 4 boundary: false\n"},
		{[]string{"query", "vertex", "point", "5", "--dims", "3,3", "--spacing", "2,1,1"}, "vertex 5 point: 4 1 0\n"},
		{[]string{"query", "vertex", "position", "0", "--dims", "3,3"}, "vertex 0 position: "},
		{[]string{"query", "cell", "neighbors", "0", "--dims", "2,2,2"}, "cell 0 neighbors: [1 2]\n"},
		{[]string{"query", "tetrahedron", "vertices", "0", "--dims", "4,4,4"}, "tetrahedron 0 vertices: [0 1 4 20]\n"},
	}
	for _, tc := range cases {
		out, _, err := run(t, tc.args...)
		require.NoError(t, err, "%v", tc.args)
		assert.Contains(t, out, tc.want, "%v", tc.args)
	}
}

func TestQueryErrors(t *testing.T) {
	_, _, err := run(t, "query", "polygon", "star", "0", "--dims", "3,3")
	require.ErrorIs(t, err, errUnknownKind)

	_, _, err = run(t, "query", "vertex", "faces", "0", "--dims", "3,3")
	require.ErrorIs(t, err, errUnknownRelation)

	_, _, err = run(t, "query", "vertex", "star", "9", "--dims", "3,3")
	require.ErrorIs(t, err, implicit.ErrSimplexOutOfRange)

	_, _, err = run(t, "query", "cell", "neighbors", "0", "--dims", "4")
	require.ErrorIs(t, err, implicit.ErrNotImplemented1D)

	_, _, err = run(t, "query", "vertex", "star", "x", "--dims", "3,3")
	require.Error(t, err)

	_, _, err = run(t, "query", "vertex", "star")
	require.Error(t, err)

	_, _, err = run(t, "info", "--dims", "1,2,3,4")
	require.Error(t, err)

	_, _, err = run(t, "info", "--dims", "0,2")
	require.Error(t, err)
}

func TestCritical(t *testing.T) {
	out, _, err := run(t, "critical", "--dims", "4,4,4", "--direction", "1,2.1,4.3", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "0 minimum\n")
	assert.Contains(t, out, "63 maximum\n")
	assert.Contains(t, out, "minimum:    1\n")
	assert.Contains(t, out, "maximum:    1\n")
	assert.Contains(t, out, "1-saddle:   0\n")
	assert.Contains(t, out, "regular:    62\n")

	_, _, err = run(t, "critical", "--dims", "3,3", "--direction", "0,0,0")
	require.Error(t, err)

	_, _, err = run(t, "critical", "--direction", "1,2")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "info", "--dims", "2,2", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "grid ready")
}
