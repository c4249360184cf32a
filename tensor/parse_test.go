package tensor_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoianmihail/netzwerk/tensor"
)

const triangleFile = `3 3 1
0 1 4
1 2 5
0 2 3
1 2.5
`

func TestReadInput(t *testing.T) {
	in, err := tensor.ReadInput(strings.NewReader(triangleFile))
	require.NoError(t, err)

	assert.Equal(t, 3, in.N)
	assert.Equal(t, 3, in.M)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 2}}, in.Edges)
	assert.Equal(t, []float64{4, 5, 3}, in.Dims)
	assert.Equal(t, map[int]float64{1: 2.5}, in.OpenLegs)

	// Missing vertices default to 1 in the dense expansion.
	assert.Equal(t, []float64{1, 2.5, 1}, in.OpenDims())

	net, err := in.Network()
	require.NoError(t, err)
	assert.Equal(t, 2.5, net.OpenLegSize(1))
}

func TestReadInputErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty header":  "",
		"negative n":    "-1 0 0",
		"truncated":     "3 3 0\n0 1 4\n",
		"endpoint":      "2 1 0\n0 5 2\n",
		"zero dim":      "2 1 0\n0 1 0\n",
		"open vertex":   "2 0 1\n7 2\n",
		"open zero dim": "2 0 1\n0 0\n",
	} {
		_, err := tensor.ReadInput(strings.NewReader(input))
		assert.ErrorIs(t, err, tensor.ErrParse, name)
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.in")
	require.NoError(t, os.WriteFile(path, []byte(triangleFile), 0o644))

	in, err := tensor.LoadInput(path)
	require.NoError(t, err)
	assert.Equal(t, 3, in.N)

	_, err = tensor.LoadInput(filepath.Join(dir, "missing.in"))
	assert.Error(t, err)
}
