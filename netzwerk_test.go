package netzwerk_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoianmihail/netzwerk"
	"github.com/stoianmihail/netzwerk/optimizer"
	"github.com/stoianmihail/netzwerk/tensor"
)

var (
	triangleEdges = [][2]int{{0, 1}, {1, 2}, {0, 2}}
	triangleDims  = []float64{4, 5, 3}
	triangleTree  = [][2]int{{0, 1}, {1, 2}}
	triangleTDims = []float64{4, 5}
)

func TestRunTriangle(t *testing.T) {
	res, err := netzwerk.LinDP(3, triangleEdges, triangleTree, triangleDims, triangleTDims, nil)
	require.NoError(t, err)
	assert.InDelta(t, 72.0, res.Cost, 1e-9)
	assert.Len(t, res.Sequence, 2)

	// Every operand must predate its consumer.
	for k, c := range res.Sequence {
		assert.Less(t, c.I, 3+k)
		assert.Less(t, c.J, 3+k)
	}
}

func TestRunAlgorithms(t *testing.T) {
	for _, alg := range []string{
		optimizer.AlgTensorIKKBZ,
		optimizer.AlgLinDP,
		optimizer.AlgGreedy,
		optimizer.AlgTensorIKKBZParallel,
		optimizer.AlgLinDPParallel,
	} {
		res, err := netzwerk.Run(alg, 3, triangleEdges, triangleTree, triangleDims, triangleTDims, nil,
			optimizer.WithThreads(2))
		require.NoError(t, err, alg)
		assert.Len(t, res.Sequence, 2, alg)
		assert.Greater(t, res.Cost, 0.0, alg)
	}
}

func TestCustomIsUnknown(t *testing.T) {
	_, err := netzwerk.Custom(3, triangleEdges, triangleTree, triangleDims, triangleTDims, nil)
	assert.ErrorIs(t, err, optimizer.ErrUnknownAlgorithm)
}

func TestRunRejectsBadTree(t *testing.T) {
	// Too few edges to span the network.
	_, err := netzwerk.LinDP(3, triangleEdges, [][2]int{{0, 1}}, triangleDims, []float64{4}, nil)
	assert.ErrorIs(t, err, tensor.ErrNotSpanningTree)

	// Right count, but an edge the network does not have.
	_, err = netzwerk.LinDP(4,
		[][2]int{{0, 1}, {1, 2}, {2, 3}},
		[][2]int{{0, 1}, {1, 2}, {1, 3}},
		[]float64{2, 2, 2}, []float64{2, 2, 2}, nil)
	assert.ErrorIs(t, err, tensor.ErrNotSpanningTree)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := netzwerk.LinDP(0, nil, nil, nil, nil, nil)
	assert.ErrorIs(t, err, tensor.ErrVertexCount)

	_, err = netzwerk.LinDP(2, [][2]int{{0, 3}}, [][2]int{{0, 1}}, []float64{2}, []float64{2}, nil)
	assert.ErrorIs(t, err, tensor.ErrEdgeEndpoint)
}

// buildPathInputs returns a path of n tensors with uniform dimension 2.
func buildPathInputs(n int) (edges [][2]int, dims []float64) {
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{v - 1, v})
		dims = append(dims, 2)
	}

	return edges, dims
}

// Crossing a capacity boundary must transparently select the next wider
// bit-set variant: a 32-vertex path fits 64 bits, a 40-vertex one needs 128.
func TestCapacityBoundary(t *testing.T) {
	for _, n := range []int{32, 40} {
		edges, dims := buildPathInputs(n)
		res, err := netzwerk.LinDP(n, edges, edges, dims, dims, nil)
		require.NoError(t, err, "n=%d", n)
		assert.Len(t, res.Sequence, n-1)
		assert.Greater(t, res.Cost, 0.0)
	}

	// Beyond the widest variant the run fails up front.
	edges, dims := buildPathInputs(1200)
	_, err := netzwerk.LinDP(1200, edges, edges, dims, dims, nil)
	assert.ErrorIs(t, err, tensor.ErrCapacity)
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "graph.in")
	tree := filepath.Join(dir, "tree.in")

	writeNet := func(path string, edges [][2]int, dims []float64) {
		content := fmt.Sprintf("%d %d 0\n", 3, len(edges))
		for i, e := range edges {
			content += fmt.Sprintf("%d %d %g\n", e[0], e[1], dims[i])
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	writeNet(graph, triangleEdges, triangleDims)
	writeNet(tree, triangleTree, triangleTDims)

	res, err := netzwerk.RunFiles(optimizer.AlgLinDP, graph, tree)
	require.NoError(t, err)
	assert.InDelta(t, 72.0, res.Cost, 1e-9)

	_, err = netzwerk.RunFiles(optimizer.AlgLinDP, filepath.Join(dir, "nope.in"), tree)
	assert.Error(t, err)
}
