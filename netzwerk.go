package netzwerk

import (
	"github.com/stoianmihail/netzwerk/optimizer"
	"github.com/stoianmihail/netzwerk/tensor"
)

// Contraction is one step of the output sequence; see optimizer.Contraction.
type Contraction = optimizer.Contraction

// Result is the outcome of an optimisation run: the total scalar cost and
// the n-1 contractions in post-order. For every step k both operands refer
// to indices strictly below n+k.
type Result struct {
	Cost     float64
	Sequence []Contraction
}

// Run optimises the contraction order of a tensor network with the named
// algorithm. The network has n vertices and the given internal edges with
// dimensions edgeDims; treeEdges and treeDims describe a spanning tree of
// it; openDims holds the per-vertex open-leg dimensions (it may be nil or
// shorter than n; missing entries default to 1). Recognised names are listed in the optimizer package.
func Run(algorithm string, n int, edges, treeEdges [][2]int,
	edgeDims, treeDims, openDims []float64, opts ...optimizer.Option) (Result, error) {
	net, err := tensor.New(n, edges, edgeDims, openDims)
	if err != nil {
		return Result{}, err
	}
	if _, err = net.NewTreeView(treeEdges, treeDims); err != nil {
		return Result{}, err
	}

	return run(net, algorithm, opts...)
}

func run(net *tensor.Network, algorithm string, opts ...optimizer.Option) (Result, error) {
	opt := optimizer.New(net, opts...)
	plan, err := opt.Optimize(algorithm)
	if err != nil {
		return Result{}, err
	}

	return Result{Cost: plan.TotalCost, Sequence: opt.PlanToSequence(plan)}, nil
}

// RunFiles optimises the networks described by the two input files: the
// graph and its spanning tree, in the text format documented in
// tensor.ReadInput. The bit-set capacity is selected from the graph header.
func RunFiles(algorithm, graphPath, treePath string, opts ...optimizer.Option) (Result, error) {
	graphIn, err := tensor.LoadInput(graphPath)
	if err != nil {
		return Result{}, err
	}
	treeIn, err := tensor.LoadInput(treePath)
	if err != nil {
		return Result{}, err
	}

	net, err := graphIn.Network()
	if err != nil {
		return Result{}, err
	}
	if _, err = net.NewTreeView(treeIn.Edges, treeIn.Dims); err != nil {
		return Result{}, err
	}

	return run(net, algorithm, opts...)
}

// TensorIKKBZ runs the spanning-tree ranking alone, keeping the best linear
// order found over all roots.
func TensorIKKBZ(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run(optimizer.AlgTensorIKKBZ, n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}

// LinDP reshapes every TensorIKKBZ linearisation with the interval DP and
// keeps the cheapest bushy tree.
func LinDP(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run(optimizer.AlgLinDP, n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}

// Greedy contracts the cheapest live edge until one tensor remains.
func Greedy(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run(optimizer.AlgGreedy, n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}

// TensorIKKBZParallel is TensorIKKBZ with the roots distributed over a
// worker pool.
func TensorIKKBZParallel(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run(optimizer.AlgTensorIKKBZParallel, n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}

// LinDPParallel is LinDP with the roots distributed over a worker pool.
func LinDPParallel(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run(optimizer.AlgLinDPParallel, n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}

// Custom is a placeholder entry kept for interface parity with the other
// algorithm functions; no custom algorithm is wired in, so it always fails
// with optimizer.ErrUnknownAlgorithm.
func Custom(n int, edges, treeEdges [][2]int, edgeDims, treeDims, openDims []float64,
	opts ...optimizer.Option) (Result, error) {
	return Run("custom", n, edges, treeEdges, edgeDims, treeDims, openDims, opts...)
}
