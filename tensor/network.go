package tensor

import (
	"math"

	"github.com/stoianmihail/netzwerk/bitset"
)

// Network is a tensor network over vertices 0..n-1 with m internal edges.
// Parallel edges are permitted; self-loops are not. After optimisation has
// started the network is never mutated, so concurrent reads are safe.
type Network struct {
	n, m int

	// edgeInfo has m+n entries: internal edges first, then one open-leg
	// entry per vertex, so any leg dimension is one flat lookup.
	edgeInfo []EdgeInfo

	// Linked adjacency. adj[u] heads a chain of cells; index 0 is the nil
	// sentinel, so cells[0] is never used.
	adj   []int
	cells []cell

	// neighbors[u] is the vertex set adjacent to u.
	neighbors []bitset.Set

	openLegSize []float64

	// Precomputed by PrepareForOptimization.
	vertexLegs  []bitset.Set
	vertexSizes []float64

	treeView *Network
	capacity int
}

func validDim(d float64) bool {
	return d > 0 && !math.IsInf(d, 1) && !math.IsNaN(d)
}

// New builds a network from an edge list and per-vertex open-leg dimensions.
// edges[i] connects edges[i][0] and edges[i][1] with dimension dims[i];
// openDims may be nil or shorter than n, missing entries default to 1.
func New(n int, edges [][2]int, dims []float64, openDims []float64) (*Network, error) {
	capacity, err := bitset.CapacityFor(n + len(edges))
	if err != nil {
		return nil, ErrCapacity
	}

	return newNetwork(capacity, n, edges, dims, openDims)
}

func newNetwork(capacity, n int, edges [][2]int, dims, openDims []float64) (*Network, error) {
	if n <= 0 {
		return nil, ErrVertexCount
	}
	m := len(edges)
	if n+m > capacity {
		return nil, ErrCapacity
	}

	net := &Network{n: n, m: m, capacity: capacity}
	net.edgeInfo = make([]EdgeInfo, m+n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrEdgeEndpoint
		}
		if !validDim(dims[i]) {
			return nil, ErrDimension
		}
		net.edgeInfo[i] = EdgeInfo{Dim: dims[i], U: u, V: v}
	}

	net.openLegSize = make([]float64, n)
	for i := range net.openLegSize {
		net.openLegSize[i] = 1.0
	}
	for i, d := range openDims {
		if i >= n {
			break
		}
		if !validDim(d) {
			return nil, ErrDimension
		}
		net.openLegSize[i] = d
	}

	net.initGraphStructure(true)

	return net, nil
}

// initGraphStructure (re)builds the linked adjacency from edgeInfo[0:m] and
// copies the open-leg sizes into the tail of edgeInfo. When initNeighborSets
// is false the neighbour sets are assumed to be prepared by the caller.
func (net *Network) initGraphStructure(initNeighborSets bool) {
	if initNeighborSets {
		net.neighbors = make([]bitset.Set, net.n)
		for i := range net.neighbors {
			net.neighbors[i] = bitset.New(net.capacity)
		}
	}
	net.adj = make([]int, net.n)
	net.cells = make([]cell, 1, 1+2*net.m)

	addEdge := func(u, v, edgeID int) {
		if initNeighborSets {
			if !net.neighbors[u].Contains(v) {
				net.neighbors[u].Insert(v)
			}
		}
		net.cells = append(net.cells, cell{v: v, edgeID: edgeID, next: net.adj[u]})
		net.adj[u] = len(net.cells) - 1
	}

	for i := 0; i < net.m; i++ {
		e := net.edgeInfo[i]
		addEdge(e.U, e.V, i)
		addEdge(e.V, e.U, i)
	}

	for i := 0; i < net.n; i++ {
		net.edgeInfo[net.m+i] = EdgeInfo{Dim: net.openLegSize[i]}
	}
}

// N returns the number of vertices.
func (net *Network) N() int { return net.n }

// M returns the number of internal edges.
func (net *Network) M() int { return net.m }

// Capacity returns the bit-set capacity all sets of this network use.
func (net *Network) Capacity() int { return net.capacity }

// OpenLegSize returns the open-leg dimension of vertex v.
func (net *Network) OpenLegSize(v int) float64 { return net.openLegSize[v] }

// Edge returns the leg with the given id; ids m..m+n-1 are open legs.
func (net *Network) Edge(id int) EdgeInfo { return net.edgeInfo[id] }

// ForEachNeighbor visits the adjacency chain of u in its stored order,
// yielding each neighbour together with the id of the connecting edge.
func (net *Network) ForEachNeighbor(u int, fn func(v, edgeID int)) {
	for pos := net.adj[u]; pos != 0; pos = net.cells[pos].next {
		fn(net.cells[pos].v, net.cells[pos].edgeID)
	}
}

// TreeView returns the spanning tree attached to this network, or nil.
func (net *Network) TreeView() *Network { return net.treeView }

// NewTreeView builds the spanning-tree companion network over the same
// vertices, validates it and attaches it. The tree shares the open-leg
// dimensions of the network and uses the same bit-set capacity, so sets may
// flow between the two views.
func (net *Network) NewTreeView(treeEdges [][2]int, treeDims []float64) (*Network, error) {
	tree, err := newNetwork(net.capacity, net.n, treeEdges, treeDims, net.openLegSize)
	if err != nil {
		return nil, err
	}
	if tree.m != net.n-1 || !tree.IsTree() {
		return nil, ErrNotSpanningTree
	}
	// Every tree edge must exist in the network.
	for i := 0; i < tree.m; i++ {
		e := tree.edgeInfo[i]
		if !net.neighbors[e.U].Contains(e.V) {
			return nil, ErrNotSpanningTree
		}
	}
	net.treeView = tree

	return tree, nil
}

// SetTreeView attaches a previously built companion network without
// validation. Intended for tests and callers that construct views manually.
func (net *Network) SetTreeView(tree *Network) { net.treeView = tree }

// PrepareForOptimization precomputes, per vertex, its full leg set and the
// size of the corresponding tensor.
func (net *Network) PrepareForOptimization() {
	net.vertexLegs = make([]bitset.Set, net.n)
	net.vertexSizes = make([]float64, net.n)
	for v := 0; v < net.n; v++ {
		net.vertexLegs[v] = net.VertexLegs(v, false)
		net.vertexSizes[v] = net.LegDimProduct(net.vertexLegs[v])
	}
}

// VertexLegSet returns the precomputed full leg set of v.
func (net *Network) VertexLegSet(v int) bitset.Set { return net.vertexLegs[v] }

// VertexSize returns the precomputed tensor size of v.
func (net *Network) VertexSize(v int) float64 { return net.vertexSizes[v] }

// IsTree reports whether the network is a connected tree.
func (net *Network) IsTree() bool {
	cum := bitset.New(net.capacity)
	net.reach(0, cum, bitset.Fill(net.capacity, net.n))

	return cum.Len() == net.n && net.m == net.n-1
}

// Copy returns an independent network with the same vertices, edges and
// open legs. The tree view is not copied.
func (net *Network) Copy() *Network {
	edges := make([][2]int, net.m)
	dims := make([]float64, net.m)
	for i := 0; i < net.m; i++ {
		edges[i] = [2]int{net.edgeInfo[i].U, net.edgeInfo[i].V}
		dims[i] = net.edgeInfo[i].Dim
	}
	open := make([]float64, net.n)
	copy(open, net.openLegSize)

	cp, err := newNetwork(net.capacity, net.n, edges, dims, open)
	if err != nil {
		// The source network was already validated.
		panic(err)
	}

	return cp
}
