package tensor

import "errors"

// Nil marks an absent index in RangeNode links and similar structures.
const Nil = -1

var (
	// ErrVertexCount is returned when a network is created with n <= 0.
	ErrVertexCount = errors.New("tensor: non-positive vertex count")

	// ErrEdgeEndpoint is returned when an edge endpoint is out of [0, n).
	ErrEdgeEndpoint = errors.New("tensor: edge endpoint out of range")

	// ErrDimension is returned when an edge or open-leg dimension is not a
	// positive finite number.
	ErrDimension = errors.New("tensor: dimension must be positive and finite")

	// ErrCapacity is returned when n + m exceeds the widest supported
	// bit-set capacity.
	ErrCapacity = errors.New("tensor: network exceeds maximal capacity")

	// ErrNotSpanningTree is returned when the supplied tree view is not a
	// spanning tree of the network.
	ErrNotSpanningTree = errors.New("tensor: tree view is not a spanning tree of the network")

	// ErrParse is returned when an input file is malformed.
	ErrParse = errors.New("tensor: malformed input")
)

// EdgeInfo describes a leg: its dimension and, for internal edges, the
// unordered endpoint pair. Open-leg entries keep U == V == 0; they are never
// consulted as edges.
type EdgeInfo struct {
	Dim  float64
	U, V int
}

// RangeNode is one entry of a bushy tree laid out as a flat array in which
// every child precedes its parent. A leaf stores a vertex id and Nil links; an internal node
// stores the split vertex id (cosmetic) and the indices of its children,
// both strictly below its own index. The root is the last entry.
type RangeNode struct {
	NodeIndex   int
	Left, Right int
}

// IsLeaf reports whether r is a leaf entry.
func (r RangeNode) IsLeaf() bool { return r.Left == Nil }

// cell is one slot of the linked adjacency structure: a neighbour, the id of
// the connecting edge, and the index of the next slot (0 terminates).
type cell struct {
	v, edgeID int
	next      int
}
