// Package netzwerk computes low-cost contraction orders for tensor
// networks: given an undirected multigraph whose vertices are tensors and
// whose edges are shared indices with positive dimensions, it determines a
// binary contraction tree minimising the summed cost of the pairwise
// contractions.
//
// 🚀 What is netzwerk?
//
//	A library and CLI that brings together:
//		• TensorIKKBZ — spanning-tree ranking, one linearisation per root
//		• LinDP — an O(n³) interval DP reshaping each linearisation into a bushy tree
//		• Greedy — repeated cheapest-edge contraction
//		• Parallel drivers distributing roots over a worker pool
//
// The heavy lifting happens in three subpackages:
//
//	bitset/    — fixed-capacity dense sets of vertex and edge indices
//	tensor/    — the network representation, its tree view and cost model
//	optimizer/ — the algorithms, the shared plan cache and the drivers
//
// This package is the boundary: it validates raw inputs, selects a bit-set
// capacity from the network size (never exposed in the API), wires the
// spanning-tree view and translates the winning plan into a post-order
// contraction sequence. Each algorithm has a named entry (TensorIKKBZ,
// LinDP, Greedy, TensorIKKBZParallel, LinDPParallel); Run accepts the
// algorithm by name.
//
// A quick ASCII example, a triangle of tensors:
//
//	0───1
//	 ╲  │
//	  ╲ │
//	    2
//
// contracts in two steps; Run returns the two contraction pairs and the
// total scalar cost.
package netzwerk
