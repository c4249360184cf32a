// Package optimizer computes a low-cost contraction order for a tensor
// network. Given a network and its spanning-tree view it produces a binary
// plan tree whose leaves are the input tensors, minimising the summed cost
// of the pairwise contractions.
//
// Three algorithm families are provided:
//
//   - TensorIKKBZ: a polymatroid-style ranking that linearises the spanning
//     tree once per root, repeatedly merging nodes whose rank ordering is
//     violated;
//   - LinDP: an O(n³) interval dynamic program that reshapes each
//     linearisation into a bushy tree;
//   - Greedy: repeated cheapest-edge contraction directly on the graph.
//
// The drivers share a plan cache of reference-shared nodes keyed by vertex
// set: combining two subplans either inserts a new node or improves the
// cached one in place, so every handle already given out observes the
// cheaper cost automatically.
//
// Parallel variants of TensorIKKBZ and LinDP distribute roots over a worker
// pool; workers are fully independent and only the running best solution is
// guarded by a mutex. See Optimize for the entry point.
package optimizer
