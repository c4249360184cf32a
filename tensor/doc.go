// Package tensor models a tensor network: an undirected multigraph whose
// vertices are tensors and whose edges are shared indices ("legs") with
// positive dimensions. Every vertex additionally carries an open-leg
// dimension, the product of its dangling indices.
//
// Legs are addressed by a single integer id. For a network with n vertices
// and m internal edges, ids 0..m-1 name the internal edges and ids
// m..m+n-1 name the virtual open legs, one per vertex; the dimension of any
// leg is a single flat lookup.
//
// A Network may hold a second Network as its tree view, an externally
// supplied spanning tree used as a structural hint. Queries that can
// delegate to the tree view do so through a View handle obtained from
// NewView; each concurrent worker owns its own View, so toggling the
// delegation flag never serialises workers.
//
// The package also evaluates contraction costs: the cost of contracting two
// disjoint vertex sets is the product of the dimensions of the union of
// their open-leg sets, which counts each output index once and each summed
// index once.
package tensor
