package tensor

import "github.com/stoianmihail/netzwerk/bitset"

// The methods in this file evaluate the network directly, never the tree
// view. Workers that need tree-view delegation go through a View.

// LegDimProduct returns the product of the dimensions of the legs in set.
func (net *Network) LegDimProduct(set bitset.Set) float64 {
	ret := 1.0
	set.ForEach(func(id int) {
		ret *= net.edgeInfo[id].Dim
	})

	return ret
}

// VertexLegs collects the ids of the legs incident to u. Unless strict, the
// virtual open leg m+u is included as well; strict mode is used by the
// ranking algorithm to separate tree legs from the actual open legs.
func (net *Network) VertexLegs(u int, strict bool) bitset.Set {
	ret := bitset.New(net.capacity)
	net.ForEachNeighbor(u, func(_, edgeID int) {
		ret.Insert(edgeID)
	})
	if !strict {
		ret.Insert(net.m + u)
	}

	return ret
}

// OpenLegs returns the legs with exactly one endpoint in set, which is the
// leg set of the supernode obtained by contracting set. Internal legs cancel
// pairwise under the symmetric difference.
func (net *Network) OpenLegs(set bitset.Set) bitset.Set {
	ret := bitset.New(net.capacity)
	set.ForEach(func(v int) {
		ret.SymDiffWith(net.VertexLegs(v, false))
	})

	return ret
}

// ContractionCost returns the cost of contracting the disjoint vertex sets
// a and b: the product over the union of their open-leg sets, counting each
// output index once and each summed index once.
func (net *Network) ContractionCost(a, b bitset.Set) float64 {
	return net.LegDimProduct(net.OpenLegs(a).Union(net.OpenLegs(b)))
}

// LinearCost walks a linearisation left to right, keeping the running leg
// set and charging the leg product of the running set joined with the next
// vertex at each step.
func (net *Network) LinearCost(sol []int) float64 {
	ret := 0.0
	cur := net.VertexLegs(sol[0], false)
	for i := 1; i < len(sol); i++ {
		legs := net.VertexLegs(sol[i], false)
		ret += net.LegDimProduct(cur.Union(legs))
		cur.SymDiffWith(legs)
	}

	return ret
}

// BushyCost evaluates a bushy solution in post-order, summing the
// contraction cost of every internal node.
func (net *Network) BushyCost(sol []RangeNode) float64 {
	var rec func(idx int) (float64, bitset.Set)
	rec = func(idx int) (float64, bitset.Set) {
		node := sol[idx]
		if node.IsLeaf() {
			return 0, bitset.Of(net.capacity, node.NodeIndex)
		}
		lc, ls := rec(node.Left)
		rc, rs := rec(node.Right)
		cost := net.ContractionCost(ls, rs)
		ls.UnionWith(rs)

		return lc + rc + cost, ls
	}
	cost, _ := rec(len(sol) - 1)

	return cost
}

// Reaches reports whether u has a direct edge into set.
func (net *Network) Reaches(u int, set bitset.Set) bool {
	found := false
	net.ForEachNeighbor(u, func(v, _ int) {
		if set.Contains(v) {
			found = true
		}
	})

	return found
}

// Neighbors returns the vertices adjacent to s, excluding s itself and the
// forbidden set x.
func (net *Network) Neighbors(s, x bitset.Set) bitset.Set {
	ret := bitset.New(net.capacity)
	for i := 0; i < net.m; i++ {
		u, v := net.edgeInfo[i].U, net.edgeInfo[i].V
		if s.Contains(u) && !s.Contains(v) && !x.Contains(v) && !ret.Contains(v) {
			ret.Insert(v)
		}
		if s.Contains(v) && !s.Contains(u) && !x.Contains(u) && !ret.Contains(u) {
			ret.Insert(u)
		}
	}

	return ret
}

// reach accumulates into cum the vertices reachable from u through
// allowedSet, u included.
func (net *Network) reach(u int, cum, allowedSet bitset.Set) {
	cum.Insert(u)
	net.ForEachNeighbor(u, func(v, _ int) {
		if !cum.Contains(v) && allowedSet.Contains(v) {
			net.reach(v, cum, allowedSet)
		}
	})
}

// IsConnected reports whether the vertices in set form a connected subgraph.
func (net *Network) IsConnected(set bitset.Set) bool {
	cum := bitset.New(net.capacity)
	net.reach(set.Min(), cum, set)

	return set.IsSubsetOf(cum)
}

// IsRangeConnected reports whether the slice [i, j] of the linearisation
// induces a connected subgraph.
func (net *Network) IsRangeConnected(i, j int, linearSol []int) bool {
	set := bitset.New(net.capacity)
	for k := i; k <= j; k++ {
		set.Insert(linearSol[k])
	}

	return net.IsConnected(set)
}
