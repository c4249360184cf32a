package tensor

import "sort"

// ExtractSpanningTree builds a maximum spanning tree of the network with
// Kruskal's algorithm, attaches it as the tree view and returns it.
// Heavy legs are pulled into the tree first, which gives the ranking
// algorithm the most informative structural hint. Ties keep the original
// edge order. Returns ErrNotSpanningTree when the network is disconnected.
func (net *Network) ExtractSpanningTree() (*Network, error) {
	order := make([]int, net.m)
	for i := range order {
		order[i] = i
	}
	// Stable sort by descending dimension, tie-broken by edge id.
	sort.SliceStable(order, func(a, b int) bool {
		return net.edgeInfo[order[a]].Dim > net.edgeInfo[order[b]].Dim
	})

	// Disjoint-set forest with path compression and union by size.
	parent := make([]int, net.n)
	size := make([]int, net.n)
	for v := range parent {
		parent[v] = v
		size[v] = 1
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	var (
		treeEdges [][2]int
		treeDims  []float64
	)
	for _, id := range order {
		e := net.edgeInfo[id]
		ru, rv := find(e.U), find(e.V)
		if ru == rv {
			continue
		}
		if size[ru] < size[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		size[ru] += size[rv]
		treeEdges = append(treeEdges, [2]int{e.U, e.V})
		treeDims = append(treeDims, e.Dim)
		if len(treeEdges) == net.n-1 {
			break
		}
	}
	if len(treeEdges) != net.n-1 {
		return nil, ErrNotSpanningTree
	}

	return net.NewTreeView(treeEdges, treeDims)
}
