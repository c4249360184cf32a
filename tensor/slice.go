package tensor

import "github.com/stoianmihail/netzwerk/bitset"

// Slice builds a new network restricted to ids. Vertices are renumbered
// densely in ascending id order. Edges with exactly one endpoint inside are
// folded into the open-leg dimension of that endpoint; between any pair of
// kept vertices only the first encountered edge survives.
func (net *Network) Slice(ids bitset.Set) *Network {
	sn := ids.Len()
	mapping := make([]int, net.n)
	for i := range mapping {
		mapping[i] = Nil
	}
	open := make([]float64, sn)
	idx := 0
	ids.ForEach(func(v int) {
		mapping[v] = idx
		open[idx] = net.openLegSize[v]
		idx++
	})

	var (
		edges     [][2]int
		dims      []float64
		connected = make([]bitset.Set, sn)
	)
	for i := range connected {
		connected[i] = bitset.New(net.capacity)
	}
	ids.ForEach(func(u int) {
		net.ForEachNeighbor(u, func(v, edgeID int) {
			dim := net.edgeInfo[edgeID].Dim
			if ids.Contains(v) {
				v1, v2 := mapping[u], mapping[v]
				if connected[v1].Contains(v2) {
					return
				}
				connected[v1].Insert(v2)
				connected[v2].Insert(v1)
				edges = append(edges, [2]int{v1, v2})
				dims = append(dims, dim)

				return
			}
			// A boundary edge folds into the open leg of its kept endpoint.
			open[mapping[u]] *= dim
		})
	})

	sliced, err := newNetwork(net.capacity, sn, edges, dims, open)
	if err != nil {
		// Restricting a valid network cannot produce an invalid one.
		panic(err)
	}

	return sliced
}

// ContractSubgraph contracts the vertices in ids into their lowest-indexed
// member in place. Surviving edges are compacted; edges with exactly one
// endpoint inside are replaced by a single edge to the representative whose
// dimension is the product of the parallel originals; the open-leg sizes of
// the absorbed vertices are multiplied into the representative.
func (net *Network) ContractSubgraph(ids bitset.Set) {
	repr := ids.Min()

	cur := 0
	incoming := make([]float64, net.n)
	for i := range incoming {
		incoming[i] = -1
	}
	for i := 0; i < net.m; i++ {
		e := net.edgeInfo[i]
		inU, inV := ids.Contains(e.U), ids.Contains(e.V)
		switch {
		case inU && inV:
			// Internal to the contracted set, drop.
		case inU:
			if incoming[e.V] < 0 {
				incoming[e.V] = 1.0
			}
			incoming[e.V] *= e.Dim
		case inV:
			if incoming[e.U] < 0 {
				incoming[e.U] = 1.0
			}
			incoming[e.U] *= e.Dim
		default:
			net.edgeInfo[cur] = e
			cur++
		}
	}
	for v := 0; v < net.n; v++ {
		if incoming[v] > 0 {
			net.edgeInfo[cur] = EdgeInfo{Dim: incoming[v], U: v, V: repr}
			cur++
		}
	}

	net.m = cur
	net.edgeInfo = append(net.edgeInfo[:cur], make([]EdgeInfo, net.n)...)

	ids.ForEach(func(u int) {
		if u != repr {
			net.openLegSize[repr] *= net.openLegSize[u]
		}
	})

	net.initGraphStructure(true)
}
