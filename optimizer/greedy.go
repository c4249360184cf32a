package optimizer

import (
	"container/heap"

	"github.com/stoianmihail/netzwerk/bitset"
)

// edgeEntry is one heap slot of the greedy contraction: an internal edge id
// and the contraction cost observed when the entry was pushed. Entries go
// stale as clusters grow; staleness is resolved lazily on pop.
type edgeEntry struct {
	cost   float64
	edgeID int
}

// edgeHeap orders entries by (cost asc, edge id asc).
type edgeHeap []edgeEntry

func (h edgeHeap) Len() int { return len(h) }

func (h edgeHeap) Less(i, j int) bool {
	if isClose(h[i].cost, h[j].cost) {
		return h[i].edgeID < h[j].edgeID
	}

	return h[i].cost < h[j].cost
}

func (h edgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edgeHeap) Push(x any) { *h = append(*h, x.(edgeEntry)) }

func (h *edgeHeap) Pop() any {
	old := *h
	last := old[len(old)-1]
	*h = old[:len(old)-1]

	return last
}

// runGreedy contracts the cheapest live edge until one cluster remains.
// Each vertex maps to the vertex set of its cluster; an edge whose
// endpoints share a cluster costs -1 and is discarded on pop. A popped
// entry whose cost no longer matches the current cluster shapes is pushed
// back with the fresh cost instead of being contracted.
func (o *Optimizer) runGreedy() (*Plan, error) {
	o.initBaseTensors()

	n := o.net.N()
	mapping := make([]bitset.Set, n)
	for v := 0; v < n; v++ {
		mapping[v] = bitset.Of(o.net.Capacity(), v)
	}

	cost := func(edgeID int) float64 {
		e := o.net.Edge(edgeID)
		l, r := mapping[e.U], mapping[e.V]
		if l.Equal(r) {
			return -1.0
		}

		return o.net.ContractionCost(l, r)
	}

	h := make(edgeHeap, 0, o.net.M())
	for id := 0; id < o.net.M(); id++ {
		h = append(h, edgeEntry{cost: cost(id), edgeID: id})
	}
	heap.Init(&h)

	for h.Len() > 0 {
		entry := heap.Pop(&h).(edgeEntry)

		// Already inside a contracted tensor?
		cur := cost(entry.edgeID)
		if cur < 0 {
			continue
		}
		if !isClose(cur, entry.cost) {
			heap.Push(&h, edgeEntry{cost: cur, edgeID: entry.edgeID})
			continue
		}

		e := o.net.Edge(entry.edgeID)
		l, r := mapping[e.U], mapping[e.V]
		o.createPlan(o.getPlan(l), o.getPlan(r))

		cum := l.Union(r)
		cum.ForEach(func(v int) { mapping[v] = cum })
	}

	return o.getPlan(bitset.Fill(o.net.Capacity(), n)), nil
}
