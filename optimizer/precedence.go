package optimizer

import (
	"container/heap"
	"fmt"

	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

// pgNode is one vertex of the precedence graph: the rooted tree derived
// from the tree view, carrying the aggregates the ranking needs.
type pgNode struct {
	// vertexID leads the compound this node represents.
	vertexID int
	// incomingEdgeID is the tree edge towards the parent, tensor.Nil at
	// the root.
	incomingEdgeID int
	// openSize is the product of the real open legs of the (compound)
	// node; kept incrementally to avoid recomputation during merging.
	openSize float64
	// outerLegs holds the remaining tree legs of the (compound) node,
	// excluding the incoming one.
	outerLegs bitset.Set
	// acc is the accumulated cost, the numerator of the symbolic rank.
	acc float64
	// contracted counts the chain prefix already melded into this node.
	contracted int
	// children in BFS discovery order.
	children []int
	// chain lists the vertices of the subtree in merge order.
	chain []int
	// compound lists the base vertices absorbed into this node.
	compound []int
}

// precedenceGraph owns the rooted tree for one root and a View whose tree
// flag is raised for the whole linearisation phase.
type precedenceGraph struct {
	view *tensor.View
	tree []pgNode
	bfs  []int
	root int
}

// newPrecedenceGraph builds the precedence graph of root by BFS over the
// tree view. The view's tree flag is left enabled; runTensorIKKBZ lowers it
// before computing the final linear cost.
func newPrecedenceGraph(view *tensor.View, root int) *precedenceGraph {
	view.SetTree(true)

	net := view.Net()
	tv := net.TreeView()
	n := net.N()

	pg := &precedenceGraph{
		view: view,
		tree: make([]pgNode, n),
		bfs:  make([]int, 0, n),
		root: root,
	}

	pg.tree[root] = pgNode{
		vertexID:       root,
		incomingEdgeID: tensor.Nil,
		openSize:       net.OpenLegSize(root),
		outerLegs:      view.VertexLegs(root, true),
	}
	pg.tree[root].acc = pg.tree[root].openSize * view.LegDimProduct(pg.tree[root].outerLegs)

	queue := []int{root}
	seen := bitset.Of(net.Capacity(), root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		pg.bfs = append(pg.bfs, cur)

		tv.ForEachNeighbor(cur, func(v, edgeID int) {
			if seen.Contains(v) {
				return
			}
			seen.Insert(v)
			pg.tree[cur].children = append(pg.tree[cur].children, v)

			node := &pg.tree[v]
			node.vertexID = v
			node.incomingEdgeID = edgeID
			node.openSize = net.OpenLegSize(v)
			node.outerLegs = view.VertexLegs(v, true).Minus(edgeID)
			node.acc = node.openSize * view.LegDimProduct(node.outerLegs.Plus(edgeID))
			queue = append(queue, v)
		})
	}
	if len(pg.bfs) != n {
		panic(fmt.Sprintf("optimizer: tree view reaches %d of %d vertices", len(pg.bfs), n))
	}

	return pg
}

// rank returns the symbolic rank of a non-root node as the rational pair
// (num, den). Comparisons cross-multiply; the denominator may legally be
// zero or negative and the sign convention must not be normalised.
func (pg *precedenceGraph) rank(idx int) (num, den float64) {
	node := &pg.tree[idx]
	num = node.acc
	den = pg.view.FetchEdge(node.incomingEdgeID).Dim -
		node.openSize*pg.view.LegDimProduct(node.outerLegs)

	return num, den
}

// rankLess reports rank(a) < rank(b) by cross-multiplication.
func (pg *precedenceGraph) rankLess(a, b int) bool {
	x, y := pg.rank(a)
	c, d := pg.rank(b)

	return x*d < y*c
}

// shouldMerge reports whether next violates the rank ordering below parent,
// i.e. rank(parent) > rank(next).
func (pg *precedenceGraph) shouldMerge(parent, next int) bool {
	a, b := pg.rank(parent)
	c, d := pg.rank(next)

	return a*d > b*c
}

// chainHeap merges the chains of a node's children by head-of-chain rank.
// Each slot is a child position; its head is the child itself until the
// first pop, afterwards the chain entry under the slot pointer.
type chainHeap struct {
	pg    *precedenceGraph
	owner int
	slots []int
	ptr   []int
}

func (h *chainHeap) head(slot int) int {
	child := h.pg.tree[h.owner].children[slot]
	if h.ptr[slot] < 0 {
		return child
	}

	return h.pg.tree[child].chain[h.ptr[slot]]
}

func (h *chainHeap) Len() int { return len(h.slots) }

func (h *chainHeap) Less(i, j int) bool {
	return h.pg.rankLess(h.head(h.slots[i]), h.head(h.slots[j]))
}

func (h *chainHeap) Swap(i, j int) { h.slots[i], h.slots[j] = h.slots[j], h.slots[i] }

func (h *chainHeap) Push(x any) { h.slots = append(h.slots, x.(int)) }

func (h *chainHeap) Pop() any {
	last := h.slots[len(h.slots)-1]
	h.slots = h.slots[:len(h.slots)-1]

	return last
}

// runTensorIKKBZ linearises the precedence graph: a post-order sweep builds
// each node's chain by heap-merging the children's chains, then absorbs the
// chain prefix whose rank ordering the node violates. Returns the resulting
// permutation with its linear cost on the graph view.
func (pg *precedenceGraph) runTensorIKKBZ() (float64, []int) {
	n := len(pg.tree)

	for index := n - 1; index >= 0; index-- {
		cur := pg.bfs[index]
		node := &pg.tree[cur]

		node.compound = append(node.compound, cur)

		// A leaf keeps an empty chain.
		if len(node.children) == 0 {
			continue
		}

		// Merge the children's chains by ascending head rank.
		h := &chainHeap{pg: pg, owner: cur, slots: make([]int, len(node.children)), ptr: make([]int, len(node.children))}
		for i := range h.slots {
			h.slots[i] = i
			h.ptr[i] = -1
		}
		heap.Init(h)

		for h.Len() > 0 {
			slot := h.slots[0]
			node.chain = append(node.chain, h.head(slot))

			// Advance the slot pointer past the element just consumed.
			child := &pg.tree[node.children[slot]]
			drop := false
			if h.ptr[slot] < 0 {
				switch {
				case len(child.chain) == 0:
					// A leaf child contributes only itself.
					drop = true
				case child.contracted == len(child.chain):
					// The contracted prefix covers the whole chain.
					drop = true
				default:
					// Skip the part already melded into the child.
					h.ptr[slot] = child.contracted
				}
			} else {
				h.ptr[slot]++
				drop = h.ptr[slot] == len(child.chain)
			}
			if drop {
				heap.Pop(h)
			} else {
				heap.Fix(h, 0)
			}
		}

		// The root only assembles its chain.
		if cur == pg.root {
			break
		}

		// Absorb the chain prefix that violates the rank ordering. The
		// update order matters: acc reads the pre-merge aggregates.
		node.contracted = 0
		for i := 0; i < len(node.chain) && pg.shouldMerge(cur, node.chain[i]); i++ {
			next := &pg.tree[node.chain[i]]

			node.acc += node.openSize * pg.view.LegDimProduct(node.outerLegs.Minus(next.incomingEdgeID)) * next.acc
			node.outerLegs.SymDiffWith(next.outerLegs.Plus(next.incomingEdgeID))
			node.openSize *= next.openSize
			node.contracted++
			node.compound = append(node.compound, next.compound...)
		}
	}

	// Emit the linearisation: the root, then every chain entry's compound.
	order := make([]int, 0, n)
	order = append(order, pg.root)
	for _, entry := range pg.tree[pg.root].chain {
		order = append(order, pg.tree[entry].compound...)
	}
	if len(order) != n {
		panic(fmt.Sprintf("optimizer: linearisation covers %d of %d vertices", len(order), n))
	}

	// Back to the graph view for the cost of the linear order.
	pg.view.SetTree(false)

	return pg.view.LinearCost(order), order
}
