package tensor

import "github.com/stoianmihail/netzwerk/bitset"

// View is a per-worker query handle over a Network. While the tree flag is
// on, queries that the ranking algorithm issues are answered by the tree
// view instead of the graph. Every concurrent worker owns its own View, so
// the flag never needs a lock; the single-threaded path uses one View the
// same way.
type View struct {
	net  *Network
	tree bool
}

// NewView hands out a fresh handle with the tree flag off.
func (net *Network) NewView() *View { return &View{net: net} }

// SetTree toggles tree-view delegation. Enabling it requires an attached
// tree view.
func (v *View) SetTree(on bool) {
	if on && v.net.treeView == nil {
		panic("tensor: tree view enabled without an attached tree")
	}
	v.tree = on
}

// Tree reports whether tree-view delegation is on.
func (v *View) Tree() bool { return v.tree }

// Net returns the underlying network, regardless of the flag.
func (v *View) Net() *Network { return v.net }

// target resolves the network the queries below should consult.
func (v *View) target() *Network {
	if v.tree {
		return v.net.treeView
	}

	return v.net
}

// FetchEdge returns the leg with the given id in the active view.
func (v *View) FetchEdge(id int) EdgeInfo { return v.target().Edge(id) }

// LegDimProduct is Network.LegDimProduct on the active view.
func (v *View) LegDimProduct(set bitset.Set) float64 { return v.target().LegDimProduct(set) }

// VertexLegs is Network.VertexLegs on the active view.
func (v *View) VertexLegs(u int, strict bool) bitset.Set { return v.target().VertexLegs(u, strict) }

// OpenLegs is Network.OpenLegs on the active view.
func (v *View) OpenLegs(set bitset.Set) bitset.Set { return v.target().OpenLegs(set) }

// ContractionCost is Network.ContractionCost on the active view.
func (v *View) ContractionCost(a, b bitset.Set) float64 { return v.target().ContractionCost(a, b) }

// LinearCost is Network.LinearCost on the active view.
func (v *View) LinearCost(sol []int) float64 { return v.target().LinearCost(sol) }

// IsConnected is Network.IsConnected on the active view.
func (v *View) IsConnected(set bitset.Set) bool { return v.target().IsConnected(set) }

// IsRangeConnected is Network.IsRangeConnected on the active view.
func (v *View) IsRangeConnected(i, j int, linearSol []int) bool {
	return v.target().IsRangeConnected(i, j, linearSol)
}
