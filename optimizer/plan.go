package optimizer

import (
	"fmt"

	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

// Plan is a shared node of the contraction tree under construction. A
// singleton plan has zero cost and nil children. For every other plan the
// children cover Set disjointly. Plans are cached per vertex set and
// improved in place, so a handle held elsewhere always reflects the
// cheapest known decomposition.
type Plan struct {
	TotalCost float64
	Set       bitset.Set
	Left      *Plan
	Right     *Plan
}

// IsLeaf reports whether p is a singleton plan.
func (p *Plan) IsLeaf() bool { return p.Left == nil }

// planCache stores shared plan nodes keyed by their vertex set. Buckets are
// chained on the set hash; membership within a bucket is decided by exact
// set equality, so hash collisions are harmless.
type planCache struct {
	buckets map[uint64][]*Plan
}

func newPlanCache() planCache {
	return planCache{buckets: make(map[uint64][]*Plan)}
}

func (c *planCache) lookup(set bitset.Set) *Plan {
	for _, p := range c.buckets[set.Hash()] {
		if p.Set.Equal(set) {
			return p
		}
	}

	return nil
}

func (c *planCache) store(p *Plan) {
	h := p.Set.Hash()
	c.buckets[h] = append(c.buckets[h], p)
}

// Optimizer drives the contraction-order algorithms over one network and
// owns the plan cache. Create one with New, run it with Optimize, and
// translate the result with PlanToSequence.
type Optimizer struct {
	net   *tensor.Network
	opts  Options
	plans planCache
}

// New wraps a network for optimisation.
func New(net *tensor.Network, opts ...Option) *Optimizer {
	o := &Optimizer{net: net, opts: DefaultOptions(), plans: newPlanCache()}
	for _, opt := range opts {
		opt(&o.opts)
	}

	return o
}

// initBaseTensors seeds the cache with one zero-cost singleton per vertex.
func (o *Optimizer) initBaseTensors() {
	for v := 0; v < o.net.N(); v++ {
		set := bitset.Of(o.net.Capacity(), v)
		if o.plans.lookup(set) == nil {
			o.plans.store(&Plan{TotalCost: 0, Set: set})
		}
	}
}

// getPlan returns the cached plan for set. A miss is a bug in the caller.
func (o *Optimizer) getPlan(set bitset.Set) *Plan {
	p := o.plans.lookup(set)
	if p == nil {
		panic(fmt.Sprintf("optimizer: no plan cached for %v", set))
	}

	return p
}

// createPlan combines two disjoint subplans. The contraction cost has to be
// recomputed on every call: the same union reached through different splits
// has different contraction costs, unlike classical join ordering.
// On a cache hit the cheaper decomposition wins and the cached node is
// updated in place, keeping its identity stable for existing referents.
func (o *Optimizer) createPlan(l, r *Plan) *Plan {
	if l.Set.Intersects(r.Set) {
		panic("optimizer: createPlan operands overlap")
	}
	total := l.Set.Union(r.Set)

	cost := o.net.ContractionCost(l.Set, r.Set) + l.TotalCost + r.TotalCost

	old := o.plans.lookup(total)
	if old == nil {
		p := &Plan{TotalCost: cost, Set: total, Left: l, Right: r}
		o.plans.store(p)

		return p
	}
	if cost < old.TotalCost {
		old.TotalCost = cost
		old.Left = l
		old.Right = r
	}

	return old
}

// FlattenPlan returns the leaves of plan in left-to-right order.
func FlattenPlan(plan *Plan) []int {
	ret := make([]int, 0, plan.Set.Len())
	var flatten func(p *Plan)
	flatten = func(p *Plan) {
		if p.IsLeaf() {
			ret = append(ret, p.Set.Min())
			return
		}
		flatten(p.Left)
		flatten(p.Right)
	}
	flatten(plan)

	return ret
}
