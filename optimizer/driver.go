package optimizer

import (
	"fmt"
	"math"

	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

// localOptFn turns a TensorIKKBZ linearisation with its linear cost into a
// bushy solution. Implementations must guarantee a bushy cost no worse than
// the linear one, up to rounding.
type localOptFn func(baseSol []int, cost float64) (float64, []tensor.RangeNode, error)

// translateLinearToPlan folds a linearisation into a left-deep plan.
func (o *Optimizer) translateLinearToPlan(solution []int) *Plan {
	o.initBaseTensors()

	left := o.getPlan(bitset.Of(o.net.Capacity(), solution[0]))
	for i := 1; i < o.net.N(); i++ {
		right := o.getPlan(bitset.Of(o.net.Capacity(), solution[i]))
		left = o.createPlan(left, right)
	}

	return left
}

// translateBushyToPlan builds the plan of a bushy solution by post-order
// recursion; the split keys on internal nodes are ignored.
func (o *Optimizer) translateBushyToPlan(solution []tensor.RangeNode) *Plan {
	o.initBaseTensors()

	var build func(idx int) *Plan
	build = func(idx int) *Plan {
		node := solution[idx]
		if node.IsLeaf() {
			return o.getPlan(bitset.Of(o.net.Capacity(), node.NodeIndex))
		}

		return o.createPlan(build(node.Left), build(node.Right))
	}

	return build(len(solution) - 1)
}

// opImpl runs fn on the TensorIKKBZ linearisation of every root and keeps
// the globally cheapest bushy solution, which it translates into a plan.
func (o *Optimizer) opImpl(fn localOptFn) (*Plan, error) {
	minCost := math.Inf(1)
	var bestSol []tensor.RangeNode

	view := o.net.NewView()
	for root := o.net.N() - 1; root >= 0; root-- {
		pg := newPrecedenceGraph(view, root)
		cost, sol := pg.runTensorIKKBZ()

		bushyCost, bushySol, err := fn(sol, cost)
		if err != nil {
			return nil, err
		}
		if worseThanLinear(bushyCost, cost) {
			panic(fmt.Sprintf("optimizer: bushy cost %v exceeds linear cost %v", bushyCost, cost))
		}
		if bushyCost < minCost {
			minCost = bushyCost
			bestSol = bushySol
		}
	}

	plan := o.translateBushyToPlan(bestSol)
	o.checkPlanCost(plan, minCost)

	return plan, nil
}

// checkPlanCost guards the translation: the plan cost must agree with the
// solution cost on the log10 scale.
func (o *Optimizer) checkPlanCost(plan *Plan, minCost float64) {
	if plan.TotalCost == minCost {
		return
	}
	if !isClose(math.Log10(plan.TotalCost), math.Log10(minCost)) {
		panic(fmt.Sprintf("optimizer: plan cost %v diverges from solution cost %v", plan.TotalCost, minCost))
	}
}
