package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

func newTriangleOptimizer(t *testing.T) *Optimizer {
	t.Helper()
	net, err := tensor.New(3,
		[][2]int{{0, 1}, {1, 2}, {0, 2}},
		[]float64{4, 5, 3}, nil)
	require.NoError(t, err)
	net.PrepareForOptimization()

	return New(net)
}

func TestCreatePlanSharing(t *testing.T) {
	o := newTriangleOptimizer(t)
	o.initBaseTensors()

	p0 := o.getPlan(bitset.Of(64, 0))
	p1 := o.getPlan(bitset.Of(64, 1))
	p2 := o.getPlan(bitset.Of(64, 2))

	// {0,1} via 0+1 costs 60, then the full join costs 15 on top.
	p01 := o.createPlan(p0, p1)
	assert.InDelta(t, 60.0, p01.TotalCost, 1e-9)

	full := o.createPlan(p01, p2)
	assert.InDelta(t, 75.0, full.TotalCost, 1e-9)

	// A cheaper decomposition of the same set improves the shared node in
	// place: the handle above must observe the new cost.
	p12 := o.createPlan(p1, p2)
	improved := o.createPlan(p12, p0)
	assert.Same(t, full, improved)
	assert.InDelta(t, 72.0, full.TotalCost, 1e-9)
	assert.Same(t, p12, full.Left)
	assert.Same(t, p0, full.Right)

	// A worse decomposition leaves the cached node untouched.
	p02 := o.createPlan(p0, p2)
	again := o.createPlan(p02, p1)
	assert.Same(t, full, again)
	assert.InDelta(t, 72.0, full.TotalCost, 1e-9)
}

func TestCreatePlanMisuse(t *testing.T) {
	o := newTriangleOptimizer(t)
	o.initBaseTensors()

	p0 := o.getPlan(bitset.Of(64, 0))
	assert.Panics(t, func() { o.createPlan(p0, p0) })
	assert.Panics(t, func() { o.getPlan(bitset.Of(64, 0, 1)) })
}

func TestTranslateLinearToPlan(t *testing.T) {
	o := newTriangleOptimizer(t)

	plan := o.translateLinearToPlan([]int{2, 1, 0})
	assert.Equal(t, []int{2, 1, 0}, FlattenPlan(plan))
	assert.InDelta(t, 72.0, plan.TotalCost, 1e-9)
	assert.True(t, plan.Set.Equal(bitset.Fill(64, 3)))
}

func TestRunDummyShape(t *testing.T) {
	cost, sol, err := runDummy([]int{2, 0, 1}, 42.0)
	require.NoError(t, err)
	assert.Equal(t, 42.0, cost)
	require.Len(t, sol, 5)

	// Leaves first, then the left-deep spine.
	assert.Equal(t, tensor.RangeNode{NodeIndex: 2, Left: tensor.Nil, Right: tensor.Nil}, sol[0])
	assert.Equal(t, tensor.RangeNode{NodeIndex: tensor.Nil, Left: 0, Right: 1}, sol[3])
	assert.Equal(t, tensor.RangeNode{NodeIndex: tensor.Nil, Left: 3, Right: 2}, sol[4])
}

func TestFlattenPlanBushy(t *testing.T) {
	o := newTriangleOptimizer(t)
	o.initBaseTensors()

	p12 := o.createPlan(o.getPlan(bitset.Of(64, 1)), o.getPlan(bitset.Of(64, 2)))
	full := o.createPlan(p12, o.getPlan(bitset.Of(64, 0)))
	assert.Equal(t, []int{1, 2, 0}, FlattenPlan(full))
}
