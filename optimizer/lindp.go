package optimizer

import (
	"math"

	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

// runLocalLinDP reshapes a linearisation into a bushy tree with an interval
// dynamic program over [i, j] windows. For every interval it precomputes
// the surviving legs and the resulting tensor size; the recurrence then
// tries every split, charging max/common * min to keep the magnitude of the
// intermediate products down. Splits whose operands share no leg are outer
// products and are skipped unless explicitly enabled.
//
// Safe for concurrent use: it only reads the prepared network.
func (o *Optimizer) runLocalLinDP(baseSol []int, _ float64) (float64, []tensor.RangeNode, error) {
	net := o.net
	n := net.N()
	inf := math.Inf(1)

	dp := make([][]float64, n)
	ptr := make([][]int, n)
	legs := make([][]bitset.Set, n)
	sizes := make([][]float64, n)
	for i := 0; i < n; i++ {
		dp[i] = make([]float64, n)
		ptr[i] = make([]int, n)
		legs[i] = make([]bitset.Set, n)
		sizes[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			dp[i][j] = inf
			ptr[i][j] = tensor.Nil
		}
	}

	// Interval legs and sizes, extending each window to the right. Both
	// factors are divided by the common size before they are multiplied.
	for i := n - 1; i >= 0; i-- {
		curSize := 1.0
		curLegs := bitset.New(net.Capacity())
		for j := i; j < n; j++ {
			incoming := net.VertexLegSet(baseSol[j])
			common := net.LegDimProduct(curLegs.Intersect(incoming))
			curSize = (curSize / common) * (net.VertexSize(baseSol[j]) / common)
			curLegs.SymDiffWith(incoming)
			sizes[i][j] = curSize
			legs[i][j] = curLegs.Clone()
		}
	}

	for i := 0; i < n; i++ {
		dp[i][i] = 0
	}

	for d := 1; d < n; d++ {
		for i := 0; i+d < n; i++ {
			j := i + d
			for k := i; k < j; k++ {
				l, r := dp[i][k], dp[k+1][j]
				if math.IsInf(l, 1) || math.IsInf(r, 1) {
					continue
				}

				commonLegs := legs[i][k].Intersect(legs[k+1][j])
				if commonLegs.Empty() && !o.opts.OuterProducts {
					continue
				}

				commonSize := net.LegDimProduct(commonLegs)
				leftSize, rightSize := sizes[i][k], sizes[k+1][j]
				contraction := (math.Max(leftSize, rightSize) / commonSize) * math.Min(leftSize, rightSize)
				if l+r+contraction < dp[i][j] {
					dp[i][j] = l + r + contraction
					ptr[i][j] = k
				}
			}
		}
	}

	if math.IsInf(dp[0][n-1], 1) {
		return 0, nil, ErrNoFeasibleOrder
	}

	// Reconstruct the bushy tree in post-order. The split key baseSol[k]
	// stored on internal nodes is cosmetic.
	sol := make([]tensor.RangeNode, 0, 2*n-1)
	var build func(i, j int) int
	build = func(i, j int) int {
		if i == j {
			sol = append(sol, tensor.RangeNode{NodeIndex: baseSol[i], Left: tensor.Nil, Right: tensor.Nil})
			return len(sol) - 1
		}
		k := ptr[i][j]
		l := build(i, k)
		r := build(k+1, j)
		sol = append(sol, tensor.RangeNode{NodeIndex: baseSol[k], Left: l, Right: r})

		return len(sol) - 1
	}
	build(0, n-1)

	return net.BushyCost(sol), sol, nil
}

// runDummy lifts a linear solution into the bushy representation without
// reshaping it: leaves first, then a left-deep spine.
func runDummy(baseSol []int, cost float64) (float64, []tensor.RangeNode, error) {
	n := len(baseSol)
	sol := make([]tensor.RangeNode, 2*n-1)
	for i := 0; i < n; i++ {
		sol[i] = tensor.RangeNode{NodeIndex: baseSol[i], Left: tensor.Nil, Right: tensor.Nil}
	}
	prev := 0
	for i := n; i < len(sol); i++ {
		sol[i] = tensor.RangeNode{NodeIndex: tensor.Nil, Left: prev, Right: i - n + 1}
		prev = i
	}

	return cost, sol, nil
}
