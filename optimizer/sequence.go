package optimizer

import "fmt"

// Contraction names the two operands of one pairwise contraction by their
// post-order indices: values below n refer to input tensors, value n+k to
// the intermediate produced by step k.
type Contraction struct {
	I, J int
}

// PlanToSequence serialises a plan into n-1 contractions in post-order,
// numbering intermediates from n upward, so every operand predates its
// consumer.
func (o *Optimizer) PlanToSequence(plan *Plan) []Contraction {
	n := o.net.N()
	ret := make([]Contraction, n-1)
	cur := n

	var build func(p *Plan) int
	build = func(p *Plan) int {
		if p.IsLeaf() {
			return p.Set.Min()
		}
		l := build(p.Left)
		r := build(p.Right)
		ret[cur-n] = Contraction{I: l, J: r}
		cur++

		return cur - 1
	}

	build(plan)
	if cur != 2*n-1 {
		panic(fmt.Sprintf("optimizer: sequence covers %d of %d contractions", cur-n, n-1))
	}

	return ret
}
