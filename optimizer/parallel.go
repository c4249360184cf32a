package optimizer

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/stoianmihail/netzwerk/tensor"
)

// parallelOpImpl is opImpl with the roots distributed over a worker pool.
// Root indices are drawn from a shared atomic counter; every worker owns a
// private View, so the tree-view flag never serialises. A barrier after
// view registration makes sure no query can observe a half-initialised
// worker set, and a mutex guards the running best solution. Workers are
// independent otherwise: the network is read-only during this phase and the
// plan cache is only touched after the join.
func (o *Optimizer) parallelOpImpl(fn localOptFn) (*Plan, error) {
	workers := o.opts.workerCount()
	n := o.net.N()

	var (
		mu       sync.Mutex
		minCost  = math.Inf(1)
		bestSol  []tensor.RangeNode
		firstErr error

		taskIndex atomic.Int64
		ready     sync.WaitGroup
		wg        sync.WaitGroup
	)
	ready.Add(workers)
	wg.Add(workers)

	for t := 0; t < workers; t++ {
		go func() {
			defer wg.Done()

			// Register this worker's view, then wait for the others.
			view := o.net.NewView()
			ready.Done()
			ready.Wait()

			for {
				index := int(taskIndex.Add(1)) - 1
				if index >= n {
					return
				}

				pg := newPrecedenceGraph(view, index)
				cost, sol := pg.runTensorIKKBZ()

				bushyCost, bushySol, err := fn(sol, cost)
				if err == nil && worseThanLinear(bushyCost, cost) {
					panic("optimizer: bushy cost exceeds linear cost")
				}

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else if bushyCost < minCost {
					minCost = bushyCost
					bestSol = bushySol
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	plan := o.translateBushyToPlan(bestSol)
	o.checkPlanCost(plan, minCost)

	return plan, nil
}
