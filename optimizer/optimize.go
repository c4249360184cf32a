package optimizer

import (
	"github.com/stoianmihail/netzwerk/bitset"
	"github.com/stoianmihail/netzwerk/tensor"
)

// Optimize runs the named algorithm on net and returns the final plan
// covering all vertices. The network must be connected and, for every
// algorithm except greedy, carry a spanning-tree view.
func Optimize(net *tensor.Network, algorithm string, opts ...Option) (*Plan, error) {
	return New(net, opts...).Optimize(algorithm)
}

// Optimize dispatches on the algorithm name. See the package constants for
// the recognised names.
func (o *Optimizer) Optimize(algorithm string) (*Plan, error) {
	o.net.PrepareForOptimization()
	if !o.net.IsConnected(bitset.Fill(o.net.Capacity(), o.net.N())) {
		return nil, ErrDisconnected
	}

	switch algorithm {
	case AlgGreedy:
		return o.runGreedy()
	case AlgTensorIKKBZ, AlgLinDP, AlgTensorIKKBZParallel, AlgLinDPParallel:
		if o.net.TreeView() == nil {
			return nil, ErrNoTreeView
		}
	default:
		return nil, ErrUnknownAlgorithm
	}

	switch algorithm {
	case AlgTensorIKKBZ:
		return o.opImpl(runDummy)
	case AlgLinDP:
		return o.opImpl(o.runLocalLinDP)
	case AlgTensorIKKBZParallel:
		return o.parallelOpImpl(runDummy)
	default: // AlgLinDPParallel
		return o.parallelOpImpl(o.runLocalLinDP)
	}
}
