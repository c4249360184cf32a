package optimizer

import (
	"errors"
	"math"
	"runtime"
)

// Algorithm names accepted by Optimize.
const (
	AlgTensorIKKBZ         = "tensor-ikkbz"
	AlgLinDP               = "lindp"
	AlgGreedy              = "greedy"
	AlgTensorIKKBZParallel = "tensor-ikkbz-parallel"
	AlgLinDPParallel       = "lindp-parallel"
)

var (
	// ErrDisconnected is returned when the network is not connected; no
	// contraction order exists for it.
	ErrDisconnected = errors.New("optimizer: network is disconnected")

	// ErrNoTreeView is returned when an algorithm that needs the spanning
	// tree runs on a network without one.
	ErrNoTreeView = errors.New("optimizer: network has no tree view")

	// ErrUnknownAlgorithm is returned for an unrecognised algorithm name.
	ErrUnknownAlgorithm = errors.New("optimizer: unknown algorithm")

	// ErrNoFeasibleOrder is returned when LinDP cannot cover the full
	// interval, which only happens when outer products are disabled on a
	// network that requires them.
	ErrNoFeasibleOrder = errors.New("optimizer: no feasible order without outer products")
)

// Bound for the cost comparison in the drivers: a bushy reshape may never
// be worse than the linear order it came from, up to rounding.
const costSlack = 1e-6

// worseThanLinear reports whether a bushy cost genuinely exceeds the linear
// cost it was derived from. The absolute slack covers small costs, the
// relative term keeps huge costs from tripping on reassociation noise.
func worseThanLinear(bushy, linear float64) bool {
	return bushy > linear+costSlack && bushy > linear*(1+1e-12)
}

// Tolerance for tie detection and for the log-scale plan cost check.
const epsClose = 1e-9

func isClose(a, b float64) bool { return math.Abs(a-b) < epsClose }

// Options configures a single Optimize run.
type Options struct {
	// Threads is the worker count for the parallel variants. Zero selects
	// hardware concurrency minus one, but never less than one.
	Threads int

	// OuterProducts permits LinDP splits whose operands share no leg.
	// Off by default: outer products temporarily blow up tensor size.
	OuterProducts bool
}

// Option mutates Options.
type Option func(*Options)

// WithThreads fixes the worker count of the parallel variants.
func WithThreads(threads int) Option {
	return func(o *Options) { o.Threads = threads }
}

// WithOuterProducts toggles outer-product splits in LinDP.
func WithOuterProducts(on bool) Option {
	return func(o *Options) { o.OuterProducts = on }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{Threads: 0, OuterProducts: false}
}

func (o Options) workerCount() int {
	if o.Threads > 0 {
		return o.Threads
	}
	if w := runtime.NumCPU() - 1; w > 1 {
		return w
	}

	return 1
}
