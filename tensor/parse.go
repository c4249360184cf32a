package tensor

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Input is the raw content of a network description file: the header counts,
// the edge list and the sparse open-leg section. It is the exchange format
// between the parser and the network constructors, so the caller can decide
// which network (graph or tree view) the data becomes.
type Input struct {
	N, M     int
	Edges    [][2]int
	Dims     []float64
	OpenLegs map[int]float64
}

// OpenDims expands the sparse open-leg section into a dense slice with
// missing vertices defaulting to 1.
func (in *Input) OpenDims() []float64 {
	open := make([]float64, in.N)
	for i := range open {
		open[i] = 1.0
	}
	for v, d := range in.OpenLegs {
		open[v] = d
	}

	return open
}

// Network builds a standalone network from the input.
func (in *Input) Network() (*Network, error) {
	return New(in.N, in.Edges, in.Dims, in.OpenDims())
}

// ReadInput parses the text format: a header line "n m o", then m edge
// lines "u v d", then o open-leg lines "u d". Tokens may be separated by
// any whitespace. All structural violations map to ErrParse.
func ReadInput(r io.Reader) (*Input, error) {
	br := bufio.NewReader(r)

	in := &Input{OpenLegs: make(map[int]float64)}
	var o int
	if _, err := fmt.Fscan(br, &in.N, &in.M, &o); err != nil {
		return nil, errors.Wrap(ErrParse, "header")
	}
	if in.N <= 0 || in.M < 0 || o < 0 {
		return nil, errors.Wrapf(ErrParse, "header counts n=%d m=%d o=%d", in.N, in.M, o)
	}

	in.Edges = make([][2]int, in.M)
	in.Dims = make([]float64, in.M)
	for i := 0; i < in.M; i++ {
		var u, v int
		var d float64
		if _, err := fmt.Fscan(br, &u, &v, &d); err != nil {
			return nil, errors.Wrapf(ErrParse, "edge %d", i)
		}
		if u < 0 || u >= in.N || v < 0 || v >= in.N {
			return nil, errors.Wrapf(ErrParse, "edge %d endpoints (%d, %d)", i, u, v)
		}
		if !validDim(d) {
			return nil, errors.Wrapf(ErrParse, "edge %d dimension %v", i, d)
		}
		in.Edges[i] = [2]int{u, v}
		in.Dims[i] = d
	}

	for i := 0; i < o; i++ {
		var u int
		var d float64
		if _, err := fmt.Fscan(br, &u, &d); err != nil {
			return nil, errors.Wrapf(ErrParse, "open leg %d", i)
		}
		if u < 0 || u >= in.N {
			return nil, errors.Wrapf(ErrParse, "open leg %d vertex %d", i, u)
		}
		if !validDim(d) {
			return nil, errors.Wrapf(ErrParse, "open leg %d dimension %v", i, d)
		}
		in.OpenLegs[u] = d
	}

	return in, nil
}

// LoadInput reads and parses the file at path.
func LoadInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tensor: open %s", path)
	}
	defer f.Close()

	in, err := ReadInput(f)
	if err != nil {
		return nil, errors.Wrapf(err, "tensor: parse %s", path)
	}

	return in, nil
}
