package ecfuzz

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/athanorlabs/go-ecfuzz/types"
)

type Backend = types.Backend
type Input = types.Input
type Output = types.Output

// Operation selects which backend method a run exercises.
type Operation int

const (
	// OpProcess is scalar multiplication.
	OpProcess Operation = iota
	// OpAdd is point addition.
	OpAdd
)

func (op Operation) String() string {
	switch op {
	case OpProcess:
		return "process"
	case OpAdd:
		return "add"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// ParseOperation is the inverse of Operation.String.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "process":
		return OpProcess, nil
	case "add":
		return OpAdd, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", s)
	}
}

// Apply runs op on b.
func (op Operation) Apply(b Backend, in *Input) *Output {
	if op == OpAdd {
		return b.Add(in)
	}
	return b.Process(in)
}

// Result pairs a backend with its output for one input.
type Result struct {
	Backend string
	Output  *Output
}

// Run applies op to every backend in turn.
func Run(op Operation, in *Input, backends []Backend) []Result {
	results := make([]Result, len(backends))
	for i, b := range backends {
		results[i] = Result{Backend: b.Name(), Output: op.Apply(b, in)}
	}
	return results
}

// RunParallel applies op to every backend concurrently. The input is
// shared read-only. Results keep the order of backends. ctx only stops
// backends that have not started yet.
func RunParallel(ctx context.Context, op Operation, in *Input, backends []Backend) ([]Result, error) {
	results := make([]Result, len(backends))
	g, ctx := errgroup.WithContext(ctx)
	for i, b := range backends {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Backend: b.Name(), Output: op.Apply(b, in)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Swap returns a copy of in with the two points exchanged.
func Swap(in *Input) *Input {
	out := *in
	out.CoordX, out.Coord2X = in.Coord2X, in.CoordX
	out.CoordY, out.Coord2Y = in.Coord2Y, in.CoordY
	return &out
}
