package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/pushdown/debug"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/tape"

	"golang.org/x/sync/errgroup"
)

// Batch evaluates each tape against a, at most Parallel tapes at once.
// Reports are in the order of tapes.  A tape exceeding MaxSteps is
// reported with its error; any other error stops the batch.
func Batch(ctx context.Context, a *ir.Automaton, tapes []*tape.Tape, opts ...Option) ([]Report, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	o := getOpts(opts)
	reports := make([]Report, len(tapes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism())
	for i, t := range tapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if t == nil {
				return fmt.Errorf("tape %d: %w", i, ErrNilTape)
			}
			r := Report{Index: i, Input: t.Input(), Len: t.Len()}
			res, err := Run(a, t, opts...)
			switch {
			case errors.Is(err, ErrStepLimit):
				r.Error = err.Error()
			case err != nil:
				return fmt.Errorf("tape %d: %w", i, err)
			default:
				r.Accepted = res.Accepted
				r.Steps = res.Steps
				r.Depth = res.Depth
			}
			if debug.Batch() {
				debug.Logf("batch: tape %d [%s] accepted=%t\n", i, r.Input, r.Accepted)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
