package eval

import "runtime"

type options struct {
	maxSteps int
	observer Observer
	parallel int
}

type Option func(*options)

// MaxSteps bounds the number of transitions applied during one
// evaluation.  Evaluation fails with ErrStepLimit once the bound is
// exceeded.  n <= 0 means no bound.
func MaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithObserver reports each step of the search to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// Parallel sets the number of tapes Batch evaluates at once.
func Parallel(n int) Option {
	return func(o *options) { o.parallel = n }
}

func (o *options) parallelism() int {
	if o.observer != nil {
		return 1
	}
	if o.parallel > 0 {
		return o.parallel
	}
	return runtime.GOMAXPROCS(0)
}

func getOpts(opts []Option) *options {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	return o
}
