// Package eval decides acceptance of input tapes by pushdown automata.
//
// The search is depth first over the nondeterministic choices of the
// automaton.  Every choice point is checkpointed as an independent copy
// of the configuration, and each candidate transition starts from a
// fresh copy of its checkpoint, so a failed branch can never affect a
// sibling.  A tape is accepted when some run reaches the end of the
// tape in an accepting state or with an empty stack.
package eval

import (
	"fmt"

	"github.com/signadot/pushdown/debug"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/stack"
	"github.com/signadot/pushdown/tape"
)

// Result is the outcome of an evaluation.
type Result struct {
	Accepted bool
	// Steps counts the transitions applied over all branches.
	Steps int
	// Depth is the length of the longest branch explored.
	Depth int
	// Run is the accepting sequence of transitions.
	Run []ir.Transition
}

// Evaluate reports whether a accepts the content of in.  in must be
// reset; it is not modified.
func Evaluate(a *ir.Automaton, in *tape.Tape, opts ...Option) (bool, error) {
	res, err := Run(a, in, opts...)
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// Run is like Evaluate but returns the details of the search.
func Run(a *ir.Automaton, in *tape.Tape, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	if in == nil {
		return nil, ErrNilTape
	}
	if !in.IsReset() {
		return nil, fmt.Errorf("%w: head at %d", ErrTapeNotReset, in.Head())
	}
	e := &engine{
		a:    a,
		in:   in,
		opts: getOpts(opts),
		res:  &Result{},
	}
	return e.run()
}

// checkpoint is a choice point: a configuration and the candidate
// transitions out of it, next being the first one not yet tried.
type checkpoint struct {
	cfg   *Configuration
	cands []ir.Transition
	next  int
}

type engine struct {
	a           *ir.Automaton
	in          *tape.Tape
	opts        *options
	checkpoints []checkpoint
	res         *Result
}

func (e *engine) run() (*Result, error) {
	cur := &Configuration{
		State: e.a.Initial(),
		Tape:  e.in.Clone(),
		Stack: stack.New(e.a.Bottom()),
	}
	cands := e.candidates(cur)
	accepting := e.accepting(cur)
	e.emit(&Event{Kind: Start, Config: cur, Candidates: cands, Accepting: accepting})
	if accepting {
		return e.done(true)
	}
	if len(cands) == 0 {
		return e.done(false)
	}
	e.push(cur, cands)
	for len(e.checkpoints) > 0 {
		cp := &e.checkpoints[len(e.checkpoints)-1]
		if cp.next == len(cp.cands) {
			e.checkpoints = e.checkpoints[:len(e.checkpoints)-1]
			e.emit(&Event{Kind: Backtrack, Depth: len(e.checkpoints)})
			continue
		}
		t := cp.cands[cp.next]
		cp.next++
		if e.opts.maxSteps > 0 && e.res.Steps >= e.opts.maxSteps {
			return nil, fmt.Errorf("%w: %d steps", ErrStepLimit, e.res.Steps)
		}
		e.res.Steps++
		next := cp.cfg.Clone()
		if err := next.apply(t); err != nil {
			return nil, err
		}
		depth := len(e.checkpoints)
		e.res.Depth = max(e.res.Depth, depth)
		if e.accepting(next) {
			e.emit(&Event{Kind: Apply, Depth: depth, Via: &t, Config: next, Accepting: true})
			return e.done(true)
		}
		if next.Stack.IsEmpty() {
			// nothing to pop for the rest of the tape
			e.emit(&Event{Kind: Apply, Depth: depth, Via: &t, Config: next})
			continue
		}
		cands := e.candidates(next)
		e.emit(&Event{Kind: Apply, Depth: depth, Via: &t, Config: next, Candidates: cands})
		if len(cands) == 0 {
			continue
		}
		e.push(next, cands)
	}
	return e.done(false)
}

func (e *engine) candidates(c *Configuration) []ir.Transition {
	return e.a.Lookup(c.State, c.Tape.Read(), c.Stack.Peek())
}

func (e *engine) accepting(c *Configuration) bool {
	if !c.Tape.HasReachedEnd() {
		return false
	}
	return e.a.IsAccepting(c.State) || c.Stack.IsEmpty()
}

func (e *engine) push(c *Configuration, cands []ir.Transition) {
	e.checkpoints = append(e.checkpoints, checkpoint{cfg: c, cands: cands})
}

func (e *engine) done(accepted bool) (*Result, error) {
	e.res.Accepted = accepted
	if accepted {
		run := make([]ir.Transition, len(e.checkpoints))
		for i := range e.checkpoints {
			cp := &e.checkpoints[i]
			run[i] = cp.cands[cp.next-1]
		}
		e.res.Run = run
	}
	e.checkpoints = nil
	if debug.Eval() {
		debug.Logf("eval [%s]: accepted=%t steps=%d depth=%d\n", e.in.Input(), accepted, e.res.Steps, e.res.Depth)
	}
	e.emit(&Event{Kind: Done, Result: e.res, Accepting: accepted})
	return e.res, nil
}

func (e *engine) emit(ev *Event) {
	if debug.Eval() && ev.Config != nil {
		debug.Logf("eval %s depth=%d %s via %v candidates=%d\n", ev.Kind, ev.Depth, ev.Config, ev.Via, len(ev.Candidates))
	}
	if e.opts.observer == nil {
		return
	}
	ev.Automaton = e.a
	ev.Input = e.in
	e.opts.observer.Observe(ev)
}
