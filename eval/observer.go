package eval

import (
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/tape"
)

type EventKind int

const (
	// Start is the initial configuration.
	Start EventKind = iota
	// Apply is a configuration reached by applying Via.
	Apply
	// Backtrack means every candidate of a checkpoint failed; Depth is
	// the depth of the checkpoint resumed.
	Backtrack
	// Done carries the outcome.
	Done
)

func (k EventKind) String() string {
	s, ok := map[EventKind]string{
		Start:     "start",
		Apply:     "apply",
		Backtrack: "backtrack",
		Done:      "done",
	}[k]
	if ok {
		return s
	}
	return "<unknown event>"
}

// Event describes one step of the search.
type Event struct {
	Kind      EventKind
	Automaton *ir.Automaton
	// Input is the evaluated tape, head reset.
	Input      *tape.Tape
	Depth      int
	Via        *ir.Transition
	Config     *Configuration
	Candidates []ir.Transition
	Accepting  bool
	Result     *Result
}

type Observer interface {
	Observe(ev *Event)
}

type ObserverFunc func(ev *Event)

func (f ObserverFunc) Observe(ev *Event) { f(ev) }
