package ir

import (
	"fmt"
	"strings"
)

// Automaton is the immutable definition of a pushdown automaton.
type Automaton struct {
	states    *StateSet
	input     *Alphabet
	stack     *Alphabet
	initial   State
	bottom    Symbol
	accepting *StateSet
	delta     *TransitionIndex
}

// New validates and assembles an automaton.  The transition index is
// copied so later changes to delta do not affect the automaton.
func New(states *StateSet, input, stack *Alphabet, initial State, bottom Symbol, accepting *StateSet, delta *TransitionIndex) (*Automaton, error) {
	switch {
	case states == nil:
		return nil, fmt.Errorf("%w: no states", ErrDefinition)
	case input == nil:
		return nil, fmt.Errorf("%w: no input alphabet", ErrDefinition)
	case stack == nil:
		return nil, fmt.Errorf("%w: no stack alphabet", ErrDefinition)
	case accepting == nil:
		return nil, fmt.Errorf("%w: no accepting states", ErrDefinition)
	case delta == nil:
		return nil, fmt.Errorf("%w: no transitions", ErrDefinition)
	}
	if !states.Contains(initial) {
		return nil, fmt.Errorf("%w: initial state %q", ErrUnknownState, initial)
	}
	if bottom == Empty || !stack.Contains(bottom) {
		return nil, fmt.Errorf("%w: initial stack symbol %q", ErrUnknownSymbol, bottom.Value())
	}
	for _, q := range accepting.States() {
		if !states.Contains(q) {
			return nil, fmt.Errorf("%w: accepting state %q", ErrUnknownState, q)
		}
	}
	a := &Automaton{
		states:    states,
		input:     input,
		stack:     stack,
		initial:   initial,
		bottom:    bottom,
		accepting: accepting,
		delta:     delta.Clone(),
	}
	for _, t := range a.delta.All() {
		if err := a.checkTransition(t); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// CheckTransition reports whether t only mentions states and symbols
// of a.
func (a *Automaton) CheckTransition(t Transition) error {
	return a.checkTransition(t)
}

func (a *Automaton) checkTransition(t Transition) error {
	if !a.states.Contains(t.From) {
		return fmt.Errorf("%w: %q in %s", ErrUnknownState, t.From, t)
	}
	if !a.states.Contains(t.To) {
		return fmt.Errorf("%w: %q in %s", ErrUnknownState, t.To, t)
	}
	if t.Input != Empty && !a.input.Contains(t.Input) {
		return fmt.Errorf("%w: input %q in %s", ErrUnknownSymbol, t.Input, t)
	}
	if t.Top == Empty || !a.stack.Contains(t.Top) {
		return fmt.Errorf("%w: stack top %q in %s", ErrUnknownSymbol, t.Top.Value(), t)
	}
	for _, s := range t.Push {
		if s != Empty && !a.stack.Contains(s) {
			return fmt.Errorf("%w: stack symbol %q in %s", ErrUnknownSymbol, s, t)
		}
	}
	return nil
}

func (a *Automaton) States() *StateSet        { return a.states }
func (a *Automaton) InputAlphabet() *Alphabet { return a.input }
func (a *Automaton) StackAlphabet() *Alphabet { return a.stack }
func (a *Automaton) Initial() State           { return a.initial }
func (a *Automaton) Bottom() Symbol           { return a.bottom }
func (a *Automaton) Accepting() *StateSet     { return a.accepting }

func (a *Automaton) IsAccepting(q State) bool {
	return a.accepting.Contains(q)
}

// Lookup is TransitionIndex.Lookup on the automaton's transitions.
func (a *Automaton) Lookup(q State, in, top Symbol) []Transition {
	return a.delta.Lookup(q, in, top)
}

// Transitions returns all transitions in order.
func (a *Automaton) Transitions() []Transition {
	return a.delta.All()
}

func (a *Automaton) NumTransitions() int {
	return a.delta.Len()
}

// String gives the formal description of a.
func (a *Automaton) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Q = %s\n", a.states)
	fmt.Fprintf(b, "Σ = %s\n", a.input)
	fmt.Fprintf(b, "Γ = %s\n", a.stack)
	fmt.Fprintf(b, "s = %s\n", a.initial)
	fmt.Fprintf(b, "z = %s\n", a.bottom)
	fmt.Fprintf(b, "F = %s\n", a.accepting)
	b.WriteString("δ :\n")
	for _, t := range a.delta.All() {
		b.WriteString("  ")
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	return b.String()
}
