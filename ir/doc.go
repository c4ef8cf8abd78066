package ir

import (
	"fmt"
)

// Doc is the document form of an automaton, used for YAML and JSON
// definitions.  Symbols are given by value, with EmptyValue for the
// empty symbol.
type Doc struct {
	States      []string        `json:"states" yaml:"states"`
	Input       []string        `json:"input" yaml:"input"`
	Stack       []string        `json:"stack" yaml:"stack"`
	Initial     string          `json:"initial" yaml:"initial"`
	Bottom      string          `json:"bottom" yaml:"bottom"`
	Accept      []string        `json:"accept" yaml:"accept"`
	Transitions []TransitionDoc `json:"transitions" yaml:"transitions"`
}

type TransitionDoc struct {
	From  string   `json:"from" yaml:"from"`
	Input string   `json:"input" yaml:"input"`
	Top   string   `json:"top" yaml:"top"`
	To    string   `json:"to" yaml:"to"`
	Push  []string `json:"push" yaml:"push"`
}

func (a *Automaton) Doc() *Doc {
	d := &Doc{
		States:  labels(a.states.States()),
		Input:   values(a.input.Symbols()),
		Stack:   values(a.stack.Symbols()),
		Initial: a.initial.String(),
		Bottom:  a.bottom.Value(),
		Accept:  labels(a.accepting.States()),
	}
	all := a.delta.All()
	d.Transitions = make([]TransitionDoc, len(all))
	for i, t := range all {
		d.Transitions[i] = TransitionDoc{
			From:  t.From.String(),
			Input: t.Input.Value(),
			Top:   t.Top.Value(),
			To:    t.To.String(),
			Push:  values(t.Push),
		}
	}
	return d
}

func FromDoc(d *Doc) (*Automaton, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil document", ErrDefinition)
	}
	states, err := stateSet(d.States)
	if err != nil {
		return nil, fmt.Errorf("states: %w", err)
	}
	if states.Len() == 0 {
		return nil, fmt.Errorf("%w: no states", ErrDefinition)
	}
	input, err := alphabet(d.Input)
	if err != nil {
		return nil, fmt.Errorf("input alphabet: %w", err)
	}
	stack, err := alphabet(d.Stack)
	if err != nil {
		return nil, fmt.Errorf("stack alphabet: %w", err)
	}
	initial, ok := states.Lookup(d.Initial)
	if !ok {
		return nil, fmt.Errorf("%w: initial state %q", ErrUnknownState, d.Initial)
	}
	bottom, ok := stack.Lookup(d.Bottom)
	if !ok {
		return nil, fmt.Errorf("%w: initial stack symbol %q", ErrUnknownSymbol, d.Bottom)
	}
	accepting, err := stateSet(d.Accept)
	if err != nil {
		return nil, fmt.Errorf("accepting states: %w", err)
	}
	delta := NewTransitionIndex()
	for i := range d.Transitions {
		t, err := d.Transitions[i].transition()
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w", i, err)
		}
		delta.Add(t)
	}
	return New(states, input, stack, initial, bottom, accepting, delta)
}

func (td *TransitionDoc) transition() (Transition, error) {
	from, err := NewState(td.From)
	if err != nil {
		return Transition{}, err
	}
	input, err := ParseSymbol(td.Input)
	if err != nil {
		return Transition{}, err
	}
	top, err := NewSymbol(td.Top)
	if err != nil {
		return Transition{}, fmt.Errorf("stack top: %w", err)
	}
	to, err := NewState(td.To)
	if err != nil {
		return Transition{}, err
	}
	push := make([]Symbol, len(td.Push))
	for i, v := range td.Push {
		if push[i], err = ParseSymbol(v); err != nil {
			return Transition{}, err
		}
	}
	return NewTransition(from, input, top, to, push...), nil
}

func stateSet(ls []string) (*StateSet, error) {
	qs := make([]State, len(ls))
	for i, l := range ls {
		q, err := NewState(l)
		if err != nil {
			return nil, err
		}
		qs[i] = q
	}
	return NewStateSet(qs...)
}

func alphabet(vs []string) (*Alphabet, error) {
	ss := make([]Symbol, len(vs))
	for i, v := range vs {
		s, err := NewSymbol(v)
		if err != nil {
			return nil, err
		}
		ss[i] = s
	}
	return NewAlphabet(ss...)
}

func labels(qs []State) []string {
	res := make([]string, len(qs))
	for i, q := range qs {
		res[i] = q.String()
	}
	return res
}

func values(ss []Symbol) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		res[i] = s.Value()
	}
	return res
}
