package ir

import "fmt"

// Alphabet is a finite non-empty set of symbols.  It never contains
// Empty.
type Alphabet struct {
	set *Set[Symbol]
}

func NewAlphabet(symbols ...Symbol) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	set := NewSet[Symbol]()
	for _, s := range symbols {
		if s == Empty {
			return nil, fmt.Errorf("%w: not an alphabet member", ErrReservedEmpty)
		}
		set.Add(s)
	}
	return &Alphabet{set: set}, nil
}

func (a *Alphabet) Len() int               { return a.set.Len() }
func (a *Alphabet) Contains(s Symbol) bool { return a.set.Contains(s) }
func (a *Alphabet) Symbols() []Symbol      { return a.set.Values() }
func (a *Alphabet) Equal(o *Alphabet) bool { return a.set.Equal(o.set) }
func (a *Alphabet) String() string         { return a.set.String() }

// Lookup finds the member with textual value v.
func (a *Alphabet) Lookup(v string) (Symbol, bool) {
	s := Symbol(v)
	if s == Empty || !a.set.Contains(s) {
		return Empty, false
	}
	return s, true
}

// StateSet is an ordered set of states.
type StateSet struct {
	set *Set[State]
}

func NewStateSet(states ...State) (*StateSet, error) {
	set := NewSet[State]()
	for _, q := range states {
		if q == "" {
			return nil, ErrEmptyLabel
		}
		set.Add(q)
	}
	return &StateSet{set: set}, nil
}

func (s *StateSet) Len() int               { return s.set.Len() }
func (s *StateSet) Contains(q State) bool  { return s.set.Contains(q) }
func (s *StateSet) States() []State        { return s.set.Values() }
func (s *StateSet) Equal(o *StateSet) bool { return s.set.Equal(o.set) }
func (s *StateSet) String() string         { return s.set.String() }

func (s *StateSet) Lookup(label string) (State, bool) {
	q := State(label)
	if !s.set.Contains(q) {
		return "", false
	}
	return q, true
}
