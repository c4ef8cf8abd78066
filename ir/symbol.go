package ir

import (
	"fmt"
	"strings"
)

// EmptyValue is the literal denoting the empty symbol in definitions.
const EmptyValue = "."

// Symbol is an atomic token of an input or stack alphabet.
//
// The empty string is never a valid symbol value, so it is used as the
// distinguished Empty symbol.  Empty means "no input consumed" when it
// is the input of a transition and "push nothing" when it appears in a
// replacement list.
type Symbol string

const Empty Symbol = ""

// NewSymbol creates a symbol to be declared as an alphabet member.  The
// empty symbol cannot be declared.
func NewSymbol(v string) (Symbol, error) {
	switch v {
	case "":
		return Empty, ErrEmptyValue
	case EmptyValue:
		return Empty, fmt.Errorf("%w: cannot be declared", ErrReservedEmpty)
	}
	if strings.ContainsAny(v, " \t\r\n") {
		return Empty, fmt.Errorf("%w: %q contains space", ErrEmptyValue, v)
	}
	return Symbol(v), nil
}

// ParseSymbol is like NewSymbol but maps EmptyValue to Empty.
func ParseSymbol(v string) (Symbol, error) {
	if v == EmptyValue {
		return Empty, nil
	}
	return NewSymbol(v)
}

func (s Symbol) IsEmpty() bool {
	return s == Empty
}

// Value gives the textual form used in definitions.
func (s Symbol) Value() string {
	if s == Empty {
		return EmptyValue
	}
	return string(s)
}

func (s Symbol) String() string {
	if s == Empty {
		return "ε"
	}
	return string(s)
}

func (s Symbol) Compare(o Symbol) int {
	return strings.Compare(string(s), string(o))
}

// State is a control location of an automaton, ordered by label.
type State string

func NewState(label string) (State, error) {
	switch label {
	case "":
		return "", ErrEmptyLabel
	case EmptyValue:
		return "", fmt.Errorf("%w: not a state label", ErrReservedEmpty)
	}
	if strings.ContainsAny(label, " \t\r\n") {
		return "", fmt.Errorf("%w: %q contains space", ErrEmptyLabel, label)
	}
	return State(label), nil
}

func (q State) String() string {
	return string(q)
}

func (q State) Compare(o State) int {
	return strings.Compare(string(q), string(o))
}
