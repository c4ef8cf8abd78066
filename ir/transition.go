package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Key is the left-hand side of a transition: the control state, the
// input symbol to consume (Empty for none) and the stack top to pop.
type Key struct {
	From  State
	Input Symbol
	Top   Symbol
}

func (k Key) Compare(o Key) int {
	return cmp.Or(
		k.From.Compare(o.From),
		k.Input.Compare(o.Input),
		k.Top.Compare(o.Top))
}

func (k Key) String() string {
	return "(" + k.From.String() + ", " + k.Input.String() + ", " + k.Top.String() + ")"
}

// Transition rewrites a configuration matching Key by moving to To and
// replacing the popped stack top with Push.  Push[0] ends up on top of
// the stack.  Push never holds Empty when built with NewTransition.
type Transition struct {
	Key
	To   State
	Push []Symbol
}

func NewTransition(from State, input, top Symbol, to State, push ...Symbol) Transition {
	return Transition{
		Key: Key{From: from, Input: input, Top: top},
		To:  to,
		Push: slices.DeleteFunc(slices.Clone(push), func(s Symbol) bool {
			return s == Empty
		}),
	}
}

func (t Transition) Consumes() bool {
	return t.Input != Empty
}

// Compare orders transitions by key, then destination state, then
// replacement list (shorter first, then element-wise).
func (t Transition) Compare(o Transition) int {
	if c := t.Key.Compare(o.Key); c != 0 {
		return c
	}
	return compareRHS(t, o)
}

func compareRHS(t, o Transition) int {
	if c := t.To.Compare(o.To); c != 0 {
		return c
	}
	if c := cmp.Compare(len(t.Push), len(o.Push)); c != 0 {
		return c
	}
	return slices.CompareFunc(t.Push, o.Push, Symbol.Compare)
}

func (t Transition) Equal(o Transition) bool {
	return t.Compare(o) == 0
}

func (t Transition) String() string {
	b := &strings.Builder{}
	b.WriteString(t.Key.String())
	b.WriteString(" → (")
	b.WriteString(t.To.String())
	b.WriteString(", ")
	if len(t.Push) == 0 {
		b.WriteString(Empty.String())
	} else {
		for i, s := range t.Push {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}
