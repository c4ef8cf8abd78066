// Package stack provides the symbol stack of a pushdown automaton.
package stack

import (
	"errors"
	"slices"
	"strings"

	"github.com/signadot/pushdown/ir"
)

var ErrEmpty = errors.New("pop on empty stack")

// Stack is a LIFO sequence of symbols.  It never holds ir.Empty.
type Stack struct {
	// bottom first
	syms []ir.Symbol
}

// New creates a stack holding syms, syms[0] on top.
func New(syms ...ir.Symbol) *Stack {
	s := &Stack{}
	s.PushAll(syms)
	return s
}

// Push places sym on top.  Pushing ir.Empty does nothing.
func (s *Stack) Push(sym ir.Symbol) {
	if sym == ir.Empty {
		return
	}
	s.syms = append(s.syms, sym)
}

// PushAll pushes syms so that syms[0] ends up on top.
func (s *Stack) PushAll(syms []ir.Symbol) {
	for i := len(syms) - 1; i >= 0; i-- {
		s.Push(syms[i])
	}
}

func (s *Stack) Pop() (ir.Symbol, error) {
	n := len(s.syms)
	if n == 0 {
		return ir.Empty, ErrEmpty
	}
	top := s.syms[n-1]
	s.syms = s.syms[:n-1]
	return top, nil
}

// Peek gives the top symbol, or ir.Empty if the stack is empty.
func (s *Stack) Peek() ir.Symbol {
	n := len(s.syms)
	if n == 0 {
		return ir.Empty
	}
	return s.syms[n-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.syms) == 0
}

func (s *Stack) Len() int {
	return len(s.syms)
}

// Symbols gives the content, top first.
func (s *Stack) Symbols() []ir.Symbol {
	res := slices.Clone(s.syms)
	slices.Reverse(res)
	return res
}

func (s *Stack) Clone() *Stack {
	return &Stack{syms: slices.Clone(s.syms)}
}

func (s *Stack) Equal(o *Stack) bool {
	return slices.Equal(s.syms, o.syms)
}

func (s *Stack) String() string {
	b := &strings.Builder{}
	for i := len(s.syms) - 1; i >= 0; i-- {
		b.WriteString(s.syms[i].String())
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
