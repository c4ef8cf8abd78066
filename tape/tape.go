// Package tape provides the read-only input tape of an automaton.
package tape

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/pushdown/ir"
)

var ErrSymbol = errors.New("tape symbol")

// Tape is a fixed sequence of symbols with a movable head.  The head
// may leave the bounds of the sequence, in which case Read gives
// ir.Empty.
type Tape struct {
	symbols []ir.Symbol
	head    int
}

// New creates a tape over symbols with the head at the start.  If
// alphabet is not nil every symbol must be one of its members.
func New(symbols []ir.Symbol, alphabet *ir.Alphabet) (*Tape, error) {
	for i, s := range symbols {
		if s == ir.Empty {
			return nil, fmt.Errorf("%w %d: %w", ErrSymbol, i, ir.ErrReservedEmpty)
		}
		if alphabet != nil && !alphabet.Contains(s) {
			return nil, fmt.Errorf("%w %d: %w: %q not in %s", ErrSymbol, i, ir.ErrUnknownSymbol, s, alphabet)
		}
	}
	return &Tape{symbols: slices.Clone(symbols)}, nil
}

func (t *Tape) Read() ir.Symbol {
	if t.head >= 0 && t.head < len(t.symbols) {
		return t.symbols[t.head]
	}
	return ir.Empty
}

func (t *Tape) Move(m Movement) {
	t.head += int(m)
}

func (t *Tape) MoveLeft()  { t.Move(Left) }
func (t *Tape) MoveRight() { t.Move(Right) }

func (t *Tape) Head() int {
	return t.head
}

func (t *Tape) Reset() {
	t.head = 0
}

func (t *Tape) IsReset() bool {
	return t.head == 0
}

func (t *Tape) HasReachedEnd() bool {
	return t.head >= len(t.symbols)
}

func (t *Tape) Len() int {
	return len(t.symbols)
}

func (t *Tape) Symbols() []ir.Symbol {
	return slices.Clone(t.symbols)
}

// Rest gives the unread symbols, starting at the head.
func (t *Tape) Rest() []ir.Symbol {
	if t.head >= len(t.symbols) {
		return nil
	}
	return slices.Clone(t.symbols[max(t.head, 0):])
}

func (t *Tape) Clone() *Tape {
	return &Tape{symbols: slices.Clone(t.symbols), head: t.head}
}

func (t *Tape) Equal(o *Tape) bool {
	return t.head == o.head && slices.Equal(t.symbols, o.symbols)
}

// Input gives the whole content, space separated.
func (t *Tape) Input() string {
	return join(t.symbols)
}

// String gives the unread content, space separated.
func (t *Tape) String() string {
	return join(t.Rest())
}

func join(ss []ir.Symbol) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
