package ir

import (
	"errors"
)

var (
	ErrEmptyLabel    = errors.New("empty state label")
	ErrEmptyValue    = errors.New("empty symbol value")
	ErrReservedEmpty = errors.New("reserved empty symbol " + EmptyValue)
	ErrEmptyAlphabet = errors.New("empty alphabet")
	ErrUnknownState  = errors.New("unknown state")
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrDefinition    = errors.New("invalid definition")
)
