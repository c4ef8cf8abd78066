package eval

import (
	"errors"
)

var (
	errInternal = errors.New("internal evaluation error")

	ErrNilAutomaton = errors.New("nil automaton")
	ErrNilTape      = errors.New("nil tape")
	ErrTapeNotReset = errors.New("tape not reset")
	ErrStepLimit    = errors.New("step limit exceeded")
	ErrFilter       = errors.New("filter error")
)
