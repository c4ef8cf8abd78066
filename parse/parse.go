// Package parse reads automaton definitions and input tapes.
//
// The text format of a definition is, one section per line, in order:
//
//	q0 q1 q2        # states
//	a b             # input alphabet
//	A S             # stack alphabet
//	q0              # initial state
//	S               # initial stack symbol
//	q2              # accepting states, or . for none
//	q0 a S q0 A S   # transitions: state input top next push...
//	q0 b A q1 .
//
// The literal "." denotes the empty symbol: as a transition input it
// consumes nothing, in a replacement list it pushes nothing.  It may
// not be declared in an alphabet.
//
// YAML and JSON definitions follow [ir.Doc].
package parse

import (
	"fmt"

	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/ir"

	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Automaton, error) {
	pOpts := &parseOpts{format: format.TextFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.TextFormat:
		return parseText(d)
	case format.YAMLFormat, format.JSONFormat:
		return parseDoc(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

// parseDoc handles both yaml and json, json being yaml.
func parseDoc(d []byte) (*ir.Automaton, error) {
	doc := &ir.Doc{}
	if err := yaml.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	a, err := ir.FromDoc(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return a, nil
}
