package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/tape"
	"github.com/signadot/pushdown/token"

	"github.com/goccy/go-yaml"
)

// ParseTapes reads input tapes over alphabet.
//
// In text form there is one tape per line, symbols separated by
// whitespace; a blank line is the empty word and so is an empty
// document.  In YAML and JSON form the document is a list of strings,
// each one a tape in text form.
func ParseTapes(d []byte, alphabet *ir.Alphabet, opts ...ParseOption) ([]*tape.Tape, error) {
	pOpts := &parseOpts{format: format.TextFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.TextFormat:
		lines, err := token.TokenizeLines(d)
		if err != nil {
			return nil, err
		}
		res := make([]*tape.Tape, len(lines))
		for i := range lines {
			t, err := lineTape(&lines[i], alphabet)
			if err != nil {
				return nil, err
			}
			res[i] = t
		}
		return res, nil
	case format.YAMLFormat, format.JSONFormat:
		var words []string
		if err := yaml.Unmarshal(d, &words); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		res := make([]*tape.Tape, len(words))
		for i, w := range words {
			t, err := ParseTape(w, alphabet)
			if err != nil {
				return nil, fmt.Errorf("tape %d: %w", i, err)
			}
			res[i] = t
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

// ParseTape reads a single whitespace separated word over alphabet.
// A nil alphabet admits any symbol.
func ParseTape(w string, alphabet *ir.Alphabet) (*tape.Tape, error) {
	fs := strings.Fields(w)
	syms := make([]ir.Symbol, len(fs))
	for i, f := range fs {
		s, err := tapeSymbol(f, alphabet)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		syms[i] = s
	}
	return tape.New(syms, alphabet)
}

func lineTape(ln *token.Line, alphabet *ir.Alphabet) (*tape.Tape, error) {
	syms := make([]ir.Symbol, len(ln.Tokens))
	for i := range ln.Tokens {
		s, err := tapeSymbol(ln.Tokens[i].Text, alphabet)
		if err != nil {
			return nil, posErr(err, ln.Tokens[i].Pos)
		}
		syms[i] = s
	}
	return tape.New(syms, alphabet)
}

func tapeSymbol(v string, alphabet *ir.Alphabet) (ir.Symbol, error) {
	s, err := ir.NewSymbol(v)
	if err != nil {
		return ir.Empty, err
	}
	if alphabet != nil && !alphabet.Contains(s) {
		return ir.Empty, fmt.Errorf("%w: %q not in input alphabet %s", ir.ErrUnknownSymbol, v, alphabet)
	}
	return s, nil
}
