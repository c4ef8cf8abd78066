// Package pushdown loads pushdown automaton definitions and decides
// whether they accept words.  The packages ir, parse, eval and encode
// give finer control.
package pushdown

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/parse"
)

// Load parses a definition, in text form unless opts say otherwise.
func Load(d []byte, opts ...parse.ParseOption) (*ir.Automaton, error) {
	return parse.Parse(d, opts...)
}

// LoadFile reads the definition in path, taking its format from the
// file extension.
func LoadFile(path string) (*ir.Automaton, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := parse.Parse(d, parse.ParseFormat(format.FromExt(filepath.Ext(path))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Accepts reports whether a accepts word, a whitespace separated
// sequence of input symbols.
func Accepts(a *ir.Automaton, word string, opts ...eval.Option) (bool, error) {
	if a == nil {
		return false, eval.ErrNilAutomaton
	}
	in, err := parse.ParseTape(word, a.InputAlphabet())
	if err != nil {
		return false, err
	}
	return eval.Evaluate(a, in, opts...)
}
