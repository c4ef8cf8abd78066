// Package encode writes automata, evaluation reports and step traces.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/pushdown/format"
	"github.com/signadot/pushdown/ir"

	"github.com/goccy/go-yaml"
)

// EncodeAutomaton writes a in the format given by opts, text by
// default.  The text form reads back with parse.Parse to an equal
// automaton.
func EncodeAutomaton(a *ir.Automaton, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.TextFormat:
		return writeString(w, automatonText(a, es))
	case format.YAMLFormat:
		d, err := yaml.Marshal(a.Doc())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		return writeJSON(w, a.Doc())
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

// AutomatonString is the uncolored text form of a.
func AutomatonString(a *ir.Automaton) string {
	return automatonText(a, newEncState(nil))
}

func automatonText(a *ir.Automaton, es *EncState) string {
	b := &strings.Builder{}
	line := func(comment string, fields ...string) {
		b.WriteString(strings.Join(fields, " "))
		if es.comments {
			b.WriteString("  ")
			b.WriteString(es.Color(CommentColor, "# "+comment))
		}
		b.WriteByte('\n')
	}
	line("states", states(es, a.States().States()...)...)
	line("input alphabet", symbols(es, a.InputAlphabet().Symbols()...)...)
	line("stack alphabet", symbols(es, a.StackAlphabet().Symbols()...)...)
	line("initial state", states(es, a.Initial())...)
	line("initial stack symbol", symbols(es, a.Bottom())...)
	if a.Accepting().Len() == 0 {
		line("accepting states", es.Color(EmptyColor, ir.EmptyValue))
	} else {
		line("accepting states", states(es, a.Accepting().States()...)...)
	}
	for i, t := range a.Transitions() {
		fields := make([]string, 0, 4+len(t.Push))
		fields = append(fields, states(es, t.From)...)
		fields = append(fields, symbols(es, t.Input, t.Top)...)
		fields = append(fields, states(es, t.To)...)
		if len(t.Push) == 0 {
			fields = append(fields, es.Color(EmptyColor, ir.EmptyValue))
		} else {
			fields = append(fields, symbols(es, t.Push...)...)
		}
		if i == 0 && es.comments {
			line("transitions", fields...)
			continue
		}
		b.WriteString(strings.Join(fields, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func states(es *EncState, qs ...ir.State) []string {
	res := make([]string, len(qs))
	for i, q := range qs {
		res[i] = es.Color(StateColor, q.String())
	}
	return res
}

func symbols(es *EncState, ss ...ir.Symbol) []string {
	res := make([]string, len(ss))
	for i, s := range ss {
		if s.IsEmpty() {
			res[i] = es.Color(EmptyColor, s.Value())
			continue
		}
		res[i] = es.Color(SymbolColor, s.Value())
	}
	return res
}

func writeJSON(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
