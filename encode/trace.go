package encode

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/ir"
)

const (
	transitionWidth = 25
	stateWidth      = 5
	stackWidth      = 15
)

// Tracer is an eval.Observer printing the configurations of a search
// as a table, one row per configuration reached.
//
// A row gives the transition used to reach the configuration, its
// state, the unread input, the stack from the top, and then either the
// candidate transitions out of it or the verdict on it.
type Tracer struct {
	w        io.Writer
	es       *EncState
	tapeCols int
	err      error
}

func NewTracer(w io.Writer, opts ...EncodeOption) *Tracer {
	return &Tracer{w: w, es: newEncState(opts)}
}

// Err is the first write error encountered, if any.
func (t *Tracer) Err() error {
	return t.err
}

func (t *Tracer) Observe(ev *eval.Event) {
	switch ev.Kind {
	case eval.Start:
		t.tapeCols = max(ev.Input.Len()*2+1, utf8.RuneCountInString("word (ω)"))
		t.header()
		t.row(ev)
	case eval.Apply:
		t.row(ev)
	case eval.Done:
		t.rule()
	}
}

func (t *Tracer) header() {
	t.rule()
	t.printf("%s%s\n", t.cells("used transition", "state", "word (ω)", "stack", HeaderColor), t.es.Color(HeaderColor, "transitions"))
	t.rule()
}

func (t *Tracer) rule() {
	n := transitionWidth + stateWidth + t.tapeCols + stackWidth + 13 + len("transitions")
	t.printf("%s\n", t.es.Color(SepColor, strings.Repeat("-", n)))
}

func (t *Tracer) row(ev *eval.Event) {
	via := "-"
	if ev.Via != nil {
		via = ev.Via.String()
	}
	cfg := ev.Config
	b := &strings.Builder{}
	b.WriteString(t.cells(via, cfg.State.String(), orEmpty(cfg.Tape.String()), orEmpty(cfg.Stack.String()), -1))
	switch {
	case len(ev.Candidates) != 0:
		b.WriteString(candidates(ev.Candidates))
	case ev.Accepting:
		b.WriteString(t.es.Color(AcceptColor, "ω ∈ L"))
	default:
		b.WriteString(t.es.Color(RejectColor, "ω ∉ L"))
	}
	t.printf("%s\n", b.String())
}

func (t *Tracer) cells(via, state, word, stack string, attr ColorAttr) string {
	color := func(s string) string {
		if attr < 0 {
			return s
		}
		return t.es.Color(attr, s)
	}
	sep := t.es.Color(SepColor, "|")
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s ",
		sep, color(pad(via, transitionWidth)),
		sep, color(pad(state, stateWidth)),
		sep, color(pad(word, t.tapeCols)),
		sep, color(pad(stack, stackWidth)),
		sep)
}

func (t *Tracer) printf(f string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, f, args...)
}

func candidates(ts []ir.Transition) string {
	parts := make([]string, len(ts))
	for i := range ts {
		parts[i] = ts[i].String()
	}
	return strings.Join(parts, "  ")
}

func orEmpty(s string) string {
	if s == "" {
		return "ε"
	}
	return s
}

// pad left aligns s in w runes.
func pad(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}
