package parse

import (
	"fmt"
	"os"

	"github.com/signadot/pushdown/debug"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/token"
)

const (
	statesLine = iota
	inputLine
	stackLine
	initialLine
	bottomLine
	acceptLine
	headerLines
)

var sectionNames = [headerLines]string{
	"states",
	"input alphabet",
	"stack alphabet",
	"initial state",
	"initial stack symbol",
	"accepting states",
}

type textParser struct {
	lines []token.Line
	end   *token.Pos

	states    *ir.StateSet
	input     *ir.Alphabet
	stack     *ir.Alphabet
	initial   ir.State
	bottom    ir.Symbol
	accepting *ir.StateSet
}

func parseText(d []byte) (*ir.Automaton, error) {
	lines, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		token.PrintLines(os.Stderr, lines, "parse:")
	}
	p := &textParser{lines: lines, end: token.EndPos(d)}
	if len(lines) < headerLines {
		return nil, posErr(fmt.Errorf("%w: %s", ErrMissing, sectionNames[len(lines)]), p.end)
	}
	if err := p.header(); err != nil {
		return nil, err
	}
	return p.automaton()
}

func (p *textParser) header() error {
	var err error
	if p.states, err = p.stateLine(&p.lines[statesLine]); err != nil {
		return err
	}
	if p.states.Len() == 0 {
		return posErr(fmt.Errorf("%w: no states", ir.ErrDefinition), p.lines[statesLine].Pos)
	}
	if p.input, err = p.alphabetLine(&p.lines[inputLine]); err != nil {
		return err
	}
	if p.stack, err = p.alphabetLine(&p.lines[stackLine]); err != nil {
		return err
	}

	tok, err := single(&p.lines[initialLine])
	if err != nil {
		return err
	}
	q, ok := p.states.Lookup(tok.Text)
	if !ok {
		return posErr(fmt.Errorf("%w: initial state %q", ir.ErrUnknownState, tok.Text), tok.Pos)
	}
	p.initial = q

	if tok, err = single(&p.lines[bottomLine]); err != nil {
		return err
	}
	z, ok := p.stack.Lookup(tok.Text)
	if !ok {
		return posErr(fmt.Errorf("%w: initial stack symbol %q", ir.ErrUnknownSymbol, tok.Text), tok.Pos)
	}
	p.bottom = z

	acc := &p.lines[acceptLine]
	if len(acc.Tokens) == 1 && acc.Tokens[0].Text == ir.EmptyValue {
		p.accepting, err = ir.NewStateSet()
		return err
	}
	if p.accepting, err = p.stateLine(acc); err != nil {
		return err
	}
	for i := range acc.Tokens {
		if !p.states.Contains(ir.State(acc.Tokens[i].Text)) {
			return posErr(fmt.Errorf("%w: accepting state %q", ir.ErrUnknownState, acc.Tokens[i].Text), acc.Tokens[i].Pos)
		}
	}
	return nil
}

func (p *textParser) automaton() (*ir.Automaton, error) {
	// checking each transition against an automaton without any yields
	// errors with positions.
	check, err := ir.New(p.states, p.input, p.stack, p.initial, p.bottom, p.accepting, ir.NewTransitionIndex())
	if err != nil {
		return nil, posErr(err, p.lines[0].Pos)
	}
	delta := ir.NewTransitionIndex()
	for i := headerLines; i < len(p.lines); i++ {
		ln := &p.lines[i]
		t, err := transition(ln)
		if err != nil {
			return nil, err
		}
		if err := check.CheckTransition(t); err != nil {
			return nil, posErr(err, ln.Pos)
		}
		delta.Add(t)
	}
	a, err := ir.New(p.states, p.input, p.stack, p.initial, p.bottom, p.accepting, delta)
	if err != nil {
		return nil, posErr(err, p.lines[0].Pos)
	}
	if debug.Parse() {
		debug.Logf("parse: automaton\n%s", a)
	}
	return a, nil
}

// transition reads "state input top next push...".
func transition(ln *token.Line) (ir.Transition, error) {
	toks := ln.Tokens
	if len(toks) < 4 {
		return ir.Transition{}, token.ExpectedErr("state input top next [push...]", ln.End())
	}
	from, err := ir.NewState(toks[0].Text)
	if err != nil {
		return ir.Transition{}, posErr(err, toks[0].Pos)
	}
	input, err := ir.ParseSymbol(toks[1].Text)
	if err != nil {
		return ir.Transition{}, posErr(err, toks[1].Pos)
	}
	top, err := ir.NewSymbol(toks[2].Text)
	if err != nil {
		return ir.Transition{}, posErr(fmt.Errorf("stack top: %w", err), toks[2].Pos)
	}
	to, err := ir.NewState(toks[3].Text)
	if err != nil {
		return ir.Transition{}, posErr(err, toks[3].Pos)
	}
	push := make([]ir.Symbol, 0, len(toks)-4)
	for i := 4; i < len(toks); i++ {
		s, err := ir.ParseSymbol(toks[i].Text)
		if err != nil {
			return ir.Transition{}, posErr(err, toks[i].Pos)
		}
		push = append(push, s)
	}
	return ir.NewTransition(from, input, top, to, push...), nil
}

func (p *textParser) stateLine(ln *token.Line) (*ir.StateSet, error) {
	qs := make([]ir.State, len(ln.Tokens))
	for i := range ln.Tokens {
		q, err := ir.NewState(ln.Tokens[i].Text)
		if err != nil {
			return nil, posErr(err, ln.Tokens[i].Pos)
		}
		qs[i] = q
	}
	res, err := ir.NewStateSet(qs...)
	if err != nil {
		return nil, posErr(err, ln.Pos)
	}
	return res, nil
}

func (p *textParser) alphabetLine(ln *token.Line) (*ir.Alphabet, error) {
	ss := make([]ir.Symbol, len(ln.Tokens))
	for i := range ln.Tokens {
		s, err := ir.NewSymbol(ln.Tokens[i].Text)
		if err != nil {
			return nil, posErr(err, ln.Tokens[i].Pos)
		}
		ss[i] = s
	}
	res, err := ir.NewAlphabet(ss...)
	if err != nil {
		return nil, posErr(err, ln.Pos)
	}
	return res, nil
}

func single(ln *token.Line) (*token.Token, error) {
	if len(ln.Tokens) != 1 {
		return nil, posErr(fmt.Errorf("%w: expected 1, got %d", ErrArity, len(ln.Tokens)), ln.Pos)
	}
	return &ln.Tokens[0], nil
}
