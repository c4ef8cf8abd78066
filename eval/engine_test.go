package eval

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/parse"
	"github.com/signadot/pushdown/tape"
)

func load(t *testing.T, name string) *ir.Automaton {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("..", "parse", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	a, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func mustTape(t *testing.T, a *ir.Automaton, w string) *tape.Tape {
	t.Helper()
	in, err := parse.ParseTape(w, a.InputAlphabet())
	if err != nil {
		t.Fatal(err)
	}
	return in
}

type evalTest struct {
	def  string
	in   string
	want bool
}

var evalTests = []evalTest{
	{"anbn.pda", "a a b b", true},
	{"anbn.pda", "a a a b b", false},
	{"anbn.pda", "a a b b b", false},
	{"anbn.pda", "a b b", false},
	{"anbn.pda", "", false},
	{"anbn.pda", "b", false},
	{"anbn-final.pda", "a a b b", true},
	{"anbn-final.pda", "", true},
	{"anbn-final.pda", "a a b", false},
	{"anbn-final.pda", "b a", false},
	{"palindrome.pda", "1 1 1 1", true},
	{"palindrome.pda", "1 0 1 1", false},
	{"palindrome.pda", "0 1 1 0", true},
	{"palindrome.pda", "0 1 0", false},
	{"palindrome.pda", "", true},
	{"palindrome.pda", "1 0 0 0 0 1", true},
}

func TestEvaluate(t *testing.T) {
	for _, et := range evalTests {
		a := load(t, et.def)
		got, err := Evaluate(a, mustTape(t, a, et.in))
		if err != nil {
			t.Errorf("%s %q: %v", et.def, et.in, err)
			continue
		}
		if got != et.want {
			t.Errorf("%s %q: got %t want %t", et.def, et.in, got, et.want)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	for _, et := range evalTests {
		a := load(t, et.def)
		in := mustTape(t, a, et.in)
		doc := a.Doc()
		first, err := Run(a, in)
		if err != nil {
			t.Fatal(err)
		}
		second, err := Run(a, mustTape(t, a, et.in))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s %q: runs differ (-first +second):\n%s", et.def, et.in, diff)
		}
		if diff := cmp.Diff(doc, a.Doc()); diff != "" {
			t.Errorf("%s %q: automaton changed (-before +after):\n%s", et.def, et.in, diff)
		}
		if !in.IsReset() || in.Input() != mustTape(t, a, et.in).Input() {
			t.Errorf("%s %q: tape changed to %q at %d", et.def, et.in, in.Input(), in.Head())
		}
	}
}

func TestRunAcceptingRun(t *testing.T) {
	a := load(t, "anbn.pda")
	res, err := Run(a, mustTape(t, a, "a a b b"))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Transition{
		ir.NewTransition("q0", "a", "Z", "q0", "A"),
		ir.NewTransition("q0", "a", "A", "q0", "A", "A"),
		ir.NewTransition("q0", "b", "A", "q1"),
		ir.NewTransition("q1", "b", "A", "q1"),
	}
	if diff := cmp.Diff(want, res.Run); diff != "" {
		t.Errorf("run (-want +got):\n%s", diff)
	}
	if res.Steps != 4 || res.Depth != 4 {
		t.Errorf("steps %d depth %d", res.Steps, res.Depth)
	}

	res, err = Run(a, mustTape(t, a, "a a a b b"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Accepted || res.Run != nil {
		t.Errorf("got %+v", res)
	}
}

// snapshot records the text of every configuration when it is observed
// so that later mutation of a configuration shows.
type snapshot struct {
	cfgs  []*Configuration
	texts []string
}

func (s *snapshot) Observe(ev *Event) {
	if ev.Config == nil {
		return
	}
	s.cfgs = append(s.cfgs, ev.Config)
	s.texts = append(s.texts, ev.Config.String())
}

func TestCheckpointsNotMutated(t *testing.T) {
	a := load(t, "palindrome.pda")
	s := &snapshot{}
	ok, err := Evaluate(a, mustTape(t, a, "0 1 1 0 1"), WithObserver(s))
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("odd word accepted")
	}
	if len(s.cfgs) < 5 {
		t.Fatalf("only %d configurations", len(s.cfgs))
	}
	for i, c := range s.cfgs {
		if got := c.String(); got != s.texts[i] {
			t.Errorf("configuration %d changed from %s to %s", i, s.texts[i], got)
		}
	}
}

func TestEventSequence(t *testing.T) {
	a := load(t, "anbn.pda")
	var kinds []EventKind
	obs := ObserverFunc(func(ev *Event) {
		if ev.Automaton != a || ev.Input == nil {
			t.Errorf("event %s lacks automaton or input", ev.Kind)
		}
		kinds = append(kinds, ev.Kind)
	})
	if _, err := Evaluate(a, mustTape(t, a, "a b"), WithObserver(obs)); err != nil {
		t.Fatal(err)
	}
	want := []EventKind{Start, Apply, Apply, Done}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	kinds = nil
	if _, err := Evaluate(a, mustTape(t, a, "a b b"), WithObserver(obs)); err != nil {
		t.Fatal(err)
	}
	want = []EventKind{Start, Apply, Apply, Backtrack, Backtrack, Done}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("dead branch (-want +got):\n%s", diff)
	}
}

func TestAcceptancePolicies(t *testing.T) {
	states, _ := ir.NewStateSet("p", "q")
	input, _ := ir.NewAlphabet("a")
	stk, _ := ir.NewAlphabet("Z")
	none, _ := ir.NewStateSet()
	final, _ := ir.NewStateSet("q")

	// empty stack, no accepting states
	pop := ir.NewTransitionIndex(ir.NewTransition("p", "a", "Z", "q"))
	a, err := ir.New(states, input, stk, "p", "Z", none, pop)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := Evaluate(a, mustTape(t, a, "a")); err != nil || !ok {
		t.Errorf("empty stack: got %t, %v", ok, err)
	}

	// final state, stack never empty
	keep := ir.NewTransitionIndex(ir.NewTransition("p", "a", "Z", "q", "Z"))
	b, err := ir.New(states, input, stk, "p", "Z", final, keep)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := Evaluate(b, mustTape(t, b, "a")); err != nil || !ok {
		t.Errorf("final state: got %t, %v", ok, err)
	}
	if ok, err := Evaluate(b, mustTape(t, b, "a a")); err != nil || ok {
		t.Errorf("final state too long: got %t, %v", ok, err)
	}

	// neither
	c, err := ir.New(states, input, stk, "p", "Z", none, keep)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := Evaluate(c, mustTape(t, c, "a")); err != nil || ok {
		t.Errorf("neither: got %t, %v", ok, err)
	}

	// initial configuration, no transitions at all
	start, _ := ir.NewStateSet("p")
	d, err := ir.New(states, input, stk, "p", "Z", start, ir.NewTransitionIndex())
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := Evaluate(d, mustTape(t, d, "")); err != nil || !ok {
		t.Errorf("initial: got %t, %v", ok, err)
	}
	if ok, err := Evaluate(d, mustTape(t, d, "a")); err != nil || ok {
		t.Errorf("initial with input: got %t, %v", ok, err)
	}
}

func TestEpsilonBeforeEnd(t *testing.T) {
	// epsilon moves apply while input remains and after it is consumed
	states, _ := ir.NewStateSet("p", "q", "r")
	input, _ := ir.NewAlphabet("a")
	stk, _ := ir.NewAlphabet("Z")
	final, _ := ir.NewStateSet("r")
	delta := ir.NewTransitionIndex(
		ir.NewTransition("p", ir.Empty, "Z", "q", "Z"),
		ir.NewTransition("q", "a", "Z", "q", "Z"),
		ir.NewTransition("q", ir.Empty, "Z", "r", "Z"),
	)
	a, err := ir.New(states, input, stk, "p", "Z", final, delta)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"", "a", "a a a"} {
		if ok, err := Evaluate(a, mustTape(t, a, w)); err != nil || !ok {
			t.Errorf("%q: got %t, %v", w, ok, err)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	a := load(t, "anbn.pda")
	if _, err := Evaluate(nil, mustTape(t, a, "a")); !errors.Is(err, ErrNilAutomaton) {
		t.Errorf("nil automaton: %v", err)
	}
	if _, err := Evaluate(a, nil); !errors.Is(err, ErrNilTape) {
		t.Errorf("nil tape: %v", err)
	}
	in := mustTape(t, a, "a b")
	in.MoveRight()
	if _, err := Evaluate(a, in); !errors.Is(err, ErrTapeNotReset) {
		t.Errorf("moved tape: %v", err)
	}
}

func TestMaxSteps(t *testing.T) {
	loop := load(t, "loop.pda")
	for _, w := range []string{"", "a"} {
		_, err := Evaluate(loop, mustTape(t, loop, w), MaxSteps(1000))
		if !errors.Is(err, ErrStepLimit) {
			t.Errorf("%q: got %v", w, err)
		}
	}

	// a bound never reached leaves results alone
	for _, et := range evalTests {
		a := load(t, et.def)
		got, err := Evaluate(a, mustTape(t, a, et.in), MaxSteps(10000))
		if err != nil || got != et.want {
			t.Errorf("%s %q: got %t, %v", et.def, et.in, got, err)
		}
	}

	a := load(t, "anbn.pda")
	if _, err := Evaluate(a, mustTape(t, a, "a a b b"), MaxSteps(3)); !errors.Is(err, ErrStepLimit) {
		t.Errorf("tight bound: got %v", err)
	}
}
