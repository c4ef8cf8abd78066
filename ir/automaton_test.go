package ir

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testDoc() *Doc {
	return &Doc{
		States:  []string{"q0", "q1"},
		Input:   []string{"a", "b"},
		Stack:   []string{"A", "Z"},
		Initial: "q0",
		Bottom:  "Z",
		Accept:  []string{},
		Transitions: []TransitionDoc{
			{From: "q0", Input: "a", Top: "A", To: "q0", Push: []string{"A", "A"}},
			{From: "q0", Input: "a", Top: "Z", To: "q0", Push: []string{"A"}},
			{From: "q0", Input: "b", Top: "A", To: "q1", Push: []string{}},
			{From: "q1", Input: "b", Top: "A", To: "q1", Push: []string{}},
		},
	}
}

func TestFromDoc(t *testing.T) {
	a, err := FromDoc(testDoc())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testDoc(), a.Doc()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if a.NumTransitions() != 4 || a.Initial() != "q0" || a.Bottom() != "Z" || a.IsAccepting("q1") {
		t.Errorf("got\n%s", a)
	}
}

type docErrTest struct {
	name string
	edit func(*Doc)
	e    error
}

func TestFromDocErrors(t *testing.T) {
	dets := []docErrTest{
		{"no-states", func(d *Doc) { d.States = nil }, ErrDefinition},
		{"no-input", func(d *Doc) { d.Input = nil }, ErrEmptyAlphabet},
		{"empty-in-stack", func(d *Doc) { d.Stack = append(d.Stack, ".") }, ErrReservedEmpty},
		{"initial", func(d *Doc) { d.Initial = "q9" }, ErrUnknownState},
		{"bottom", func(d *Doc) { d.Bottom = "B" }, ErrUnknownSymbol},
		{"bottom-empty", func(d *Doc) { d.Bottom = "." }, ErrUnknownSymbol},
		{"accept", func(d *Doc) { d.Accept = []string{"q9"} }, ErrUnknownState},
		{"to", func(d *Doc) { d.Transitions[0].To = "q9" }, ErrUnknownState},
		{"input", func(d *Doc) { d.Transitions[0].Input = "c" }, ErrUnknownSymbol},
		{"top", func(d *Doc) { d.Transitions[0].Top = "." }, ErrReservedEmpty},
		{"push", func(d *Doc) { d.Transitions[0].Push = []string{"B"} }, ErrUnknownSymbol},
	}
	for _, det := range dets {
		d := testDoc()
		det.edit(d)
		if _, err := FromDoc(d); !errors.Is(err, det.e) {
			t.Errorf("%s: got %v want %v", det.name, err, det.e)
		}
	}
	if _, err := FromDoc(nil); !errors.Is(err, ErrDefinition) {
		t.Errorf("nil: got %v", err)
	}
}

func TestNewCopiesIndex(t *testing.T) {
	states, _ := NewStateSet("q")
	alpha, _ := NewAlphabet("a")
	stk, _ := NewAlphabet("Z")
	none, _ := NewStateSet()
	delta := NewTransitionIndex(NewTransition("q", "a", "Z", "q"))
	a, err := New(states, alpha, stk, "q", "Z", none, delta)
	if err != nil {
		t.Fatal(err)
	}
	delta.Add(NewTransition("q", Empty, "Z", "q"))
	if a.NumTransitions() != 1 {
		t.Errorf("automaton follows caller's index")
	}
	if _, err := New(states, alpha, stk, "q", "Z", nil, delta); !errors.Is(err, ErrDefinition) {
		t.Errorf("nil accepting: %v", err)
	}
}

func TestAutomatonString(t *testing.T) {
	a, err := FromDoc(testDoc())
	if err != nil {
		t.Fatal(err)
	}
	got := a.String()
	for _, want := range []string{
		"Q = {q0, q1}\n",
		"Σ = {a, b}\n",
		"Γ = {A, Z}\n",
		"s = q0\n",
		"z = Z\n",
		"F = {}\n",
		"δ :\n  (q0, a, A) → (q0, A A)\n",
		"  (q1, b, A) → (q1, ε)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}
