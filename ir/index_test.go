package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransitionIndexLookup(t *testing.T) {
	x := NewTransitionIndex(
		NewTransition("q", Empty, "Z", "r", "Z"),
		NewTransition("q", "a", "Z", "q", "A", "Z"),
		NewTransition("q", "a", "Z", "p"),
		NewTransition("q", "a", "Z", "q", "A"),
		NewTransition("q", "b", "Z", "q"),
		NewTransition("q", "a", "A", "q"),
	)
	got := x.Lookup("q", "a", "Z")
	want := []Transition{
		NewTransition("q", "a", "Z", "p"),
		NewTransition("q", "a", "Z", "q", "A"),
		NewTransition("q", "a", "Z", "q", "A", "Z"),
		NewTransition("q", Empty, "Z", "r", "Z"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// at the end of the tape only epsilon transitions apply
	got = x.Lookup("q", Empty, "Z")
	want = []Transition{NewTransition("q", Empty, "Z", "r", "Z")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("end of tape (-want +got):\n%s", diff)
	}

	if got := x.Lookup("q", "b", "A"); len(got) != 0 {
		t.Errorf("got %v", got)
	}
	if got := x.Lookup("r", "a", "Z"); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestTransitionIndexAdd(t *testing.T) {
	x := NewTransitionIndex()
	push := []Symbol{"A", "B"}
	if !x.Add(NewTransition("q", "a", "Z", "q", push...)) {
		t.Error("first add")
	}
	if x.Add(NewTransition("q", "a", "Z", "q", "A", "B")) {
		t.Error("duplicate add")
	}
	if x.Add(NewTransition("q", "a", "Z", "q", "A", Empty, "B")) {
		t.Error("empty in replacement list is no symbol")
	}
	if x.Len() != 1 {
		t.Errorf("len %d", x.Len())
	}
	push[0] = "C"
	if got := x.Lookup("q", "a", "Z")[0].Push[0]; got != "A" {
		t.Errorf("index shares caller's list: %q", got)
	}
	if !x.Add(NewTransition("q", "a", "Z", "q", "B", "A")) || x.Len() != 2 {
		t.Error("order of replacement matters")
	}
}

func TestTransitionIndexAllClone(t *testing.T) {
	ts := []Transition{
		NewTransition("q", "b", "Z", "q"),
		NewTransition("p", "a", "Z", "q"),
		NewTransition("q", Empty, "Z", "q"),
		NewTransition("q", "a", "Z", "q"),
	}
	x := NewTransitionIndex(ts...)
	want := []Transition{ts[1], ts[2], ts[3], ts[0]}
	if diff := cmp.Diff(want, x.All()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	c := x.Clone()
	c.Add(NewTransition("r", "a", "Z", "q"))
	if x.Len() != 4 || c.Len() != 5 {
		t.Errorf("lens %d %d", x.Len(), c.Len())
	}
}

func TestTransitionString(t *testing.T) {
	tr := NewTransition("q0", Empty, "Z", "q1", "A", "Z")
	if got, want := tr.String(), "(q0, ε, Z) → (q1, A Z)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	tr = NewTransition("q0", "a", "Z", "q1")
	if got, want := tr.String(), "(q0, a, Z) → (q1, ε)"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if tr.Consumes() == NewTransition("q0", Empty, "Z", "q1").Consumes() {
		t.Error("consumes")
	}
}
