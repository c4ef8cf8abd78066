package ir

import (
	"errors"
	"testing"
)

func TestNewSymbol(t *testing.T) {
	s, err := NewSymbol("a")
	if err != nil || s != "a" || s.IsEmpty() {
		t.Errorf("got %q, %v", s, err)
	}
	for v, want := range map[string]error{
		"":    ErrEmptyValue,
		".":   ErrReservedEmpty,
		"a b": ErrEmptyValue,
	} {
		if _, err := NewSymbol(v); !errors.Is(err, want) {
			t.Errorf("%q: got %v want %v", v, err, want)
		}
	}
}

func TestParseSymbol(t *testing.T) {
	s, err := ParseSymbol(".")
	if err != nil || s != Empty {
		t.Errorf("got %q, %v", s, err)
	}
	if s.Value() != EmptyValue || s.String() != "ε" {
		t.Errorf("empty renders as %q %q", s.Value(), s.String())
	}
	s, err = ParseSymbol("A")
	if err != nil || s.Value() != "A" || s.String() != "A" {
		t.Errorf("got %q, %v", s, err)
	}
}

func TestNewState(t *testing.T) {
	if q, err := NewState("q0"); err != nil || q.String() != "q0" {
		t.Errorf("got %q, %v", q, err)
	}
	for v, want := range map[string]error{
		"":     ErrEmptyLabel,
		".":    ErrReservedEmpty,
		"q\t0": ErrEmptyLabel,
	} {
		if _, err := NewState(v); !errors.Is(err, want) {
			t.Errorf("%q: got %v want %v", v, err, want)
		}
	}
	if State("a").Compare("b") >= 0 || Symbol("b").Compare("a") <= 0 {
		t.Error("order by label")
	}
}
