package stack

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pushdown/ir"
)

func TestPushAllOrder(t *testing.T) {
	s := New()
	s.PushAll([]ir.Symbol{"A", "B"})
	if got := s.Peek(); got != "A" {
		t.Errorf("peek %q", got)
	}
	if got, err := s.Pop(); err != nil || got != "A" {
		t.Errorf("pop %q %v", got, err)
	}
	if got := s.Peek(); got != "B" {
		t.Errorf("peek after pop %q", got)
	}
}

func TestPushEmpty(t *testing.T) {
	s := New("Z")
	s.Push(ir.Empty)
	s.PushAll([]ir.Symbol{ir.Empty, "A", ir.Empty})
	if diff := cmp.Diff([]ir.Symbol{"A", "Z"}, s.Symbols()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if s.String() != "A Z" || s.Len() != 2 {
		t.Errorf("got %q", s)
	}
}

func TestPopEmpty(t *testing.T) {
	s := New("Z")
	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() || s.Peek() != ir.Empty || s.String() != "" {
		t.Errorf("not empty: %q", s)
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("got %v", err)
	}
}

func TestClone(t *testing.T) {
	s := New("A", "Z")
	c := s.Clone()
	if !c.Equal(s) {
		t.Fatal("clone differs")
	}
	c.Push("B")
	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]ir.Symbol{"B", "A", "Z"}, c.Symbols()); diff != "" {
		t.Errorf("clone (-want +got):\n%s", diff)
	}
	if s.Equal(c) {
		t.Error("equal after divergence")
	}
}
