package ir

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Set is an ordered set of T backed by a sorted slice.
type Set[T any] struct {
	cmp  func(a, b T) int
	elts []T
}

func NewSet[T cmp.Ordered](elts ...T) *Set[T] {
	return NewSetFunc(cmp.Compare[T], elts...)
}

func NewSetFunc[T any](cmp func(a, b T) int, elts ...T) *Set[T] {
	s := &Set[T]{cmp: cmp, elts: make([]T, 0, len(elts))}
	for _, e := range elts {
		s.Add(e)
	}
	return s
}

// Add inserts v, reporting whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	i, found := slices.BinarySearchFunc(s.elts, v, s.cmp)
	if found {
		return false
	}
	s.elts = slices.Insert(s.elts, i, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	_, found := slices.BinarySearchFunc(s.elts, v, s.cmp)
	return found
}

func (s *Set[T]) Len() int {
	return len(s.elts)
}

// Values returns the elements in order.  The result is a copy.
func (s *Set[T]) Values() []T {
	return slices.Clone(s.elts)
}

func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{cmp: s.cmp, elts: slices.Clone(s.elts)}
}

func (s *Set[T]) Equal(o *Set[T]) bool {
	return slices.EqualFunc(s.elts, o.elts, func(a, b T) bool {
		return s.cmp(a, b) == 0
	})
}

func (s *Set[T]) String() string {
	parts := make([]string, len(s.elts))
	for i, e := range s.elts {
		parts[i] = fmt.Sprint(e)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
