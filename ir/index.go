package ir

import (
	"slices"

	"github.com/signadot/pushdown/debug"
)

// TransitionIndex is a multimap from Key to the ordered set of
// transitions sharing that key.
type TransitionIndex struct {
	byKey map[Key]*Set[Transition]
	n     int
}

func NewTransitionIndex(ts ...Transition) *TransitionIndex {
	x := &TransitionIndex{byKey: map[Key]*Set[Transition]{}}
	for _, t := range ts {
		x.Add(t)
	}
	return x
}

// Add inserts t, reporting whether it was new.  Adding a transition
// structurally equal to one already present changes nothing.
func (x *TransitionIndex) Add(t Transition) bool {
	set := x.byKey[t.Key]
	if set == nil {
		set = NewSetFunc(compareRHS)
		x.byKey[t.Key] = set
	}
	t.Push = slices.Clone(t.Push)
	if !set.Add(t) {
		if debug.Index() {
			debug.Logf("index: duplicate transition %s\n", t)
		}
		return false
	}
	x.n++
	return true
}

// Lookup gives the transitions applicable from state q reading in with
// top on the stack: those keyed exactly by (q, in, top) followed by the
// epsilon-input transitions keyed by (q, Empty, top).  Each part is
// ordered by destination state then replacement list.
//
// The returned transitions share storage with the index and must not
// be modified.
func (x *TransitionIndex) Lookup(q State, in, top Symbol) []Transition {
	var res []Transition
	if in != Empty {
		if set := x.byKey[Key{From: q, Input: in, Top: top}]; set != nil {
			res = append(res, set.elts...)
		}
	}
	if set := x.byKey[Key{From: q, Input: Empty, Top: top}]; set != nil {
		res = append(res, set.elts...)
	}
	return res
}

func (x *TransitionIndex) Len() int {
	return x.n
}

// All returns every transition in Transition.Compare order.
func (x *TransitionIndex) All() []Transition {
	keys := make([]Key, 0, len(x.byKey))
	for k := range x.byKey {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, Key.Compare)
	res := make([]Transition, 0, x.n)
	for _, k := range keys {
		res = append(res, x.byKey[k].elts...)
	}
	return res
}

func (x *TransitionIndex) Clone() *TransitionIndex {
	c := &TransitionIndex{byKey: make(map[Key]*Set[Transition], len(x.byKey)), n: x.n}
	for k, set := range x.byKey {
		c.byKey[k] = set.Clone()
	}
	return c
}
