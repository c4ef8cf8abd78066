package pushdown

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/signadot/pushdown/encode"
	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/libdiff"
	"github.com/signadot/pushdown/tape"

	jsonpatch "github.com/evanphx/json-patch"
)

// Disagreement is a tape accepted by exactly one of two automata, or
// on which exactly one of them failed.
type Disagreement struct {
	From eval.Report `json:"from" yaml:"from"`
	To   eval.Report `json:"to" yaml:"to"`
}

type DiffResult struct {
	// Text is the line diff of the text forms.
	Text *libdiff.Diff
	// MergePatch turns the document form of from into that of to.
	MergePatch []byte
	Disagree   []Disagreement
}

// Changed reports whether the definitions differ or some tape told
// them apart.
func (r *DiffResult) Changed() bool {
	return r.Text.Changed() || len(r.Disagree) != 0
}

// Diff compares two automata by definition and, over tapes, by
// behaviour.  Two definitions may differ while no tape tells them
// apart.
func Diff(ctx context.Context, from, to *ir.Automaton, tapes []*tape.Tape, opts ...eval.Option) (*DiffResult, error) {
	if from == nil || to == nil {
		return nil, eval.ErrNilAutomaton
	}
	res := &DiffResult{
		Text: libdiff.Lines(encode.AutomatonString(from), encode.AutomatonString(to)),
	}
	fromDoc, err := json.Marshal(from.Doc())
	if err != nil {
		return nil, err
	}
	toDoc, err := json.Marshal(to.Doc())
	if err != nil {
		return nil, err
	}
	if res.MergePatch, err = jsonpatch.CreateMergePatch(fromDoc, toDoc); err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	if len(tapes) == 0 {
		return res, nil
	}
	fromRs, err := eval.Batch(ctx, from, tapes, opts...)
	if err != nil {
		return nil, err
	}
	toRs, err := eval.Batch(ctx, to, tapes, opts...)
	if err != nil {
		return nil, err
	}
	for i := range fromRs {
		f, t := fromRs[i], toRs[i]
		if f.Accepted != t.Accepted || f.Error != t.Error {
			res.Disagree = append(res.Disagree, Disagreement{From: f, To: t})
		}
	}
	return res, nil
}
