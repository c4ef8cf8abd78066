package pushdown

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/pushdown/debug"
	"github.com/signadot/pushdown/eval"
	"github.com/signadot/pushdown/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

var ErrPatch = errors.New("patch error")

// Patch applies patch to the document form of a and builds the
// resulting automaton, which is validated like any other definition.
//
// A patch which is a list is an RFC 6902 JSON Patch, one which is an
// object is an RFC 7386 JSON Merge Patch.  The patch may be given in
// JSON or YAML.
func Patch(a *ir.Automaton, patch []byte) (*ir.Automaton, error) {
	if a == nil {
		return nil, eval.ErrNilAutomaton
	}
	p, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	p = bytes.TrimSpace(p)
	doc, err := json.Marshal(a.Doc())
	if err != nil {
		return nil, err
	}
	var out []byte
	switch {
	case len(p) != 0 && p[0] == '[':
		jp, err := jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		if out, err = jp.Apply(doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	case len(p) != 0 && p[0] == '{':
		if out, err = jsonpatch.MergePatch(doc, p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	default:
		return nil, fmt.Errorf("%w: expected a list or an object", ErrPatch)
	}
	if debug.Patch() {
		debug.Logf("patch: %s\n", out)
	}
	res := &ir.Doc{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	b, err := ir.FromDoc(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return b, nil
}
