package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over a Report, for example
//
//	accepted && steps > 10
//	not accepted and length % 2 == 0
//	occurs(input, "a") == occurs(input, "b")
//	symbols(input)[0] == "a"
type Filter struct {
	src  string
	prog *vm.Program
}

func NewFilter(src string) (*Filter, error) {
	opts := append(exprOpts(), expr.Env(Report{}), expr.AsBool())
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrFilter, src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) Match(r Report) (bool, error) {
	v, err := expr.Run(f.prog, r)
	if err != nil {
		return false, fmt.Errorf("%w: %q on report %d: %w", ErrFilter, f.src, r.Index, err)
	}
	return v.(bool), nil
}

func (f *Filter) String() string {
	return f.src
}
