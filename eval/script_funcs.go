package eval

import (
	"strings"

	"github.com/expr-lang/expr"
)

// exprOpts gives the functions available to filters besides the
// builtins of expr.
func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("symbols", func(params ...any) (any, error) {
			return strings.Fields(params[0].(string)), nil
		},
			new(func(string) []string)),
		expr.Function("occurs", func(params ...any) (any, error) {
			n := 0
			for _, f := range strings.Fields(params[0].(string)) {
				if f == params[1].(string) {
					n++
				}
			}
			return n, nil
		},
			new(func(string, string) int)),
	}
}
