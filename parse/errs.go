package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/pushdown/token"
)

var (
	ErrParse   = errors.New("parse error")
	ErrMissing = fmt.Errorf("%w: missing section", ErrParse)
	ErrArity   = fmt.Errorf("%w: wrong number of fields", ErrParse)
)

func posErr(err error, p *token.Pos) error {
	return token.NewTokenizeErr(fmt.Errorf("%w: %w", ErrParse, err), p)
}
