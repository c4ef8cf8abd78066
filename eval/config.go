package eval

import (
	"fmt"

	"github.com/signadot/pushdown/ir"
	"github.com/signadot/pushdown/stack"
	"github.com/signadot/pushdown/tape"
)

// Configuration is an instantaneous description of a computation.  The
// engine owns every Configuration it creates; those handed to an
// Observer must not be modified.
type Configuration struct {
	State ir.State
	Tape  *tape.Tape
	Stack *stack.Stack
}

func (c *Configuration) Clone() *Configuration {
	return &Configuration{
		State: c.State,
		Tape:  c.Tape.Clone(),
		Stack: c.Stack.Clone(),
	}
}

func (c *Configuration) Equal(o *Configuration) bool {
	return c.State == o.State && c.Tape.Equal(o.Tape) && c.Stack.Equal(o.Stack)
}

func (c *Configuration) String() string {
	return fmt.Sprintf("(%s, [%s], [%s])", c.State, c.Tape, c.Stack)
}

// apply moves c along t.  The caller guarantees t was looked up from c.
func (c *Configuration) apply(t ir.Transition) error {
	c.State = t.To
	if t.Consumes() {
		c.Tape.MoveRight()
	}
	if _, err := c.Stack.Pop(); err != nil {
		return fmt.Errorf("%w: applying %s to %s: %w", errInternal, t, c, err)
	}
	c.Stack.PushAll(t.Push)
	return nil
}
