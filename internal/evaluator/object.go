package evaluator

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/tinylam/tinylam/internal/core"
)

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	CLOSURE_OBJ = "CLOSURE"
)

// Object is the interface for all runtime values.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is an integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

// Closure pairs a lambda body with the environment stack in effect when
// the lambda was evaluated. The captured slice is never written through
// after capture, so sharing it with the creating frame is safe.
type Closure struct {
	Env  []Object
	Body core.Expr
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }

func (c *Closure) Inspect() string {
	captured := lo.Map(c.Env, func(obj Object, _ int) string {
		return obj.Inspect()
	})
	return fmt.Sprintf("<closure [%s] %s>", strings.Join(captured, " "), c.Body.String())
}
