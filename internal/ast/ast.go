package ast

import (
	"fmt"

	"github.com/tinylam/tinylam/internal/typesystem"
)

// Expression is the base interface for all surface syntax nodes.
// Surface trees are authored directly by callers (or decoded from
// fixtures); there is no textual parser in front of them.
type Expression interface {
	expressionNode()
	String() string
}

// Var is a named variable reference.
type Var struct {
	Name string
}

func (v *Var) expressionNode() {}
func (v *Var) String() string  { return v.Name }

// App applies a function expression to an argument expression.
type App struct {
	Function Expression
	Argument Expression
}

func (a *App) expressionNode() {}
func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Function.String(), a.Argument.String())
}

// Lambda is a single-parameter abstraction with an explicit parameter
// type. Each Lambda introduces exactly one name into scope for its body.
type Lambda struct {
	ParamName string
	ParamType typesystem.Type
	Body      Expression
}

func (l *Lambda) expressionNode() {}
func (l *Lambda) String() string {
	return fmt.Sprintf("(\\%s: %s -> %s)", l.ParamName, l.ParamType.String(), l.Body.String())
}

// IntegerLiteral is an integer constant.
type IntegerLiteral struct {
	Value int64
}

func (il *IntegerLiteral) expressionNode() {}
func (il *IntegerLiteral) String() string  { return fmt.Sprintf("%d", il.Value) }

// InfixExpression is a binary operator application, e.g. a + b.
// Only "+" exists today; the operator is kept as a string so new
// operators slot in without a new node shape.
type InfixExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode() {}
func (ie *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left.String(), ie.Operator, ie.Right.String())
}
