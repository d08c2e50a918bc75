package core

import (
	"fmt"

	"github.com/tinylam/tinylam/internal/typesystem"
)

// Expr is the base interface for nameless (binding-depth indexed) nodes.
// A core tree is produced once by the resolver and then shared read-only
// by the analyzer and the evaluator.
type Expr interface {
	exprNode()
	String() string
}

// Bound is a variable reference by binding depth: Depth counts enclosing
// lambdas outward from the point of use, 0 being the innermost binder.
// Successful resolution guarantees Depth < number of enclosing lambdas.
type Bound struct {
	Depth int
}

func (b *Bound) exprNode()      {}
func (b *Bound) String() string { return fmt.Sprintf("#%d", b.Depth) }

// Apply applies a function expression to an argument expression.
type Apply struct {
	Function Expr
	Argument Expr
}

func (a *Apply) exprNode() {}
func (a *Apply) String() string {
	return fmt.Sprintf("(%s %s)", a.Function.String(), a.Argument.String())
}

// Lambda is a nameless abstraction. The parameter name is gone; only its
// declared type survives for the analyzer.
type Lambda struct {
	ParamType typesystem.Type
	Body      Expr
}

func (l *Lambda) exprNode() {}
func (l *Lambda) String() string {
	return fmt.Sprintf("(λ: %s. %s)", l.ParamType.String(), l.Body.String())
}

// IntegerLit is an integer constant.
type IntegerLit struct {
	Value int64
}

func (il *IntegerLit) exprNode()      {}
func (il *IntegerLit) String() string { return fmt.Sprintf("%d", il.Value) }

// Infix is a binary integer operation identified by an Operator kind.
type Infix struct {
	Op    Operator
	Left  Expr
	Right Expr
}

func (i *Infix) exprNode() {}
func (i *Infix) String() string {
	return fmt.Sprintf("(%s %s %s)", i.Left.String(), i.Op.String(), i.Right.String())
}
