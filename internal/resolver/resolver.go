// Package resolver turns surface syntax into the nameless core
// representation: every named variable reference becomes a binding-depth
// index counting enclosing lambdas outward from the point of use.
package resolver

import (
	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/diagnostics"
)

// Resolve converts expr into a core tree. scope holds the names of the
// enclosing binders, innermost last. Callers resolving a whole program
// pass nil.
func Resolve(scope []string, expr ast.Expression) (core.Expr, error) {
	switch expr := expr.(type) {
	case *ast.IntegerLiteral:
		return &core.IntegerLit{Value: expr.Value}, nil

	case *ast.Var:
		// Innermost binder wins, so scan from the end. A nested lambda
		// reusing an outer name shadows it.
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i] == expr.Name {
				return &core.Bound{Depth: len(scope) - 1 - i}, nil
			}
		}
		return nil, diagnostics.NewUnboundError(expr.Name)

	case *ast.Lambda:
		// The extended scope lives only inside this call; siblings never
		// observe the push.
		inner := append(append([]string{}, scope...), expr.ParamName)
		body, err := Resolve(inner, expr.Body)
		if err != nil {
			return nil, err
		}
		return &core.Lambda{ParamType: expr.ParamType, Body: body}, nil

	case *ast.App:
		fn, err := Resolve(scope, expr.Function)
		if err != nil {
			return nil, err
		}
		arg, err := Resolve(scope, expr.Argument)
		if err != nil {
			return nil, err
		}
		return &core.Apply{Function: fn, Argument: arg}, nil

	case *ast.InfixExpression:
		op, ok := core.LookupOperator(expr.Operator)
		if !ok {
			return nil, diagnostics.NewInternalError("unknown operator %q", expr.Operator)
		}
		left, err := Resolve(scope, expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := Resolve(scope, expr.Right)
		if err != nil {
			return nil, err
		}
		return &core.Infix{Op: op, Left: left, Right: right}, nil

	default:
		return nil, diagnostics.NewInternalError("unknown surface node %T", expr)
	}
}
