// Package analyzer type-checks core trees. The calculus is fully
// annotated, so checking is a single bottom-up pass with no inference:
// each lambda's parameter type is pushed onto a context stack and the
// body's type is computed under it.
package analyzer

import (
	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/diagnostics"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// Check computes the type of expr under context, which holds one type
// per enclosing lambda, innermost last. The first type error wins;
// nothing is accumulated.
func Check(context []typesystem.Type, expr core.Expr) (typesystem.Type, error) {
	switch expr := expr.(type) {
	case *core.IntegerLit:
		return typesystem.IntType, nil

	case *core.Bound:
		// In range whenever the resolver produced the tree; a bad index
		// means the stack discipline broke somewhere upstream.
		i := len(context) - 1 - expr.Depth
		if i < 0 || i >= len(context) {
			return nil, diagnostics.NewInternalError("binding depth %d out of range (%d binders)", expr.Depth, len(context))
		}
		return context[i], nil

	case *core.Lambda:
		inner := append(append([]typesystem.Type{}, context...), expr.ParamType)
		bodyType, err := Check(inner, expr.Body)
		if err != nil {
			return nil, err
		}
		return typesystem.TFunc{Param: expr.ParamType, ReturnType: bodyType}, nil

	case *core.Infix:
		leftType, err := Check(context, expr.Left)
		if err != nil {
			return nil, err
		}
		rightType, err := Check(context, expr.Right)
		if err != nil {
			return nil, err
		}
		// The right operand is tested first. When both operands are
		// wrong the error points at the right one; kept for
		// compatibility with existing diagnostics.
		if !typesystem.Equal(rightType, typesystem.IntType) {
			return nil, diagnostics.NewTypeMismatchError(expr.Right, typesystem.IntType, rightType)
		}
		if !typesystem.Equal(leftType, typesystem.IntType) {
			return nil, diagnostics.NewTypeMismatchError(expr.Left, typesystem.IntType, leftType)
		}
		return typesystem.IntType, nil

	case *core.Apply:
		funType, err := Check(context, expr.Function)
		if err != nil {
			return nil, err
		}
		argType, err := Check(context, expr.Argument)
		if err != nil {
			return nil, err
		}
		fn, ok := funType.(typesystem.TFunc)
		if !ok {
			// The error carries the argument expression, not the
			// function; kept for compatibility with existing
			// diagnostics.
			return nil, diagnostics.NewNotAFunctionError(expr.Argument, funType)
		}
		if !typesystem.Equal(fn.Param, argType) {
			return nil, diagnostics.NewTypeMismatchError(expr.Argument, fn.Param, argType)
		}
		return fn.ReturnType, nil

	default:
		return nil, diagnostics.NewInternalError("unknown core node %T", expr)
	}
}
