// Package evaluator runs core trees that already passed type checking.
// It performs no type validation of its own: a shape mismatch here is a
// bug in an earlier stage and surfaces as an internal error, never as a
// user-facing diagnostic.
package evaluator

import (
	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/diagnostics"
)

// Eval computes the value of expr under env, which holds one value per
// enclosing lambda, innermost last. Same stack convention as the
// analyzer's context.
func Eval(env []Object, expr core.Expr) (Object, error) {
	switch expr := expr.(type) {
	case *core.IntegerLit:
		return &Integer{Value: expr.Value}, nil

	case *core.Bound:
		i := len(env) - 1 - expr.Depth
		if i < 0 || i >= len(env) {
			return nil, diagnostics.NewInternalError("binding depth %d out of range (%d values)", expr.Depth, len(env))
		}
		return env[i], nil

	case *core.Lambda:
		// Capture the environment as of now. env is never mutated after
		// this point, so the closure can alias it directly.
		return &Closure{Env: env, Body: expr.Body}, nil

	case *core.Infix:
		left, err := Eval(env, expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := Eval(env, expr.Right)
		if err != nil {
			return nil, err
		}
		leftInt, ok := left.(*Integer)
		if !ok {
			return nil, diagnostics.NewInternalError("operator %s applied to %s", expr.Op.String(), left.Type())
		}
		rightInt, ok := right.(*Integer)
		if !ok {
			return nil, diagnostics.NewInternalError("operator %s applied to %s", expr.Op.String(), right.Type())
		}
		fn, ok := core.OpFuncs[expr.Op]
		if !ok {
			return nil, diagnostics.NewInternalError("no semantics for operator %s", expr.Op.String())
		}
		return &Integer{Value: fn(leftInt.Value, rightInt.Value)}, nil

	case *core.Apply:
		fn, err := Eval(env, expr.Function)
		if err != nil {
			return nil, err
		}
		closure, ok := fn.(*Closure)
		if !ok {
			return nil, diagnostics.NewInternalError("cannot apply %s", fn.Type())
		}
		arg, err := Eval(env, expr.Argument)
		if err != nil {
			return nil, err
		}
		// The new frame extends the closure's captured environment, not
		// the caller's. append must not share the captured backing
		// array with sibling applications, hence the fresh copy.
		frame := append(append([]Object{}, closure.Env...), arg)
		return Eval(frame, closure.Body)

	default:
		return nil, diagnostics.NewInternalError("unknown core node %T", expr)
	}
}
