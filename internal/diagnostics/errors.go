// Package diagnostics defines the error taxonomy shared by the
// pipeline stages. Every error is constructed at the point of failure
// and propagated unchanged to the caller; no stage recovers from
// another stage's error and no stage accumulates more than one.
package diagnostics

import (
	"fmt"

	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// ErrorCode identifies the diagnostic category.
type ErrorCode string

const (
	// ErrR001: a variable name has no enclosing binder.
	ErrR001 ErrorCode = "R001"
	// ErrT001: an expression has a different type than its context requires.
	ErrT001 ErrorCode = "T001"
	// ErrT002: the function position of an application is not a function.
	ErrT002 ErrorCode = "T002"
	// ErrE001: an evaluator invariant was violated. This indicates a bug
	// in an earlier stage, never a fault in the user's program.
	ErrE001 ErrorCode = "E001"
)

// Diagnostic is implemented by all pipeline errors.
type Diagnostic interface {
	error
	Code() ErrorCode
}

// UnboundError indicates a free variable: the name is not introduced by
// any enclosing lambda.
type UnboundError struct {
	Name string
}

func NewUnboundError(name string) *UnboundError {
	return &UnboundError{Name: name}
}

func (e *UnboundError) Code() ErrorCode { return ErrR001 }

func (e *UnboundError) Error() string {
	return fmt.Sprintf("unbound variable: %s", e.Name)
}

// TypeMismatchError indicates an expression whose type differs from the
// type its context requires. Expr is the offending sub-expression.
type TypeMismatchError struct {
	Expr     core.Expr
	Expected typesystem.Type
	Actual   typesystem.Type
}

func NewTypeMismatchError(expr core.Expr, expected, actual typesystem.Type) *TypeMismatchError {
	return &TypeMismatchError{Expr: expr, Expected: expected, Actual: actual}
}

func (e *TypeMismatchError) Code() ErrorCode { return ErrT001 }

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s",
		e.Expr.String(), e.Expected.String(), e.Actual.String())
}

// NotAFunctionError indicates an application whose function position has
// a non-function type. Expr carries the argument sub-expression.
type NotAFunctionError struct {
	Expr   core.Expr
	Actual typesystem.Type
}

func NewNotAFunctionError(expr core.Expr, actual typesystem.Type) *NotAFunctionError {
	return &NotAFunctionError{Expr: expr, Actual: actual}
}

func (e *NotAFunctionError) Code() ErrorCode { return ErrT002 }

func (e *NotAFunctionError) Error() string {
	return fmt.Sprintf("cannot apply non-function type %s (argument %s)",
		e.Actual.String(), e.Expr.String())
}

// InternalError reports a broken stage invariant, e.g. a binding-depth
// index past the end of the environment or applying a non-closure after
// type checking claimed success. User programs cannot trigger it.
type InternalError struct {
	Message string
}

func NewInternalError(format string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}

func (e *InternalError) Code() ErrorCode { return ErrE001 }

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}
