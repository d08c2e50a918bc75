// Package lam is the public embedding API for the tinylam pipeline.
// Callers author a surface expression tree (with the constructors in
// this package or internal/ast directly), hand it to Run, and receive
// the program's static type together with its runtime value.
package lam

import (
	"github.com/tinylam/tinylam/internal/analyzer"
	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/diagnostics"
	"github.com/tinylam/tinylam/internal/evaluator"
	"github.com/tinylam/tinylam/internal/pipeline"
	"github.com/tinylam/tinylam/internal/resolver"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// Result carries the outcome of a successful run: the program's static
// type and the value it evaluated to.
type Result struct {
	Type  typesystem.Type
	Value evaluator.Object
}

// Run resolves, type-checks and evaluates program, in that order,
// starting from an empty scope, context and environment. The first
// stage failure is returned unchanged; the stages behind it never run.
func Run(program ast.Expression) (*Result, error) {
	p := pipeline.New(
		resolver.NewProcessor(),
		analyzer.NewProcessor(),
		evaluator.NewProcessor(),
	)

	ctx := p.Run(pipeline.NewContext(program))
	if err := ctx.FirstError(); err != nil {
		return nil, err
	}
	if ctx.Value == nil {
		return nil, diagnostics.NewInternalError("pipeline produced no value")
	}

	return &Result{
		Type:  ctx.Type,
		Value: ctx.Value.(evaluator.Object),
	}, nil
}
