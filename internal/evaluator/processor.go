package evaluator

import (
	"github.com/tinylam/tinylam/internal/pipeline"
)

type EvaluatorProcessor struct{}

func NewProcessor() *EvaluatorProcessor {
	return &EvaluatorProcessor{}
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Core == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	value, err := Eval(nil, ctx.Core)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Value = value
	return ctx
}
