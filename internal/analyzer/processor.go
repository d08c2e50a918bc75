package analyzer

import (
	"github.com/tinylam/tinylam/internal/pipeline"
)

type AnalyzerProcessor struct{}

func NewProcessor() *AnalyzerProcessor {
	return &AnalyzerProcessor{}
}

func (ap *AnalyzerProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Core == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	programType, err := Check(nil, ctx.Core)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Type = programType
	return ctx
}
