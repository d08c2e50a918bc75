package resolver

import (
	"github.com/tinylam/tinylam/internal/pipeline"
)

type ResolverProcessor struct{}

func NewProcessor() *ResolverProcessor {
	return &ResolverProcessor{}
}

func (rp *ResolverProcessor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Surface == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	resolved, err := Resolve(nil, ctx.Surface)
	if err != nil {
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}
	ctx.Core = resolved
	return ctx
}
