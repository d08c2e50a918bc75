package pipeline

import (
	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// Value is the part of the evaluator's object interface the pipeline
// needs to carry. Declared here (rather than importing the evaluator)
// so stage packages can import pipeline without a cycle.
type Value interface {
	Inspect() string
}

// Context flows through the pipeline, accumulating each stage's output.
type Context struct {
	Surface ast.Expression  // input program
	Core    core.Expr       // set by the resolver
	Type    typesystem.Type // set by the analyzer
	Value   Value           // set by the evaluator

	Errors []error
}

// NewContext creates a context for one program.
func NewContext(program ast.Expression) *Context {
	return &Context{Surface: program}
}

// FirstError returns the first recorded error, or nil.
func (c *Context) FirstError() error {
	if len(c.Errors) > 0 {
		return c.Errors[0]
	}
	return nil
}

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, stopping after the first stage that
// records an error. Later stages assume their predecessors succeeded,
// so there is nothing useful to collect past a failure.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if len(ctx.Errors) > 0 {
			break
		}
	}
	return ctx
}
