// Package prettyprinter renders surface trees as lambda notation with
// minimal parentheses, for CLI output and diagnostics.
package prettyprinter

import (
	"bytes"

	"github.com/tinylam/tinylam/internal/ast"
)

// Operator precedence (higher = binds tighter).
var operatorPrecedence = map[string]int{
	"+": 2,
}

const (
	precLambda = 1 // lambda body extends as far right as possible
	precApp    = 3 // application binds tightest
	precAtom   = 4
)

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return precAtom
}

type Printer struct {
	buf bytes.Buffer
}

func New() *Printer {
	return &Printer{}
}

// Print renders expr as source-like notation.
func Print(expr ast.Expression) string {
	p := New()
	p.printExpr(expr, 0)
	return p.buf.String()
}

// printExpr writes expr, wrapping it in parentheses when its own
// precedence is lower than what the surrounding position requires.
func (p *Printer) printExpr(expr ast.Expression, minPrec int) {
	switch expr := expr.(type) {
	case *ast.Var:
		p.buf.WriteString(expr.Name)

	case *ast.IntegerLiteral:
		p.buf.WriteString(expr.String())

	case *ast.Lambda:
		p.parenthesized(precLambda < minPrec, func() {
			p.buf.WriteString("\\")
			p.buf.WriteString(expr.ParamName)
			p.buf.WriteString(": ")
			p.buf.WriteString(expr.ParamType.String())
			p.buf.WriteString(" -> ")
			p.printExpr(expr.Body, precLambda)
		})

	case *ast.InfixExpression:
		prec := getPrecedence(expr.Operator)
		p.parenthesized(prec < minPrec, func() {
			p.printExpr(expr.Left, prec)
			p.buf.WriteString(" ")
			p.buf.WriteString(expr.Operator)
			p.buf.WriteString(" ")
			// Left-associative: the right child needs one notch more.
			p.printExpr(expr.Right, prec+1)
		})

	case *ast.App:
		p.parenthesized(precApp < minPrec, func() {
			p.printExpr(expr.Function, precApp)
			p.buf.WriteString(" ")
			p.printExpr(expr.Argument, precApp+1)
		})

	default:
		p.buf.WriteString(expr.String())
	}
}

func (p *Printer) parenthesized(wrap bool, body func()) {
	if wrap {
		p.buf.WriteString("(")
	}
	body()
	if wrap {
		p.buf.WriteString(")")
	}
}
