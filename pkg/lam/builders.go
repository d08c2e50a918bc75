package lam

import (
	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// Tree constructors so callers can author programs without importing
// the internal packages.

func Var(name string) ast.Expression {
	return &ast.Var{Name: name}
}

func Int(value int64) ast.Expression {
	return &ast.IntegerLiteral{Value: value}
}

func App(fn, arg ast.Expression) ast.Expression {
	return &ast.App{Function: fn, Argument: arg}
}

func Lam(paramName string, paramType typesystem.Type, body ast.Expression) ast.Expression {
	return &ast.Lambda{ParamName: paramName, ParamType: paramType, Body: body}
}

func Add(left, right ast.Expression) ast.Expression {
	return &ast.InfixExpression{Operator: "+", Left: left, Right: right}
}

// IntT is the integer type.
func IntT() typesystem.Type {
	return typesystem.IntType
}

// FuncT is the function type from param to ret.
func FuncT(param, ret typesystem.Type) typesystem.Type {
	return typesystem.TFunc{Param: param, ReturnType: ret}
}
