package prettyprinter

import (
	"testing"

	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/typesystem"
)

func TestPrint(t *testing.T) {
	intT := typesystem.IntType
	identity := &ast.Lambda{ParamName: "a", ParamType: intT, Body: &ast.Var{Name: "a"}}

	tests := []struct {
		name string
		expr ast.Expression
		want string
	}{
		{
			name: "variable",
			expr: &ast.Var{Name: "x"},
			want: "x",
		},
		{
			name: "literal",
			expr: &ast.IntegerLiteral{Value: 42},
			want: "42",
		},
		{
			name: "lambda without parens at top level",
			expr: identity,
			want: "\\a: Int -> a",
		},
		{
			name: "application without parens",
			expr: &ast.App{Function: &ast.Var{Name: "f"}, Argument: &ast.Var{Name: "x"}},
			want: "f x",
		},
		{
			name: "nested application is left associative",
			expr: &ast.App{
				Function: &ast.App{Function: &ast.Var{Name: "f"}, Argument: &ast.Var{Name: "x"}},
				Argument: &ast.Var{Name: "y"}},
			want: "f x y",
		},
		{
			name: "right-nested application keeps parens",
			expr: &ast.App{
				Function: &ast.Var{Name: "f"},
				Argument: &ast.App{Function: &ast.Var{Name: "g"}, Argument: &ast.Var{Name: "x"}}},
			want: "f (g x)",
		},
		{
			name: "lambda in function position needs parens",
			expr: &ast.App{Function: identity, Argument: &ast.IntegerLiteral{Value: 3}},
			want: "(\\a: Int -> a) 3",
		},
		{
			name: "addition binds looser than application",
			expr: &ast.InfixExpression{Operator: "+",
				Left:  &ast.App{Function: &ast.Var{Name: "f"}, Argument: &ast.Var{Name: "x"}},
				Right: &ast.Var{Name: "y"}},
			want: "f x + y",
		},
		{
			name: "addition is left associative",
			expr: &ast.InfixExpression{Operator: "+",
				Left: &ast.InfixExpression{Operator: "+",
					Left:  &ast.IntegerLiteral{Value: 1},
					Right: &ast.IntegerLiteral{Value: 2}},
				Right: &ast.IntegerLiteral{Value: 3}},
			want: "1 + 2 + 3",
		},
		{
			name: "right-nested addition keeps parens",
			expr: &ast.InfixExpression{Operator: "+",
				Left: &ast.IntegerLiteral{Value: 1},
				Right: &ast.InfixExpression{Operator: "+",
					Left:  &ast.IntegerLiteral{Value: 2},
					Right: &ast.IntegerLiteral{Value: 3}}},
			want: "1 + (2 + 3)",
		},
		{
			name: "lambda body extends right",
			expr: &ast.Lambda{ParamName: "a", ParamType: intT,
				Body: &ast.InfixExpression{Operator: "+",
					Left:  &ast.Var{Name: "a"},
					Right: &ast.IntegerLiteral{Value: 1}}},
			want: "\\a: Int -> a + 1",
		},
		{
			name: "lambda operand needs parens",
			expr: &ast.InfixExpression{Operator: "+",
				Left:  identity,
				Right: identity},
			want: "(\\a: Int -> a) + (\\a: Int -> a)",
		},
		{
			name: "higher order parameter type",
			expr: &ast.Lambda{ParamName: "f",
				ParamType: typesystem.TFunc{Param: intT, ReturnType: intT},
				Body:      &ast.App{Function: &ast.Var{Name: "f"}, Argument: &ast.IntegerLiteral{Value: 1}}},
			want: "\\f: (Int) -> Int -> f 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.expr); got != tt.want {
				t.Errorf("Print() = %s, want %s", got, tt.want)
			}
		})
	}
}
