package resolver

import (
	"testing"

	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/core"
	"github.com/tinylam/tinylam/internal/diagnostics"
	"github.com/tinylam/tinylam/internal/typesystem"
)

func TestResolveDepths(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expression
		want string // nameless rendering of the core tree
	}{
		{
			name: "literal",
			expr: &ast.IntegerLiteral{Value: 42},
			want: "42",
		},
		{
			name: "identity",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType, Body: &ast.Var{Name: "a"}},
			want: "(λ: Int. #0)",
		},
		{
			name: "outer reference crosses one binder",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType,
				Body: &ast.Lambda{ParamName: "b", ParamType: typesystem.IntType, Body: &ast.Var{Name: "a"}}},
			want: "(λ: Int. (λ: Int. #1))",
		},
		{
			name: "shadowing binds innermost",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType,
				Body: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType, Body: &ast.Var{Name: "a"}}},
			want: "(λ: Int. (λ: Int. #0))",
		},
		{
			name: "application children share the outer scope",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType,
				Body: &ast.App{Function: &ast.Var{Name: "a"}, Argument: &ast.Var{Name: "a"}}},
			want: "(λ: Int. (#0 #0))",
		},
		{
			name: "addition under two binders",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType,
				Body: &ast.Lambda{ParamName: "b", ParamType: typesystem.IntType,
					Body: &ast.InfixExpression{Operator: "+", Left: &ast.Var{Name: "a"}, Right: &ast.Var{Name: "b"}}}},
			want: "(λ: Int. (λ: Int. (#1 + #0)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := Resolve(nil, tt.expr)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if resolved.String() != tt.want {
				t.Errorf("Resolve() = %s, want %s", resolved.String(), tt.want)
			}
		})
	}
}

func TestResolveUnbound(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expression
		wantName string
	}{
		{
			name:     "bare free variable",
			expr:     &ast.Var{Name: "x"},
			wantName: "x",
		},
		{
			name: "free variable under binders for other names",
			expr: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType,
				Body: &ast.Lambda{ParamName: "b", ParamType: typesystem.IntType, Body: &ast.Var{Name: "c"}}},
			wantName: "c",
		},
		{
			name: "name not visible outside its lambda",
			expr: &ast.App{
				Function: &ast.Lambda{ParamName: "a", ParamType: typesystem.IntType, Body: &ast.Var{Name: "a"}},
				Argument: &ast.Var{Name: "a"},
			},
			wantName: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(nil, tt.expr)
			if err == nil {
				t.Fatalf("Resolve() succeeded, want unbound error for %q", tt.wantName)
			}
			unbound, ok := err.(*diagnostics.UnboundError)
			if !ok {
				t.Fatalf("Resolve() error = %T, want *diagnostics.UnboundError", err)
			}
			if unbound.Name != tt.wantName {
				t.Errorf("unbound name = %q, want %q", unbound.Name, tt.wantName)
			}
		})
	}
}

func TestResolveLeftErrorWins(t *testing.T) {
	// Both operands are unbound; the left one is reported.
	expr := &ast.InfixExpression{
		Operator: "+",
		Left:     &ast.Var{Name: "l"},
		Right:    &ast.Var{Name: "r"},
	}

	_, err := Resolve(nil, expr)
	unbound, ok := err.(*diagnostics.UnboundError)
	if !ok {
		t.Fatalf("Resolve() error = %T, want *diagnostics.UnboundError", err)
	}
	if unbound.Name != "l" {
		t.Errorf("reported name = %q, want %q (left operand first)", unbound.Name, "l")
	}
}

func TestResolveScopeNotMutated(t *testing.T) {
	// The scope slice passed in must be untouched after resolving a
	// lambda; the extension belongs to the recursive call alone.
	scope := make([]string, 1, 4)
	scope[0] = "x"

	expr := &ast.Lambda{ParamName: "y", ParamType: typesystem.IntType, Body: &ast.Var{Name: "x"}}
	resolved, err := Resolve(scope, expr)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	lambda, ok := resolved.(*core.Lambda)
	if !ok {
		t.Fatalf("Resolve() = %T, want *core.Lambda", resolved)
	}
	bound, ok := lambda.Body.(*core.Bound)
	if !ok {
		t.Fatalf("lambda body = %T, want *core.Bound", lambda.Body)
	}
	if bound.Depth != 1 {
		t.Errorf("depth = %d, want 1", bound.Depth)
	}

	if len(scope) != 1 || scope[0] != "x" {
		t.Errorf("scope mutated: %v", scope)
	}
}
