// Package fixtures decodes surface programs from YAML documents.
//
// Programs stay structured trees — there is no textual lambda syntax to
// parse. A document carries one expression node and, optionally, the
// outcome it should produce:
//
//	program:
//	  app:
//	    - lam: {param: a, type: int, body: {var: a}}
//	    - num: 3
//	expect:
//	  type: Int
//	  value: "3"
//
// Expression nodes are mappings with exactly one of the keys var, num,
// add, app, lam. Types are either the scalar "int" or a mapping
// {from: ..., to: ...}.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/typesystem"
)

// Program represents one fixture document.
type Program struct {
	// Name labels the program in CLI and test output.
	Name string `yaml:"name,omitempty"`

	// Program is the surface expression tree.
	Program *Node `yaml:"program"`

	// Expect optionally pins the outcome, for golden runs.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect describes the outcome a program should produce. Error is
// mutually exclusive with Type/Value.
type Expect struct {
	Type  string `yaml:"type,omitempty"`
	Value string `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// Node is one surface expression in fixture form. Exactly one field
// must be set.
type Node struct {
	Var *string  `yaml:"var,omitempty"`
	Num *int64   `yaml:"num,omitempty"`
	Add []*Node  `yaml:"add,omitempty"`
	App []*Node  `yaml:"app,omitempty"`
	Lam *LamNode `yaml:"lam,omitempty"`
}

// LamNode is the fixture form of a lambda abstraction.
type LamNode struct {
	Param string    `yaml:"param"`
	Type  *TypeNode `yaml:"type"`
	Body  *Node     `yaml:"body"`
}

// TypeNode accepts either the scalar "int" or a {from, to} mapping.
type TypeNode struct {
	From *TypeNode
	To   *TypeNode
	base string
}

func (t *TypeNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Value != "int" {
			return fmt.Errorf("unknown base type %q (only \"int\" exists)", value.Value)
		}
		t.base = value.Value
		return nil
	}

	var fn struct {
		From *TypeNode `yaml:"from"`
		To   *TypeNode `yaml:"to"`
	}
	if err := value.Decode(&fn); err != nil {
		return err
	}
	if fn.From == nil || fn.To == nil {
		return fmt.Errorf("function type needs both \"from\" and \"to\"")
	}
	t.From = fn.From
	t.To = fn.To
	return nil
}

// Load decodes one fixture document.
func Load(data []byte) (*Program, error) {
	var prog Program
	if err := yaml.Unmarshal(data, &prog); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	if prog.Program == nil {
		return nil, fmt.Errorf("fixture has no \"program\" entry")
	}
	return &prog, nil
}

// LoadFile decodes the fixture document at path.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Expression converts the fixture node into a surface tree.
func (n *Node) Expression() (ast.Expression, error) {
	set := 0
	if n.Var != nil {
		set++
	}
	if n.Num != nil {
		set++
	}
	if n.Add != nil {
		set++
	}
	if n.App != nil {
		set++
	}
	if n.Lam != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("expression node needs exactly one of var/num/add/app/lam, got %d", set)
	}

	switch {
	case n.Var != nil:
		return &ast.Var{Name: *n.Var}, nil

	case n.Num != nil:
		return &ast.IntegerLiteral{Value: *n.Num}, nil

	case n.Add != nil:
		left, right, err := n.pair("add", n.Add)
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpression{Operator: "+", Left: left, Right: right}, nil

	case n.App != nil:
		fn, arg, err := n.pair("app", n.App)
		if err != nil {
			return nil, err
		}
		return &ast.App{Function: fn, Argument: arg}, nil

	default:
		if n.Lam.Type == nil {
			return nil, fmt.Errorf("lambda %q has no parameter type", n.Lam.Param)
		}
		if n.Lam.Body == nil {
			return nil, fmt.Errorf("lambda %q has no body", n.Lam.Param)
		}
		paramType, err := n.Lam.Type.Type()
		if err != nil {
			return nil, err
		}
		body, err := n.Lam.Body.Expression()
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{ParamName: n.Lam.Param, ParamType: paramType, Body: body}, nil
	}
}

func (n *Node) pair(key string, nodes []*Node) (ast.Expression, ast.Expression, error) {
	if len(nodes) != 2 {
		return nil, nil, fmt.Errorf("%q needs exactly 2 children, got %d", key, len(nodes))
	}
	left, err := nodes[0].Expression()
	if err != nil {
		return nil, nil, err
	}
	right, err := nodes[1].Expression()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Type converts the fixture type into a typesystem type.
func (t *TypeNode) Type() (typesystem.Type, error) {
	if t.base == "int" {
		return typesystem.IntType, nil
	}
	if t.From == nil || t.To == nil {
		return nil, fmt.Errorf("malformed type node")
	}
	from, err := t.From.Type()
	if err != nil {
		return nil, err
	}
	to, err := t.To.Type()
	if err != nil {
		return nil, err
	}
	return typesystem.TFunc{Param: from, ReturnType: to}, nil
}
