package typesystem

import "fmt"

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// TInt represents the integer base type.
type TInt struct{}

func (t TInt) typeNode()      {}
func (t TInt) String() string { return "Int" }

// IntType is the canonical Int instance. Types are immutable, so sharing
// one value is safe.
var IntType = TInt{}

// TFunc represents a function type (e.g. (Int) -> Int).
// Every function takes exactly one parameter; multi-parameter functions
// are curried, so ReturnType may itself be a TFunc.
type TFunc struct {
	Param      Type
	ReturnType Type
}

func (t TFunc) typeNode() {}

func (t TFunc) String() string {
	return fmt.Sprintf("(%s) -> %s", t.Param.String(), t.ReturnType.String())
}

// Equal reports whether two types are structurally equal: Int equals Int,
// and function types are equal iff their parameter and return types are.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case TInt:
		_, ok := b.(TInt)
		return ok
	case TFunc:
		bf, ok := b.(TFunc)
		if !ok {
			return false
		}
		return Equal(a.Param, bf.Param) && Equal(a.ReturnType, bf.ReturnType)
	default:
		return false
	}
}
