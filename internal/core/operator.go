package core

// Operator identifies a binary integer operation. Keeping a tag in the
// tree (rather than a function value) keeps core trees comparable and
// printable; the semantic function is looked up in OpFuncs at
// evaluation time.
type Operator int

const (
	OpAdd Operator = iota
)

var opNames = map[Operator]string{
	OpAdd: "+",
}

func (op Operator) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "?"
}

// OpFuncs maps each operator to its integer semantics.
var OpFuncs = map[Operator]func(int64, int64) int64{
	OpAdd: func(a, b int64) int64 { return a + b },
}

// LookupOperator maps a surface operator lexeme to its kind.
func LookupOperator(lexeme string) (Operator, bool) {
	for op, name := range opNames {
		if name == lexeme {
			return op, true
		}
	}
	return 0, false
}
