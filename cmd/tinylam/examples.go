package main

import (
	"fmt"

	"github.com/tinylam/tinylam/internal/ast"
	"github.com/tinylam/tinylam/internal/prettyprinter"
	"github.com/tinylam/tinylam/pkg/lam"
)

type example struct {
	program   ast.Expression
	wantError bool
}

// Smoke-test programs, runnable without fixture files.
var examples = []example{
	{
		// (\a: Int -> (\b: Int -> a) 2 + a) 3 = 6
		program: lam.App(
			lam.Lam("a", lam.IntT(),
				lam.Add(
					lam.App(lam.Lam("b", lam.IntT(), lam.Var("a")), lam.Int(2)),
					lam.Var("a"),
				),
			),
			lam.Int(3),
		),
	},
	{
		// (\f: (Int) -> Int -> f 1) (\a: Int -> a) = 1
		program: lam.App(
			lam.Lam("f", lam.FuncT(lam.IntT(), lam.IntT()),
				lam.App(lam.Var("f"), lam.Int(1)),
			),
			lam.Lam("a", lam.IntT(), lam.Var("a")),
		),
	},
	{
		// (\f: (Int) -> Int -> f 1) ((\a: Int -> \b: Int -> a) 10) = 10
		program: lam.App(
			lam.Lam("f", lam.FuncT(lam.IntT(), lam.IntT()),
				lam.App(lam.Var("f"), lam.Int(1)),
			),
			lam.App(
				lam.Lam("a", lam.IntT(), lam.Lam("b", lam.IntT(), lam.Var("a"))),
				lam.Int(10),
			),
		),
	},
	{
		// free variable c
		program:   lam.Lam("a", lam.IntT(), lam.Lam("b", lam.IntT(), lam.Var("c"))),
		wantError: true,
	},
	{
		// applying a literal
		program:   lam.App(lam.Int(3), lam.Int(3)),
		wantError: true,
	},
	{
		// adding two functions
		program: lam.Add(
			lam.Lam("a", lam.IntT(), lam.Var("a")),
			lam.Lam("a", lam.IntT(), lam.Var("a")),
		),
		wantError: true,
	},
}

func runExamples() bool {
	ok := true
	for _, ex := range examples {
		source := prettyprinter.Print(ex.program)
		result, err := lam.Run(ex.program)

		switch {
		case err != nil && ex.wantError:
			fmt.Printf("%s  %s\n    %s (expected)\n", markOK, source, err)
		case err != nil:
			fmt.Printf("%s  %s\n    %s\n", markFail, source, err)
			ok = false
		case ex.wantError:
			fmt.Printf("%s  %s\n    succeeded, expected a failure\n", markFail, source)
			ok = false
		default:
			fmt.Printf("%s  %s : %s = %s\n", markOK, source, result.Type.String(), result.Value.Inspect())
		}
	}
	return ok
}
