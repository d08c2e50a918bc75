package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/tinylam/tinylam/internal/fixtures"
	"github.com/tinylam/tinylam/internal/prettyprinter"
	"github.com/tinylam/tinylam/pkg/lam"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s run <file.yaml> [file2.yaml...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s examples\n", os.Args[0])
	os.Exit(2)
}

// ANSI markers, suppressed when stdout is not a terminal.
var (
	markOK   = "ok"
	markFail = "error"
)

func initColors() {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		markOK = "\033[32mok\033[0m"
		markFail = "\033[31merror\033[0m"
	}
}

func main() {
	initColors()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "run":
		if len(os.Args) < 3 {
			usage()
		}
		hasErrors := false
		for _, path := range os.Args[2:] {
			if err := runFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
				hasErrors = true
			}
		}
		if hasErrors {
			os.Exit(1)
		}

	case "examples":
		if !runExamples() {
			os.Exit(1)
		}

	default:
		usage()
	}
}

func runFile(path string) error {
	prog, err := fixtures.LoadFile(path)
	if err != nil {
		return err
	}

	expr, err := prog.Program.Expression()
	if err != nil {
		return err
	}

	name := prog.Name
	if name == "" {
		name = prettyprinter.Print(expr)
	}

	result, err := lam.Run(expr)
	if err != nil {
		if prog.Expect != nil && prog.Expect.Error != "" {
			if err.Error() == prog.Expect.Error {
				fmt.Printf("%s  %s: %s (expected)\n", markOK, name, err)
				return nil
			}
			return fmt.Errorf("expected error %q, got %q", prog.Expect.Error, err)
		}
		return err
	}

	if prog.Expect != nil {
		if prog.Expect.Error != "" {
			return fmt.Errorf("expected error %q, program succeeded with %s", prog.Expect.Error, result.Value.Inspect())
		}
		if prog.Expect.Type != "" && prog.Expect.Type != result.Type.String() {
			return fmt.Errorf("expected type %s, got %s", prog.Expect.Type, result.Type.String())
		}
		if prog.Expect.Value != "" && prog.Expect.Value != result.Value.Inspect() {
			return fmt.Errorf("expected value %s, got %s", prog.Expect.Value, result.Value.Inspect())
		}
	}

	fmt.Printf("%s  %s : %s = %s\n", markOK, name, result.Type.String(), result.Value.Inspect())
	return nil
}
