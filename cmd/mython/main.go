// Command mython runs a Mython source file, or launches an interactive
// REPL when given no arguments. Grounded on the teacher's main.go
// (execFromFile/execPrompt), with the REPL swapped for the Bubble Tea
// front-end in package repl.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amrul94/InterpreterForMython/config"
	"github.com/amrul94/InterpreterForMython/lexer"
	"github.com/amrul94/InterpreterForMython/parser"
	"github.com/amrul94/InterpreterForMython/repl"
	"github.com/amrul94/InterpreterForMython/value"
)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		execFromFile(os.Args[1])
	default:
		fmt.Fprintf(os.Stderr, "Usage: %s [filename]\n", os.Args[0])
		os.Exit(1)
	}
}

func execFromFile(filepath string) {
	source, err := os.ReadFile(filepath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open file %q (%v).\n", filepath, err)
		os.Exit(1)
	}

	lex, err := lexer.New(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := parser.ParseProgram(lex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := prog.Execute(value.Closure{}, stdoutContext{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runREPL() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("cannot load REPL configuration: %v", err)
	}

	if _, err := tea.NewProgram(repl.NewModel(cfg)).Run(); err != nil {
		log.Fatalf("repl: %v", err)
	}
}

// stdoutContext satisfies value.Context for a one-shot file run.
type stdoutContext struct{}

func (stdoutContext) GetOutputStream() io.Writer { return os.Stdout }
