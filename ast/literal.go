package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/value"
)

// Literal evaluates to a fixed, pre-built value — a Number, String, Bool,
// or None constant folded in by the parser.
type Literal struct {
	Value value.ObjectHolder
}

func (l Literal) Execute(_ value.Closure, _ value.Context) (value.ObjectHolder, error) {
	return l.Value, nil
}

// Identifier reads a name out of the current Closure.
type Identifier struct {
	Name string
}

func (id Identifier) Execute(closure value.Closure, _ value.Context) (value.ObjectHolder, error) {
	v, ok := closure[id.Name]
	if !ok {
		return empty, fmt.Errorf("mython: name %q is not defined", id.Name)
	}
	return v, nil
}
