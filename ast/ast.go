// Package ast implements the executable syntax tree: each node type
// realizes value.Executable directly and evaluates itself against a
// Closure and a Context, in the tree-walking style spec.md §6 describes
// (an Executable base class, not a separate visitor/interpreter object) —
// grounded on the teacher's ast/expr.go and ast/stmt.go node shapes,
// adapted from the visitor pattern to direct dispatch.
package ast

import (
	"github.com/amrul94/InterpreterForMython/value"
)

// Block runs a sequence of statements in order and yields the value of
// the last one, so an if/else with single-expression arms can still be
// used for its value the way spec.md's Executable contract allows.
type Block struct {
	Stmts []value.Executable
}

func (b *Block) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	var result value.ObjectHolder
	for _, stmt := range b.Stmts {
		r, err := stmt.Execute(closure, ctx)
		if err != nil {
			return value.ObjectHolder{}, err
		}
		result = r
	}
	return result, nil
}

var empty value.ObjectHolder
