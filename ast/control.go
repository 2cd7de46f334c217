package ast

import "github.com/amrul94/InterpreterForMython/value"

// If runs Then when Cond is truthy, Else otherwise. Else is nil when the
// source had no else clause, in which case a falsy Cond yields None.
type If struct {
	Cond value.Executable
	Then value.Executable
	Else value.Executable
}

func (i If) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	c, err := i.Cond.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	if value.IsTrue(c) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return value.NewHolder(nil), nil
}

// Return evaluates Value (if present) and unwinds the enclosing method
// call via panic/recover, exactly as the teacher's interpreter.go unwinds
// break/continue/return — this is non-local control transfer, not error
// handling, so it is not threaded through the (value.ObjectHolder, error)
// return channel. ClassInstance.Call is the recovery point.
type Return struct {
	Value value.Executable // nil for a bare `return`
}

func (r Return) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	var v value.ObjectHolder
	if r.Value != nil {
		var err error
		v, err = r.Value.Execute(closure, ctx)
		if err != nil {
			return empty, err
		}
	}
	panic(value.ReturnSignal{Value: v})
}
