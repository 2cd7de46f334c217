package ast

import "github.com/amrul94/InterpreterForMython/value"

// And short-circuits: if Left is falsy its value is the result, otherwise
// the result is Right's value — Python's `and`, not a Bool-coercing `&&`.
type And struct {
	Left, Right value.Executable
}

func (a And) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	l, err := a.Left.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	if !value.IsTrue(l) {
		return l, nil
	}
	return a.Right.Execute(closure, ctx)
}

// Or short-circuits the other way: Left's value wins if truthy.
type Or struct {
	Left, Right value.Executable
}

func (o Or) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	l, err := o.Left.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	if value.IsTrue(l) {
		return l, nil
	}
	return o.Right.Execute(closure, ctx)
}
