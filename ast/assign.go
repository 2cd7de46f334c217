package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/class"
	"github.com/amrul94/InterpreterForMython/value"
)

// Assign binds Name to the result of evaluating Value in the current
// Closure, creating it if it did not already exist.
type Assign struct {
	Name  string
	Value value.Executable
}

func (a Assign) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	v, err := a.Value.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	closure[a.Name] = v
	return v, nil
}

// FieldGet reads a field off an instance, e.g. `self.x`.
type FieldGet struct {
	Object value.Executable
	Field  string
}

func (f FieldGet) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	objH, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	inst, ok := objH.Get().(*class.ClassInstance)
	if !ok {
		return empty, fmt.Errorf("mython: %s has no field %q", describe(objH), f.Field)
	}
	return inst.GetField(f.Field), nil
}

// FieldAssign writes a field on an instance, e.g. `self.x = 1`. Fields are
// not declared ahead of time: the first assignment creates them.
type FieldAssign struct {
	Object value.Executable
	Field  string
	Value  value.Executable
}

func (f FieldAssign) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	objH, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	inst, ok := objH.Get().(*class.ClassInstance)
	if !ok {
		return empty, fmt.Errorf("mython: cannot assign field %q on %s", f.Field, describe(objH))
	}
	v, err := f.Value.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	inst.SetField(f.Field, v)
	return v, nil
}

func describe(h value.ObjectHolder) string {
	if h.IsNone() {
		return "None"
	}
	return fmt.Sprintf("%T", h.Get())
}
