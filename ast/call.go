package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/class"
	"github.com/amrul94/InterpreterForMython/value"
)

// MethodCall evaluates Receiver, then calls Method on it with the
// evaluated Args — `obj.method(a, b)`.
type MethodCall struct {
	Receiver value.Executable
	Method   string
	Args     []value.Executable
}

func (m MethodCall) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	recvH, err := m.Receiver.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	inst, ok := recvH.Get().(*class.ClassInstance)
	if !ok {
		return empty, fmt.Errorf("mython: %s has no method %q", describe(recvH), m.Method)
	}

	args, err := evalArgs(closure, ctx, m.Args)
	if err != nil {
		return empty, err
	}
	return inst.Call(ctx, m.Method, args)
}

// Construct evaluates `ClassName(args...)`: builds a fresh instance and,
// if the class defines __init__, runs it against the new instance before
// returning it.
type Construct struct {
	ClassName string
	Args      []value.Executable
}

func (c Construct) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	ch, ok := closure[c.ClassName]
	if !ok {
		return empty, fmt.Errorf("mython: name %q is not defined", c.ClassName)
	}
	cls, ok := ch.Get().(*class.Class)
	if !ok {
		return empty, fmt.Errorf("mython: %q is not a class", c.ClassName)
	}

	args, err := evalArgs(closure, ctx, c.Args)
	if err != nil {
		return empty, err
	}

	inst := class.NewInstance(cls)
	if inst.HasMethod("__init__") {
		if _, err := inst.Call(ctx, "__init__", args); err != nil {
			return empty, err
		}
	}
	return value.NewHolder(inst), nil
}

func evalArgs(closure value.Closure, ctx value.Context, exprs []value.Executable) ([]value.ObjectHolder, error) {
	args := make([]value.ObjectHolder, len(exprs))
	for i, e := range exprs {
		v, err := e.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
