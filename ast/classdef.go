package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/class"
	"github.com/amrul94/InterpreterForMython/value"
)

// MethodDecl is one method inside a ClassDef, carrying its own body as a
// value.Executable (typically an *ast.Block) so classdef.go never needs
// to know the concrete node types that make up a method.
type MethodDecl struct {
	Name   string
	Params []string
	Body   value.Executable
}

// ClassDef builds a *class.Class from its declaration and binds it under
// Name in the enclosing Closure, resolving ParentName (if any) from a
// class already bound there. This is how single inheritance is wired at
// the source level: `class Dog(Animal):` looks up "Animal" at the point
// ClassDef executes.
type ClassDef struct {
	Name       string
	ParentName string // "" if the class has no explicit superclass
	Methods    []MethodDecl
}

func (cd ClassDef) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	var parent *class.Class
	if cd.ParentName != "" {
		ph, ok := closure[cd.ParentName]
		if !ok {
			return empty, fmt.Errorf("mython: base class %q is not defined", cd.ParentName)
		}
		p, ok := ph.Get().(*class.Class)
		if !ok {
			return empty, fmt.Errorf("mython: %q is not a class", cd.ParentName)
		}
		parent = p
	}

	c := class.New(cd.Name, parent)
	for _, m := range cd.Methods {
		c.AddMethod(class.Method{Name: m.Name, Params: m.Params, Body: m.Body})
	}

	h := value.NewHolder(c)
	closure[cd.Name] = h
	return h, nil
}
