package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/class"
	"github.com/amrul94/InterpreterForMython/value"
)

// Print evaluates each argument, space-separates them, and writes a
// trailing newline to ctx's output stream — Python's print statement, not
// the C-style single-value print the teacher's Lox implements.
type Print struct {
	Args []value.Executable
}

func (p Print) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	w := ctx.GetOutputStream()
	for i, arg := range p.Args {
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return empty, err
		}
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if err := printOne(ctx, v); err != nil {
			return empty, err
		}
	}
	fmt.Fprintln(w)
	return value.NewHolder(nil), nil
}

// printOne dispatches to a user-defined __str__ before falling back to
// the value's own Print, since __str__ needs a Context to run and
// value.Object.Print does not carry one.
func printOne(ctx value.Context, h value.ObjectHolder) error {
	if inst, ok := h.Get().(*class.ClassInstance); ok && inst.HasMethod("__str__") {
		result, err := inst.Call(ctx, "__str__", nil)
		if err != nil {
			return err
		}
		result.Print(ctx.GetOutputStream())
		return nil
	}
	h.Print(ctx.GetOutputStream())
	return nil
}
