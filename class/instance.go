package class

import (
	"fmt"
	"io"

	"github.com/amrul94/InterpreterForMython/value"
)

// ClassInstance is a live object of a user-defined Class: a bag of fields
// plus a pointer back to the class that supplies its methods. It
// implements value.Object directly and value.Comparable for dunder-based
// equality and ordering, so the comparison protocol in package value never
// needs to know this package exists.
type ClassInstance struct {
	Class  *Class
	Fields value.Closure
}

var (
	_ value.Object     = (*ClassInstance)(nil)
	_ value.Comparable = (*ClassInstance)(nil)
)

// NewInstance constructs a zero-field instance of c.
func NewInstance(c *Class) *ClassInstance {
	return &ClassInstance{Class: c, Fields: make(value.Closure)}
}

// HasMethod reports whether name resolves anywhere on the instance's class
// chain.
func (ci *ClassInstance) HasMethod(name string) bool {
	_, ok := ci.Class.GetMethod(name)
	return ok
}

// GetField reads a field, returning an empty (None) holder if unset —
// fields spring into existence on first assignment, they are never
// declared up front.
func (ci *ClassInstance) GetField(name string) value.ObjectHolder {
	return ci.Fields[name]
}

// SetField assigns a field.
func (ci *ClassInstance) SetField(name string, v value.ObjectHolder) {
	ci.Fields[name] = v
}

// Call resolves name via GetMethod and executes its body with a fresh
// Closure binding "self" to ci and each parameter to the matching
// argument. Returns value.ErrNoSuchMethod, wrapped, if the method does not
// exist anywhere on the class chain.
func (ci *ClassInstance) Call(ctx value.Context, name string, args []value.ObjectHolder) (result value.ObjectHolder, err error) {
	m, ok := ci.Class.GetMethod(name)
	if !ok {
		return value.ObjectHolder{}, fmt.Errorf("%w: %s has no method %q", value.ErrNoSuchMethod, ci.Class.Name, name)
	}
	if len(args) != len(m.Params) {
		return value.ObjectHolder{}, fmt.Errorf("class: %s.%s expects %d argument(s), got %d",
			ci.Class.Name, name, len(m.Params), len(args))
	}

	closure := make(value.Closure, len(m.Params)+1)
	closure["self"] = value.NewHolder(ci)
	for i, p := range m.Params {
		closure[p] = args[i]
	}

	defer func() {
		if r := recover(); r != nil {
			ret, ok := r.(value.ReturnSignal)
			if !ok {
				panic(r)
			}
			result, err = ret.Value, nil
		}
	}()
	return m.Body.Execute(closure, ctx)
}

// Print writes the instance's default representation. Dispatching to a
// user-defined __str__ needs a Context to run the method body, which this
// signature doesn't carry — that dispatch happens one layer up, in the
// print statement's Execute, which calls __str__ itself and prints the
// resulting string. Print here is only the fallback used when no __str__
// is defined, or when a bare ObjectHolder.Print is invoked directly (e.g.
// on the value a __str__ method returned).
func (ci *ClassInstance) Print(w io.Writer) {
	fmt.Fprintf(w, "<%s instance at %p>", ci.Class.Name, ci)
}

// EqualTo implements value.Comparable. If the class defines __eq__, that
// method decides; otherwise two instances are equal only if they are the
// same object (reference identity), matching the C++ source's fallback
// when no dunder is present.
func (ci *ClassInstance) EqualTo(ctx value.Context, other value.Object) (bool, error) {
	if ci.HasMethod("__eq__") {
		result, err := ci.Call(ctx, "__eq__", []value.ObjectHolder{value.NewHolder(other)})
		if err != nil {
			return false, err
		}
		return value.IsTrue(result), nil
	}
	otherInst, ok := other.(*ClassInstance)
	return ok && ci == otherInst, nil
}

// LessThan implements value.Comparable by dispatching to __lt__. Without
// that dunder, instances of this class have no ordering.
func (ci *ClassInstance) LessThan(ctx value.Context, other value.Object) (bool, error) {
	if !ci.HasMethod("__lt__") {
		return false, fmt.Errorf("%w: %s defines no __lt__", value.ErrNotComparable, ci.Class.Name)
	}
	result, err := ci.Call(ctx, "__lt__", []value.ObjectHolder{value.NewHolder(other)})
	if err != nil {
		return false, err
	}
	return value.IsTrue(result), nil
}
