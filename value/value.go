// Package value implements the runtime value system: the Object interface,
// its primitive implementations, the ObjectHolder wrapper that plays the
// role of the C++ source's shared_ptr, and the six-function comparison
// protocol.
package value

import (
	"fmt"
	"io"
)

// Object is anything that can live inside a Closure or be printed. Unlike
// the teacher's value.Value, which is a closed marker interface over a
// fixed primitive set, Object also covers ClassInstance and Class values
// from package class — the two packages agree on this interface rather
// than class depending on value's concrete types.
type Object interface {
	// Print writes the value's textual representation to w.
	Print(w io.Writer)
}

// ObjectHolder is a reference to an Object. In the C++ source this
// distinguished Own (refcount participates) from Share (a non-owning
// alias); under Go's garbage collector both collapse to holding the same
// pointer-shaped value, so NewHolder is the only constructor. A nil holder
// models the language's None.
type ObjectHolder struct {
	obj Object
}

// NewHolder wraps obj. Passing nil produces a holder equivalent to None.
func NewHolder(obj Object) ObjectHolder {
	return ObjectHolder{obj: obj}
}

// Get returns the held object, or nil if this holder is empty (None).
func (h ObjectHolder) Get() Object {
	return h.obj
}

// IsNone reports whether the holder carries no object.
func (h ObjectHolder) IsNone() bool {
	return h.obj == nil
}

// MustGet returns the held object and panics if the holder is empty. Use
// only where None was already ruled out by an earlier IsNone/IsTrue check;
// this is the module's one NullDereference-shaped invariant panic.
func (h ObjectHolder) MustGet() Object {
	if h.obj == nil {
		panic("value: dereferenced an empty ObjectHolder (None)")
	}
	return h.obj
}

// Print writes "None" for an empty holder, or delegates to the held
// object otherwise.
func (h ObjectHolder) Print(w io.Writer) {
	if h.obj == nil {
		fmt.Fprint(w, "None")
		return
	}
	h.obj.Print(w)
}

// Closure is the flat, map-based variable environment the executable AST
// reads and writes. Every scope (module-level, method-body) is one
// Closure; there is no chained/parent-pointer environment, matching
// spec.md's data model rather than the teacher's slot-based LocalEnv.
type Closure map[string]ObjectHolder

// Context carries everything an Executable needs beyond its Closure: where
// `print` writes to. Kept as an interface, per spec.md §6, so tests can
// substitute an in-memory buffer for os.Stdout.
type Context interface {
	GetOutputStream() io.Writer
}

// Number is a signed integer value. Mython has no floating point.
type Number struct {
	Value int
}

func (n Number) Print(w io.Writer) { fmt.Fprintf(w, "%d", n.Value) }

// String is a Mython string value.
type String struct {
	Value string
}

func (s String) Print(w io.Writer) { fmt.Fprint(w, s.Value) }

// Bool is a Mython boolean value.
type Bool struct {
	Value bool
}

func (b Bool) Print(w io.Writer) {
	if b.Value {
		fmt.Fprint(w, "True")
	} else {
		fmt.Fprint(w, "False")
	}
}

// IsTrue implements the language's truthiness rule: None and a false Bool
// are falsy, a zero Number and an empty String are falsy, and everything
// else — including any ClassInstance or Class — is false too, per
// spec.md §3.
func IsTrue(h ObjectHolder) bool {
	obj := h.Get()
	switch v := obj.(type) {
	case nil:
		return false
	case Bool:
		return v.Value
	case Number:
		return v.Value != 0
	case String:
		return v.Value != ""
	default:
		return false
	}
}
