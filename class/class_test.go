package class_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/amrul94/InterpreterForMython/class"
	"github.com/amrul94/InterpreterForMython/value"
)

type fakeContext struct{ out bytes.Buffer }

func (c *fakeContext) GetOutputStream() io.Writer { return &c.out }

// constExecutable always returns the same value, standing in for a method
// body without needing package ast.
type constExecutable struct{ v value.ObjectHolder }

func (c constExecutable) Execute(value.Closure, value.Context) (value.ObjectHolder, error) {
	return c.v, nil
}

// echoExecutable returns whatever is bound to a given name in the
// closure it executes against, letting tests build a method whose result
// depends on its arguments (e.g. an __eq__ that echoes a comparison).
type echoExecutable struct{ name string }

func (e echoExecutable) Execute(closure value.Closure, _ value.Context) (value.ObjectHolder, error) {
	return closure[e.name], nil
}

func TestGetMethodWalksFullParentChain(t *testing.T) {
	grandparent := class.New("Animal", nil)
	grandparent.AddMethod(class.Method{Name: "speak", Body: constExecutable{value.NewHolder(value.String{Value: "..."})}})

	parent := class.New("Dog", grandparent)
	child := class.New("Puppy", parent)

	m, ok := child.GetMethod("speak")
	if !ok {
		t.Fatalf("expected Puppy to resolve speak via Dog -> Animal")
	}
	ctx := &fakeContext{}
	result, err := m.Body.Execute(nil, ctx)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if s, ok := result.Get().(value.String); !ok || s.Value != "..." {
		t.Fatalf("speak() = %v, want String{...}", result)
	}
}

func TestGetMethodPrefersMostDerivedOverride(t *testing.T) {
	parent := class.New("Animal", nil)
	parent.AddMethod(class.Method{Name: "speak", Body: constExecutable{value.NewHolder(value.String{Value: "generic"})}})

	child := class.New("Dog", parent)
	child.AddMethod(class.Method{Name: "speak", Body: constExecutable{value.NewHolder(value.String{Value: "woof"})}})

	m, ok := child.GetMethod("speak")
	if !ok {
		t.Fatalf("expected speak to resolve")
	}
	result, _ := m.Body.Execute(nil, &fakeContext{})
	if s := result.Get().(value.String); s.Value != "woof" {
		t.Fatalf("speak() = %q, want %q (override should win)", s.Value, "woof")
	}
}

func TestGetMethodMissingReturnsFalse(t *testing.T) {
	c := class.New("Empty", nil)
	if _, ok := c.GetMethod("nope"); ok {
		t.Fatalf("expected no method named nope")
	}
}

func TestCallBindsSelfAndParams(t *testing.T) {
	c := class.New("Box", nil)
	c.AddMethod(class.Method{Name: "identity", Params: []string{"x"}, Body: echoExecutable{name: "x"}})

	inst := class.NewInstance(c)
	arg := value.NewHolder(value.Number{Value: 42})
	result, err := inst.Call(&fakeContext{}, "identity", []value.ObjectHolder{arg})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if n := result.Get().(value.Number); n.Value != 42 {
		t.Fatalf("identity(42) = %v, want 42", n.Value)
	}
}

func TestCallUnknownMethodIsNoSuchMethod(t *testing.T) {
	c := class.New("Box", nil)
	inst := class.NewInstance(c)
	_, err := inst.Call(&fakeContext{}, "missing", nil)
	if !errors.Is(err, value.ErrNoSuchMethod) {
		t.Fatalf("Call(missing) error = %v, want ErrNoSuchMethod", err)
	}
}

func TestCallWrongArityIsError(t *testing.T) {
	c := class.New("Box", nil)
	c.AddMethod(class.Method{Name: "needsOne", Params: []string{"x"}, Body: constExecutable{}})
	inst := class.NewInstance(c)
	if _, err := inst.Call(&fakeContext{}, "needsOne", nil); err == nil {
		t.Fatalf("expected arity mismatch error")
	}
}

func TestEqualToWithoutDunderIsIdentity(t *testing.T) {
	c := class.New("Point", nil)
	a := class.NewInstance(c)
	b := class.NewInstance(c)

	ctx := &fakeContext{}
	eq, err := a.EqualTo(ctx, a)
	if err != nil || !eq {
		t.Fatalf("a.EqualTo(a) = %v, %v, want true, nil", eq, err)
	}
	eq, err = a.EqualTo(ctx, b)
	if err != nil || eq {
		t.Fatalf("a.EqualTo(b) = %v, %v, want false, nil", eq, err)
	}
}

func TestEqualToDispatchesToDunder(t *testing.T) {
	c := class.New("AlwaysEqual", nil)
	c.AddMethod(class.Method{
		Name:   "__eq__",
		Params: []string{"other"},
		Body:   constExecutable{value.NewHolder(value.Bool{Value: true})},
	})
	a := class.NewInstance(c)
	b := class.NewInstance(c)

	eq, err := a.EqualTo(&fakeContext{}, b)
	if err != nil || !eq {
		t.Fatalf("a.EqualTo(b) via __eq__ = %v, %v, want true, nil", eq, err)
	}
}

func TestLessThanWithoutDunderIsNotComparable(t *testing.T) {
	c := class.New("Plain", nil)
	a := class.NewInstance(c)
	b := class.NewInstance(c)
	_, err := a.LessThan(&fakeContext{}, b)
	if !errors.Is(err, value.ErrNotComparable) {
		t.Fatalf("LessThan without __lt__ error = %v, want ErrNotComparable", err)
	}
}

func TestFieldsDefaultToNone(t *testing.T) {
	c := class.New("Empty", nil)
	inst := class.NewInstance(c)
	if !inst.GetField("missing").IsNone() {
		t.Fatalf("expected unset field to read as None")
	}
	inst.SetField("x", value.NewHolder(value.Number{Value: 7}))
	if n := inst.GetField("x").Get().(value.Number); n.Value != 7 {
		t.Fatalf("GetField(x) = %v, want 7", n.Value)
	}
}
