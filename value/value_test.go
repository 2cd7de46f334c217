package value_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/amrul94/InterpreterForMython/value"
)

type fakeContext struct {
	out bytes.Buffer
}

func (c *fakeContext) GetOutputStream() io.Writer {
	return &c.out
}

var _ value.Context = (*fakeContext)(nil)

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		h    value.ObjectHolder
		want bool
	}{
		{"none", value.NewHolder(nil), false},
		{"false bool", value.NewHolder(value.Bool{Value: false}), false},
		{"true bool", value.NewHolder(value.Bool{Value: true}), true},
		{"zero number", value.NewHolder(value.Number{Value: 0}), false},
		{"nonzero number", value.NewHolder(value.Number{Value: 1}), true},
		{"empty string", value.NewHolder(value.String{Value: ""}), false},
		{"nonempty string", value.NewHolder(value.String{Value: "x"}), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := value.IsTrue(c.h); got != c.want {
				t.Errorf("IsTrue(%v) = %v, want %v", c.h, got, c.want)
			}
		})
	}
}

func TestEqualPrimitives(t *testing.T) {
	ctx := &fakeContext{}
	eq, err := value.Equal(ctx,
		value.NewHolder(value.Number{Value: 3}),
		value.NewHolder(value.Number{Value: 3}))
	if err != nil || !eq {
		t.Fatalf("Equal(3, 3) = %v, %v", eq, err)
	}

	_, err = value.Equal(ctx,
		value.NewHolder(value.Number{Value: 3}),
		value.NewHolder(value.String{Value: "3"}))
	if !errors.Is(err, value.ErrNotComparable) {
		t.Fatalf("Equal(3, \"3\") error = %v, want ErrNotComparable", err)
	}

	eq, err = value.Equal(ctx, value.NewHolder(nil), value.NewHolder(nil))
	if err != nil || !eq {
		t.Fatalf("Equal(None, None) = %v, %v, want true, nil", eq, err)
	}
}

func TestLessOrdersBoolsFalseBeforeTrue(t *testing.T) {
	ctx := &fakeContext{}
	lt, err := value.Less(ctx,
		value.NewHolder(value.Bool{Value: false}),
		value.NewHolder(value.Bool{Value: true}))
	if err != nil || !lt {
		t.Fatalf("Less(False, True) = %v, %v, want true, nil", lt, err)
	}

	lt, err = value.Less(ctx,
		value.NewHolder(value.Bool{Value: true}),
		value.NewHolder(value.Bool{Value: false}))
	if err != nil || lt {
		t.Fatalf("Less(True, False) = %v, %v, want false, nil", lt, err)
	}
}

func TestLessRejectsIncomparableTypes(t *testing.T) {
	ctx := &fakeContext{}
	_, err := value.Less(ctx,
		value.NewHolder(value.Number{Value: 1}),
		value.NewHolder(value.String{Value: "1"}))
	if !errors.Is(err, value.ErrNotComparable) {
		t.Fatalf("Less(1, \"1\") error = %v, want ErrNotComparable", err)
	}
}

func TestGreaterUsesBothLessAndEqual(t *testing.T) {
	ctx := &fakeContext{}
	a := value.NewHolder(value.Number{Value: 5})
	b := value.NewHolder(value.Number{Value: 5})

	gt, err := value.Greater(ctx, a, b)
	if err != nil || gt {
		t.Fatalf("Greater(5, 5) = %v, %v, want false, nil", gt, err)
	}

	ge, err := value.GreaterOrEqual(ctx, a, b)
	if err != nil || !ge {
		t.Fatalf("GreaterOrEqual(5, 5) = %v, %v, want true, nil", ge, err)
	}
}

func TestNotEqual(t *testing.T) {
	ctx := &fakeContext{}
	ne, err := value.NotEqual(ctx,
		value.NewHolder(value.Number{Value: 1}),
		value.NewHolder(value.Number{Value: 2}))
	if err != nil || !ne {
		t.Fatalf("NotEqual(1, 2) = %v, %v, want true, nil", ne, err)
	}
}
