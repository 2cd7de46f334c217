package value

import "fmt"

// Equal and Less are the two primitives everything else in this file
// derives from, per spec.md §4.5. None equals only None.
func Equal(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	a, b := lhs.Get(), rhs.Get()
	if a == nil || b == nil {
		return a == nil && b == nil, nil
	}

	if cmp, ok := a.(Comparable); ok {
		return cmp.EqualTo(ctx, b)
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare Number and %T", ErrNotComparable, b)
		}
		return av.Value == bv.Value, nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare String and %T", ErrNotComparable, b)
		}
		return av.Value == bv.Value, nil
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare Bool and %T", ErrNotComparable, b)
		}
		return av.Value == bv.Value, nil
	default:
		return false, fmt.Errorf("%w: %T has no equality", ErrNotComparable, a)
	}
}

// Less orders same-primitive pairs by their underlying Go `<`, per
// spec.md §4.5; every other pair is not comparable unless the left
// operand dynamically dispatches via __lt__.
func Less(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	a, b := lhs.Get(), rhs.Get()
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: None does not support ordering", ErrNotComparable)
	}

	if cmp, ok := a.(Comparable); ok {
		return cmp.LessThan(ctx, b)
	}

	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare Number and %T", ErrNotComparable, b)
		}
		return av.Value < bv.Value, nil
	case String:
		bv, ok := b.(String)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare String and %T", ErrNotComparable, b)
		}
		return av.Value < bv.Value, nil
	case Bool:
		bv, ok := b.(Bool)
		if !ok {
			return false, fmt.Errorf("%w: cannot compare Bool and %T", ErrNotComparable, b)
		}
		return !av.Value && bv.Value, nil
	default:
		return false, fmt.Errorf("%w: %T does not support ordering", ErrNotComparable, a)
	}
}

// NotEqual is the straightforward negation of Equal.
func NotEqual(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	eq, err := Equal(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater computes both Less and Equal — deliberately, rather than the
// cheaper `!Less(rhs, lhs)` a symmetric ordering would allow, because
// dunder-dispatched Comparable values need not define a total order.
func Greater(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	lt, err := Less(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	eq, err := Equal(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

// LessOrEqual computes both Less and Equal, same as Greater.
func LessOrEqual(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	lt, err := Less(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	eq, err := Equal(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return lt || eq, nil
}

// GreaterOrEqual computes only Less, unlike Greater and LessOrEqual. This
// asymmetry is intentional and load-bearing: it is inherited unchanged
// from the source design (spec.md §4.5), and a value whose __eq__ and
// __lt__ disagree will observe GreaterOrEqual and LessOrEqual disagreeing
// too. Fixing it would be a behavior change, not a bug fix.
func GreaterOrEqual(ctx Context, lhs, rhs ObjectHolder) (bool, error) {
	lt, err := Less(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
