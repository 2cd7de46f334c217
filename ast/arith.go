package ast

import (
	"fmt"

	"github.com/amrul94/InterpreterForMython/value"
)

// BinOp names a binary operator. Comparisons are included here rather
// than split into their own node type, since every one of them shares the
// same evaluate-both-sides-then-dispatch shape.
type BinOp uint8

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNotEq
	OpLess
	OpGreater
	OpLessOrEq
	OpGreaterOrEq
)

// BinaryOp evaluates Left and Right, then combines them per Op.
type BinaryOp struct {
	Op          BinOp
	Left, Right value.Executable
}

func (b BinaryOp) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	l, err := b.Left.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}
	r, err := b.Right.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}

	switch b.Op {
	case OpEq:
		return boolResult(value.Equal(ctx, l, r))
	case OpNotEq:
		return boolResult(value.NotEqual(ctx, l, r))
	case OpLess:
		return boolResult(value.Less(ctx, l, r))
	case OpGreater:
		return boolResult(value.Greater(ctx, l, r))
	case OpLessOrEq:
		return boolResult(value.LessOrEqual(ctx, l, r))
	case OpGreaterOrEq:
		return boolResult(value.GreaterOrEqual(ctx, l, r))
	case OpAdd:
		return addValues(l, r)
	case OpSub, OpMul, OpDiv:
		return arithValues(b.Op, l, r)
	default:
		return empty, fmt.Errorf("ast: unknown binary operator %d", b.Op)
	}
}

func boolResult(ok bool, err error) (value.ObjectHolder, error) {
	if err != nil {
		return empty, err
	}
	return value.NewHolder(value.Bool{Value: ok}), nil
}

func addValues(l, r value.ObjectHolder) (value.ObjectHolder, error) {
	switch lv := l.Get().(type) {
	case value.Number:
		rv, ok := r.Get().(value.Number)
		if !ok {
			return empty, fmt.Errorf("mython: unsupported operand types for +: Number and %s", describe(r))
		}
		return value.NewHolder(value.Number{Value: lv.Value + rv.Value}), nil
	case value.String:
		rv, ok := r.Get().(value.String)
		if !ok {
			return empty, fmt.Errorf("mython: unsupported operand types for +: String and %s", describe(r))
		}
		return value.NewHolder(value.String{Value: lv.Value + rv.Value}), nil
	default:
		return empty, fmt.Errorf("mython: unsupported operand type for +: %s", describe(l))
	}
}

func arithValues(op BinOp, l, r value.ObjectHolder) (value.ObjectHolder, error) {
	lv, ok := l.Get().(value.Number)
	if !ok {
		return empty, fmt.Errorf("mython: unsupported operand type: %s", describe(l))
	}
	rv, ok := r.Get().(value.Number)
	if !ok {
		return empty, fmt.Errorf("mython: unsupported operand type: %s", describe(r))
	}

	switch op {
	case OpSub:
		return value.NewHolder(value.Number{Value: lv.Value - rv.Value}), nil
	case OpMul:
		return value.NewHolder(value.Number{Value: lv.Value * rv.Value}), nil
	case OpDiv:
		if rv.Value == 0 {
			return empty, fmt.Errorf("mython: division by zero")
		}
		return value.NewHolder(value.Number{Value: lv.Value / rv.Value}), nil
	default:
		return empty, fmt.Errorf("ast: unknown arithmetic operator %d", op)
	}
}

// UnOp names a unary operator.
type UnOp uint8

const (
	UnNeg UnOp = iota
	UnPos
	UnNot
)

// UnaryOp evaluates Operand, then applies Op.
type UnaryOp struct {
	Op      UnOp
	Operand value.Executable
}

func (u UnaryOp) Execute(closure value.Closure, ctx value.Context) (value.ObjectHolder, error) {
	v, err := u.Operand.Execute(closure, ctx)
	if err != nil {
		return empty, err
	}

	if u.Op == UnNot {
		return value.NewHolder(value.Bool{Value: !value.IsTrue(v)}), nil
	}

	n, ok := v.Get().(value.Number)
	if !ok {
		return empty, fmt.Errorf("mython: unsupported operand type for unary operator: %s", describe(v))
	}
	if u.Op == UnNeg {
		return value.NewHolder(value.Number{Value: -n.Value}), nil
	}
	return value.NewHolder(n), nil
}
