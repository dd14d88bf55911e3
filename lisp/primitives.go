// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"fmt"
	"os"
)

// standardPrimitives returns the default function library installed by
// NewInterpreter: list manipulation, arithmetic, comparison, and minimal
// I/O. Names are matched case-insensitively through MakeSymbol's folding.
func standardPrimitives() map[string]PrimitiveFunc {
	return map[string]PrimitiveFunc{
		"CONS":      primCons,
		"CAR":       primCar,
		"CDR":       primCdr,
		"NAV":       primNav,
		"EQ?":       primEq,
		"NULL?":     primIsNull,
		"LIST":      primList,
		"APPEND":    primAppend,
		"MAP":       primMap,
		"NTH":       primNth,
		"LENGTH":    primLength,
		"REVERSE!":  primReverseInPlace,
		"ASSOC":     primAssoc,
		"DISPLAY":   primDisplay,
		"NEWLINE":   primNewline,
		"ASSERT":    primAssert,
		"READ-PATH": primReadPath,
		"EXPAND":    primExpand,
		"COLLECT!":  primCollect,
		"=":         primNumEq,
		"+":         primAdd,
		"-":         primSub,
		"*":         primMul,
		"/":         primDiv,
		"<":         primLess,
		">":         primGreater,
		"<=":        primLessEqual,
		">=":        primGreaterEqual,
		"EVEN?":     primEven,
		"ODD?":      primOdd,
	}
}

func asBool(b bool) Value {
	if b {
		return MakeInt(1)
	}
	return MakeInt(0)
}

func primCons(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	return ctx.Cons(AtIndex(args, 0), AtIndex(args, 1)), ErrNone
}

func primCar(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return Car(AtIndex(args, 0)), ErrNone
}

func primCdr(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return Cdr(AtIndex(args, 0)), ErrNone
}

func primNav(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	path := AtIndex(args, 1)
	if path.Type() != TypeSymbol {
		return Null(), ErrBadArg
	}
	return Nav(AtIndex(args, 0), Symbol(path)), ErrNone
}

func primEq(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	return asBool(Eq(AtIndex(args, 0), AtIndex(args, 1))), ErrNone
}

func primIsNull(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return asBool(AtIndex(args, 0).IsNull()), ErrNone
}

func primList(args Value, ctx *Context) (Value, ErrorCode) {
	return args, ErrNone
}

// primAppend folds ctx.Append across every argument after the first,
// matching func_append's variadic fold over its argument list
// (original_source/lisp.c:2045).
func primAppend(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	l := AtIndex(args, 0)
	var err ErrorCode
	for it := Cdr(args); !it.IsNull(); it = Cdr(it) {
		l, err = ctx.Append(l, Car(it))
		if err != ErrNone {
			return Null(), err
		}
	}
	return l, ErrNone
}

// primMap applies op to every element of each of one or more lists (one
// list after another, each element on its own), by building the call
// expression (op elt) fresh for each
// step and evaluating it against the global environment — not by invoking
// op's own closure environment directly. With one input list the result is
// a single list; with n the result is a list of n result-lists, one per
// input list, in argument order.
func primMap(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	op := Car(args)
	if op.Type() != TypeFunc && op.Type() != TypeLambda {
		return Null(), ErrBadArg
	}

	lists := Cdr(args)
	n := Length(lists)
	if n == 0 {
		return Null(), ErrNone
	}

	resultLists := ctx.MakeList(Null(), n)
	resultIt := resultLists

	for it := lists; !it.IsNull(); it = Cdr(it) {
		list := Car(it)
		front, back := Null(), Null()

		for !list.IsNull() {
			if list.Type() != TypePair {
				return Null(), ErrBadArg
			}
			expr := ctx.Cons(op, ctx.Cons(Car(list), Null()))
			result, err := ctx.Eval(expr, ctx.GlobalEnv())
			if err != ErrNone {
				return Null(), err
			}
			ctx.backAppend(&front, &back, result)
			list = Cdr(list)
		}

		SetCar(resultIt, front)
		resultIt = Cdr(resultIt)
	}

	if n == 1 {
		return Car(resultLists), ErrNone
	}
	return resultLists, ErrNone
}

func primNth(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	n := AtIndex(args, 0)
	if n.Type() != TypeInt {
		return Null(), ErrBadArg
	}
	return AtIndex(AtIndex(args, 1), n.Int()), ErrNone
}

func primLength(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return MakeInt(Length(AtIndex(args, 0))), ErrNone
}

func primReverseInPlace(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return ReverseInPlace(AtIndex(args, 0)), ErrNone
}

func primAssoc(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	return Assoc(AtIndex(args, 1), AtIndex(args, 0)), ErrNone
}

func primDisplay(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	Print(AtIndex(args, 0))
	return Null(), ErrNone
}

func primNewline(args Value, ctx *Context) (Value, ErrorCode) {
	fmt.Println()
	return Null(), ErrNone
}

// primAssert reports a failed assertion (expander rewrites the call to
// carry the quoted source alongside the evaluated test) to stderr and halts
// the pipeline via ErrBadArg; a true test is a no-op.
func primAssert(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 2 {
		return Null(), ErrBadArg
	}
	test := AtIndex(args, 0)
	if test.Int() != 0 {
		return Null(), ErrNone
	}
	fmt.Fprint(os.Stderr, "assertion failed: ")
	Fprint(os.Stderr, AtIndex(args, 1))
	fmt.Fprintln(os.Stderr)
	return Null(), ErrBadArg
}

func primReadPath(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	path := AtIndex(args, 0)
	if path.Type() != TypeString {
		return Null(), ErrBadArg
	}
	return ctx.ReadPath(String(path))
}

func primExpand(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 1 {
		return Null(), ErrBadArg
	}
	return ctx.Expand(AtIndex(args, 0))
}

// primCollect forces a full collection with no extra root, relying on
// Collect's own preservation of the global environment and symbol table to
// keep every still-bound definition alive.
func primCollect(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) != 0 {
		return Null(), ErrBadArg
	}
	ctx.Collect(Null())
	return Null(), ErrNone
}

// numericArgs extracts the operands of a binary numeric comparison. The
// int/float mode is decided by the first operand's type alone, matching
// func_less/func_greater's lisp_int(accum) vs. lisp_float(accum) branch
// (original_source/lisp.c:2240): a float second operand compared against an
// int first operand is itself coerced to int, it never promotes the
// comparison to float.
func numericArgs(args Value) (a, b Value, isFloat bool, ok bool) {
	if Length(args) != 2 {
		return Value{}, Value{}, false, false
	}
	a, b = AtIndex(args, 0), AtIndex(args, 1)
	if a.Type() != TypeInt && a.Type() != TypeFloat {
		return a, b, false, false
	}
	if b.Type() != TypeInt && b.Type() != TypeFloat {
		return a, b, false, false
	}
	return a, b, a.Type() == TypeFloat, true
}

// foldArith walks args left to right, applying intOp/floatOp to accumulate
// against the first operand. The arithmetic mode — int or float — is fixed
// once, by the first operand's type, and held for the whole fold: this is
// func_add/func_sub/func_mult/func_divide's accum.int_val/accum.float_val
// branch, which never switches modes partway through a call
// (original_source/lisp.c:2139).
func foldArith(args Value, intOp, floatOp func(accum, operand float64) (float64, ErrorCode)) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	first := AtIndex(args, 0)
	isFloat := first.Type() == TypeFloat
	if !isFloat && first.Type() != TypeInt {
		return Null(), ErrBadArg
	}

	accum := first.Float()
	for it := Cdr(args); !it.IsNull(); it = Cdr(it) {
		operand := Car(it)
		if operand.Type() != TypeInt && operand.Type() != TypeFloat {
			return Null(), ErrBadArg
		}
		op := intOp
		if isFloat {
			op = floatOp
		}
		value := operand.Float()
		if !isFloat {
			value = float64(operand.Int())
		}
		var err ErrorCode
		accum, err = op(accum, value)
		if err != ErrNone {
			return Null(), err
		}
	}

	if isFloat {
		return MakeFloat(accum), ErrNone
	}
	return MakeInt(int(accum)), ErrNone
}

// primNumEq implements =, comparing every argument's integer value against
// the first — func_equals always compares via lisp_int regardless of
// operand type, never lisp_float (original_source/lisp.c:2028).
func primNumEq(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	first := AtIndex(args, 0)
	if first.Type() != TypeInt && first.Type() != TypeFloat {
		return Null(), ErrBadArg
	}
	for it := Cdr(args); !it.IsNull(); it = Cdr(it) {
		operand := Car(it)
		if operand.Type() != TypeInt && operand.Type() != TypeFloat {
			return Null(), ErrBadArg
		}
		if operand.Int() != first.Int() {
			return asBool(false), ErrNone
		}
	}
	return asBool(true), ErrNone
}

func primAdd(args Value, ctx *Context) (Value, ErrorCode) {
	add := func(accum, operand float64) (float64, ErrorCode) { return accum + operand, ErrNone }
	return foldArith(args, add, add)
}

func primSub(args Value, ctx *Context) (Value, ErrorCode) {
	sub := func(accum, operand float64) (float64, ErrorCode) { return accum - operand, ErrNone }
	return foldArith(args, sub, sub)
}

func primMul(args Value, ctx *Context) (Value, ErrorCode) {
	mul := func(accum, operand float64) (float64, ErrorCode) { return accum * operand, ErrNone }
	return foldArith(args, mul, mul)
}

func primDiv(args Value, ctx *Context) (Value, ErrorCode) {
	intDiv := func(accum, operand float64) (float64, ErrorCode) {
		if int(operand) == 0 {
			return 0, ErrBadArg
		}
		return float64(int(accum) / int(operand)), ErrNone
	}
	floatDiv := func(accum, operand float64) (float64, ErrorCode) {
		if operand == 0 {
			return 0, ErrBadArg
		}
		return accum / operand, ErrNone
	}
	return foldArith(args, intDiv, floatDiv)
}

func primLess(args Value, ctx *Context) (Value, ErrorCode) {
	a, b, isFloat, ok := numericArgs(args)
	if !ok {
		return Null(), ErrBadArg
	}
	if isFloat {
		return asBool(a.Float() < b.Float()), ErrNone
	}
	return asBool(a.Int() < b.Int()), ErrNone
}

func primGreater(args Value, ctx *Context) (Value, ErrorCode) {
	a, b, isFloat, ok := numericArgs(args)
	if !ok {
		return Null(), ErrBadArg
	}
	if isFloat {
		return asBool(a.Float() > b.Float()), ErrNone
	}
	return asBool(a.Int() > b.Int()), ErrNone
}

func primLessEqual(args Value, ctx *Context) (Value, ErrorCode) {
	a, b, isFloat, ok := numericArgs(args)
	if !ok {
		return Null(), ErrBadArg
	}
	if isFloat {
		return asBool(a.Float() <= b.Float()), ErrNone
	}
	return asBool(a.Int() <= b.Int()), ErrNone
}

func primGreaterEqual(args Value, ctx *Context) (Value, ErrorCode) {
	a, b, isFloat, ok := numericArgs(args)
	if !ok {
		return Null(), ErrBadArg
	}
	if isFloat {
		return asBool(a.Float() >= b.Float()), ErrNone
	}
	return asBool(a.Int() >= b.Int()), ErrNone
}

// primEven folds func_even's variadic test (original_source/lisp.c:2292)
// across every argument: false as soon as any one is odd.
func primEven(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	for it := args; !it.IsNull(); it = Cdr(it) {
		n := Car(it)
		if n.Type() != TypeInt {
			return Null(), ErrBadArg
		}
		if n.Int()%2 != 0 {
			return asBool(false), ErrNone
		}
	}
	return asBool(true), ErrNone
}

// primOdd folds func_odd's variadic test (original_source/lisp.c:2302)
// across every argument: false as soon as any one is even.
func primOdd(args Value, ctx *Context) (Value, ErrorCode) {
	if Length(args) < 1 {
		return Null(), ErrBadArg
	}
	for it := args; !it.IsNull(); it = Cdr(it) {
		n := Car(it)
		if n.Type() != TypeInt {
			return Null(), ErrBadArg
		}
		if n.Int()%2 == 0 {
			return asBool(false), ErrNone
		}
	}
	return asBool(true), ErrNone
}
