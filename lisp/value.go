// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// ValueType discriminates the variants of a Value. It duplicates the tag
// carried in a heap block's header; keeping the two in sync is an invariant
// enforced inside this package (the block constructors in block.go and the
// collector's forwarding in gc.go) — callers never set either directly.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeInt
	TypeFloat
	TypeSymbol
	TypeString
	TypePair
	TypeLambda
	TypeTable
	TypeFunc
)

var typeNames = [...]string{
	TypeNull:   "NULL",
	TypeInt:    "INT",
	TypeFloat:  "FLOAT",
	TypeSymbol: "SYMBOL",
	TypeString: "STRING",
	TypePair:   "PAIR",
	TypeLambda: "LAMBDA",
	TypeTable:  "TABLE",
	TypeFunc:   "PROCEDURE",
}

func (t ValueType) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// PrimitiveFunc is the signature a host registers a primitive with. Setting
// the returned ErrorCode to anything other than ErrNone unwinds the
// evaluator back to its entry point; the returned Value is then discarded.
type PrimitiveFunc func(args Value, ctx *Context) (Value, ErrorCode)

// Value is a small tagged union. Scalars (null, int, float, func) carry
// their payload inline and are never visited by the collector. Heap variants
// (symbol, string, pair, lambda, table) carry a reference into the active
// semispace; that reference is forwarded by Collect and must not be held
// across a call to it.
type Value struct {
	typ ValueType
	i   int64
	f   float64
	fn  PrimitiveFunc
	ref ref
}

// ref is implemented by every heap-block payload type (pairBlock,
// symbolBlock, stringBlock, lambdaBlock, tableBlock).
type ref interface {
	header() *blockHeader
}

// Null returns the empty-list / unspecified-value constant.
func Null() Value { return Value{typ: TypeNull} }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.typ == TypeNull }

// Type returns v's discriminant.
func (v Value) Type() ValueType { return v.typ }

// Eq reports pointer-identity equality, the contract `eq?` relies on:
// symbols compare equal iff interned to the same block, and every other
// heap reference compares equal iff it is literally the same block.
func Eq(a, b Value) bool {
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeNull:
		return true
	case TypeInt:
		return a.i == b.i
	case TypeFloat:
		return a.f == b.f
	case TypeFunc:
		return samePrimitive(a.fn, b.fn)
	default:
		return a.ref == b.ref
	}
}

// MakeInt returns an integer value.
func MakeInt(n int) Value { return Value{typ: TypeInt, i: int64(n)} }

// Int coerces v to an integer; floats truncate toward zero.
func (v Value) Int() int {
	if v.typ == TypeFloat {
		return int(v.f)
	}
	return int(v.i)
}

// MakeFloat returns a floating-point value.
func MakeFloat(x float64) Value { return Value{typ: TypeFloat, f: x} }

// Float coerces v to a float; integers convert exactly (within range).
func (v Value) Float() float64 {
	if v.typ == TypeInt {
		return float64(v.i)
	}
	return v.f
}

// MakeFunc wraps a host primitive as a first-class, by-value func Value.
func MakeFunc(fn PrimitiveFunc) Value { return Value{typ: TypeFunc, fn: fn} }

// Primitive returns the underlying host function and whether v held one.
func (v Value) Primitive() (PrimitiveFunc, bool) {
	if v.typ != TypeFunc {
		return nil, false
	}
	return v.fn, true
}
