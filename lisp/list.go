// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "strings"

// Cons allocates a new pair.
func (ctx *Context) Cons(car, cdr Value) Value { return newPair(car, cdr, ctx.heap) }

// Car returns the first element of a pair, or Null for anything else.
func Car(v Value) Value {
	if p, ok := asPair(v); ok {
		return p.car
	}
	return Null()
}

// Cdr returns the rest of a pair, or Null for anything else.
func Cdr(v Value) Value {
	if p, ok := asPair(v); ok {
		return p.cdr
	}
	return Null()
}

// SetCar mutates a pair's car in place.
func SetCar(v, car Value) {
	if p, ok := asPair(v); ok {
		p.car = car
	}
}

// SetCdr mutates a pair's cdr in place.
func SetCdr(v, cdr Value) { setCdr(v, cdr) }

func setCdr(v, cdr Value) {
	if p, ok := asPair(v); ok {
		p.cdr = cdr
	}
}

// backAppend grows a list by appending item at back, updating both ends;
// it is the building block every list-construction helper below uses so
// that lists are always built front-to-back in a single pass.
func (ctx *Context) backAppend(front, back *Value, item Value) {
	next := ctx.Cons(item, Null())
	if back.IsNull() {
		*back = next
		*front = next
	} else {
		setCdr(*back, next)
		*back = next
	}
}

// AtIndex returns the i'th element of a pair-list, or Null if the list is
// shorter than i.
func AtIndex(v Value, i int) Value {
	for i > 0 {
		if v.Type() != TypePair {
			return Null()
		}
		v = Cdr(v)
		i--
	}
	return Car(v)
}

// Nav is a chained car/cdr navigator: the path "CADR" means
// (car (cdr (... v))), read innermost-letter-first as in Scheme's cxxxr
// family. An invalid path (not starting with C, not ending in R, or
// containing letters other than A/D) returns Null.
func Nav(v Value, path string) Value {
	path = strings.ToUpper(path)
	if len(path) < 2 || path[0] != 'C' || path[len(path)-1] != 'R' {
		return Null()
	}
	ops := path[1 : len(path)-1]
	for i := len(ops) - 1; i >= 0; i-- {
		switch ops[i] {
		case 'A':
			v = Car(v)
		case 'D':
			v = Cdr(v)
		default:
			return Null()
		}
	}
	return v
}

// Length counts the elements of a pair-list (0 for Null, and for any
// non-pair, non-null value encountered mid-list the count stops there).
func Length(v Value) int {
	n := 0
	for !v.IsNull() {
		n++
		v = Cdr(v)
	}
	return n
}

// MakeList builds a list of n copies of x.
func (ctx *Context) MakeList(x Value, n int) Value {
	front, back := Null(), Null()
	for i := 0; i < n; i++ {
		ctx.backAppend(&front, &back, x)
	}
	return front
}

// MakeListV builds a list from explicit arguments, stopping at the first
// Null argument (so Null cannot itself be stored as a non-final element
// through this constructor — use Cons directly for that).
func (ctx *Context) MakeListV(items ...Value) Value {
	front, back := Null(), Null()
	for _, it := range items {
		if it.IsNull() {
			break
		}
		ctx.backAppend(&front, &back, it)
	}
	return front
}

// ReverseInPlace destructively reverses a pair-list by rewriting cdrs, and
// returns the new head.
func ReverseInPlace(v Value) Value {
	prev := Null()
	for v.Type() == TypePair {
		p, _ := asPair(v)
		next := p.cdr
		p.cdr = prev
		prev = v
		v = next
	}
	return prev
}

// Assoc returns the first element of v whose car is Eq to key, searching a
// list of pairs (as a bucket chain or an alist).
func Assoc(v, key Value) Value {
	for !v.IsNull() {
		pair := Car(v)
		if pb, ok := asPair(pair); ok && Eq(pb.car, key) {
			return pair
		}
		v = Cdr(v)
	}
	return Null()
}

// Append concatenates l and l2. l must be a pair (or Null); the source
// interpreter this is grounded on deliberately does not validate l2, so a
// non-pair l2 becomes a dotted tail rather than an error — preserved here
// per spec.md's documented Open Question resolution (SPEC_FULL.md §11).
func (ctx *Context) Append(l, l2 Value) (Value, ErrorCode) {
	if l.IsNull() {
		return l2, ErrNone
	}
	if l.Type() != TypePair {
		return Null(), ErrBadArg
	}
	tail := ctx.Cons(Car(l), Null())
	start := tail
	l = Cdr(l)
	for !l.IsNull() {
		cell := ctx.Cons(Car(l), Null())
		setCdr(tail, cell)
		tail = cell
		l = Cdr(l)
	}
	setCdr(tail, l2)
	return start, ErrNone
}
