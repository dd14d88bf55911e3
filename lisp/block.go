// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "reflect"

// blockFlags are the collector bits carried in every block header.
type blockFlags uint8

const (
	flagClear   blockFlags = 0
	flagMoved   blockFlags = 1 << 0 // forwarded to the to-space
	flagVisited blockFlags = 1 << 1 // this block's own references are forwarded
)

// blockHeader is the common prefix of every heap block: a type tag (which
// duplicates the Value.typ of any reference to it), collector flags, and
// (once moved) the block it was forwarded to. The C ancestor of this
// interpreter reuses the payload-length field to store the forwarding
// address once a block moves; that pointer-aliasing trick doesn't translate
// cleanly to a typed Go slice of distinct struct kinds, so forwarding gets
// its own explicit field here instead — see DESIGN.md. Reading any field of
// a block other than through this header after it is flagMoved is undefined
// by contract, exactly as in the source design.
type blockHeader struct {
	typ     ValueType
	flags   blockFlags
	size    int // approximate header+payload footprint, for heap accounting
	forward ref // valid only when flags&flagMoved != 0
}

func (h *blockHeader) header() *blockHeader { return h }

// approximate per-value and per-header byte costs, used only to keep the
// heap's live-byte accounting (and the page capacity budget) meaningful;
// Go's allocator does not actually pack these types this way.
const (
	headerSize = 16
	valueSize  = 24
)

// pairBlock is the payload of a cons cell: two adjacent values.
type pairBlock struct {
	blockHeader
	car, cdr Value
}

// symbolBlock is an interned, case-folded name with its cached hash.
type symbolBlock struct {
	blockHeader
	hash uint32
	name string // already uppercased at intern time
}

// stringBlock is an uninterned byte string.
type stringBlock struct {
	blockHeader
	s string
}

// lambdaBlock is a closure: a monotonic id (for printing), a parameter
// list, a single core-form body expression, and the captured environment.
type lambdaBlock struct {
	blockHeader
	id   int
	args Value
	body Value
	env  Value
}

// tableBlock is an open hash table whose buckets are ordinary managed pairs,
// so the collector visits them without any special-casing beyond resizing.
type tableBlock struct {
	blockHeader
	count   int
	buckets []Value
}

func newPair(car, cdr Value, h *heap) Value {
	b := &pairBlock{car: car, cdr: cdr}
	b.typ = TypePair
	h.place(b, headerSize+2*valueSize)
	return Value{typ: TypePair, ref: b}
}

func newSymbol(name string, hash uint32, h *heap) Value {
	b := &symbolBlock{hash: hash, name: name}
	b.typ = TypeSymbol
	h.place(b, headerSize+4+len(name)+1)
	return Value{typ: TypeSymbol, ref: b}
}

func newString(s string, h *heap) Value {
	b := &stringBlock{s: s}
	b.typ = TypeString
	h.place(b, headerSize+len(s)+1)
	return Value{typ: TypeString, ref: b}
}

func newLambda(id int, args, body, env Value, h *heap) Value {
	b := &lambdaBlock{id: id, args: args, body: body, env: env}
	b.typ = TypeLambda
	h.place(b, headerSize+8+3*valueSize)
	return Value{typ: TypeLambda, ref: b}
}

func newTable(capacity int, h *heap) Value {
	b := &tableBlock{buckets: make([]Value, capacity)}
	b.typ = TypeTable
	h.place(b, headerSize+8+capacity*valueSize)
	return Value{typ: TypeTable, ref: b}
}

func asPair(v Value) (*pairBlock, bool) {
	b, ok := v.ref.(*pairBlock)
	return b, ok
}

func asSymbol(v Value) (*symbolBlock, bool) {
	b, ok := v.ref.(*symbolBlock)
	return b, ok
}

func asString(v Value) (*stringBlock, bool) {
	b, ok := v.ref.(*stringBlock)
	return b, ok
}

func asLambda(v Value) (*lambdaBlock, bool) {
	b, ok := v.ref.(*lambdaBlock)
	return b, ok
}

func asTable(v Value) (*tableBlock, bool) {
	b, ok := v.ref.(*tableBlock)
	return b, ok
}

func samePrimitive(a, b PrimitiveFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
