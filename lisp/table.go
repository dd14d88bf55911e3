// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "strings"

// defaultUserTableCapacity and defaultSymbolTableCapacity are the initial
// bucket counts spec.md fixes for, respectively, an environment frame and
// the process-local symbol interner.
const (
	defaultUserTableCapacity   = 256
	defaultSymbolTableCapacity = 512
	lambdaFrameCapacity        = 13
)

// MakeTable allocates a hash table with the given bucket capacity. Bucket
// chains are ordinary managed pairs, so the table needs no special
// collector support beyond the resize-on-scavenge rule in Collect.
func (ctx *Context) MakeTable(capacity int) Value {
	return newTable(capacity, ctx.heap)
}

// TableSet replaces the value bound to symbol if present, else prepends a
// new (symbol . value) pair to the front of its bucket chain.
func (ctx *Context) TableSet(table, symbol, value Value) {
	tb, ok := asTable(table)
	if !ok {
		return
	}
	sb, ok := asSymbol(symbol)
	if !ok {
		return
	}
	index := int(sb.hash) % len(tb.buckets)
	pair := assocByHash(tb.buckets[index], symbol)
	if pair.IsNull() {
		entry := newPair(symbol, value, ctx.heap)
		tb.buckets[index] = newPair(entry, tb.buckets[index], ctx.heap)
		tb.count++
	} else {
		setCdr(pair, value)
	}
}

// TableGet returns the (symbol . value) pair bound to symbol, or Null.
func (ctx *Context) TableGet(table, symbol Value) Value {
	tb, ok := asTable(table)
	if !ok {
		return Null()
	}
	sb, ok := asSymbol(symbol)
	if !ok {
		return Null()
	}
	index := int(sb.hash) % len(tb.buckets)
	return assocByHash(tb.buckets[index], symbol)
}

// TableAddFuncs registers a batch of host primitives into table under the
// given (case-insensitive, folded at intern time) names.
func (ctx *Context) TableAddFuncs(table Value, funcs map[string]PrimitiveFunc) {
	for name, fn := range funcs {
		ctx.TableSet(table, ctx.MakeSymbol(name), MakeFunc(fn))
	}
}

// assocByHash walks a bucket chain (a list of (symbol . value) pairs)
// looking for key by pointer identity, which is valid because all symbols
// are interned.
func assocByHash(chain, key Value) Value {
	for !chain.IsNull() {
		entry, _ := asPair(chain)
		pair := entry.car
		pb, _ := asPair(pair)
		if Eq(pb.car, key) {
			return pair
		}
		chain = entry.cdr
	}
	return Null()
}

// tableGetByName looks a bucket chain up by case-insensitive string compare
// against a not-yet-interned name; used only by the symbol interner, which
// cannot hash-compare against an existing Value symbol because none may
// exist yet.
func tableGetByName(table Value, name string, hash uint32) Value {
	tb, ok := asTable(table)
	if !ok {
		return Null()
	}
	index := int(hash) % len(tb.buckets)
	it := tb.buckets[index]
	for !it.IsNull() {
		entry, _ := asPair(it)
		pair := entry.car
		pb, _ := asPair(pair)
		sb, _ := asSymbol(pb.car)
		if strings.EqualFold(sb.name, name) {
			return pair
		}
		it = entry.cdr
	}
	return Null()
}
