// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lisp implements an embeddable interpreter for a small,
// case-insensitive Lisp dialect: a tagged value representation over a
// copying two-space collector, a streaming reader/expander front end, and a
// trampolined evaluator with proper tail calls for if, begin, and lambda
// application.
//
// A Context owns every piece of mutable state — both semispaces, the
// symbol table, and the global environment — and is never shared between
// goroutines; there is no process-global state anywhere in this package.
package lisp

// Context is the single mutable handle through which a host drives the
// interpreter: it owns the heap (and the collector's spare to-space), the
// symbol interner, and the global environment. A Context must not be used
// concurrently from more than one goroutine.
type Context struct {
	heap   *heap
	toHeap *heap

	symbolTable Value
	globalEnv   Value

	lambdaCounter int
}

// NewReader returns a Context with no primitives installed, suitable for
// tools that only need to parse and inspect source — reading and expanding
// never require the global environment to hold anything.
func NewReader() *Context {
	ctx := &Context{
		heap:   newHeap(),
		toHeap: newHeap(),
	}
	ctx.symbolTable = ctx.MakeTable(defaultSymbolTableCapacity)
	ctx.globalEnv = Null()
	return ctx
}

// NewInterpreter returns a Context with the standard primitive library
// (arithmetic, list utilities, I/O — see primitives.go) installed as the
// global environment's single frame.
func NewInterpreter() *Context {
	ctx := NewReader()
	table := ctx.MakeTable(defaultUserTableCapacity)
	ctx.TableSet(table, ctx.MakeSymbol("NULL"), Null())
	ctx.TableAddFuncs(table, standardPrimitives())
	ctx.globalEnv = ctx.MakeEnv(table)
	return ctx
}

// GlobalEnv returns the context's global environment.
func (ctx *Context) GlobalEnv() Value { return ctx.globalEnv }

// Shutdown releases both of the context's semispaces. The Context must not
// be used afterward.
func (ctx *Context) Shutdown() {
	ctx.heap.reset(0)
	ctx.toHeap.reset(0)
	ctx.heap = nil
	ctx.toHeap = nil
}
