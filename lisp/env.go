// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"fmt"
	"os"
)

// An environment is a pair-list whose cars are tables: the head is the
// innermost frame, and lookup walks frames head-to-tail returning the first
// hit. Representing frames as ordinary pairs means the collector needs no
// special case for environments at all.

// MakeEnv wraps a table as a one-frame environment.
func (ctx *Context) MakeEnv(table Value) Value { return ctx.Cons(table, Null()) }

// EnvExtend prepends a new frame to env.
func (ctx *Context) EnvExtend(env, table Value) Value { return ctx.Cons(table, env) }

// EnvLookup returns the (symbol . value) pair for symbol, searching
// outward from the innermost frame, or Null if symbol is unbound.
func (ctx *Context) EnvLookup(env, symbol Value) Value {
	for !env.IsNull() {
		if pair := ctx.TableGet(Car(env), symbol); !pair.IsNull() {
			return pair
		}
		env = Cdr(env)
	}
	return Null()
}

// EnvDefine binds symbol to value in env's innermost frame.
func (ctx *Context) EnvDefine(env, symbol, value Value) {
	ctx.TableSet(Car(env), symbol, value)
}

// EnvSet mutates the first frame in which symbol is already bound. Setting
// an undefined variable is a known rough edge preserved from the source
// interpreter (spec.md §9 Open Questions): lisp_env_set reports the unknown
// variable to stderr but does not raise, so the mutation here is skipped
// after printing the same diagnostic rather than raising ErrUnknownVar.
func (ctx *Context) EnvSet(env, symbol, value Value) {
	pair := ctx.EnvLookup(env, symbol)
	if pair.IsNull() {
		fmt.Fprintf(os.Stderr, "error: unknown variable: %s\n", Symbol(symbol))
		return
	}
	setCdr(pair, value)
}
