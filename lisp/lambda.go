// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// MakeLambda captures a closure: a parameter list, a single core-form
// body expression (the expander guarantees bodies are single expressions
// by the time Eval ever sees one), and the environment active at the point
// of definition.
func (ctx *Context) MakeLambda(args, body, env Value) Value {
	id := ctx.lambdaCounter
	ctx.lambdaCounter++
	return newLambda(id, args, body, env, ctx.heap)
}

func lambdaArgs(v Value) Value {
	b, _ := asLambda(v)
	return b.args
}

func lambdaBody(v Value) Value {
	b, _ := asLambda(v)
	return b.body
}

func lambdaEnv(v Value) Value {
	b, _ := asLambda(v)
	return b.env
}

// LambdaID returns the monotonic identifier assigned to a lambda at
// creation time, used only for printing (`lambda-N`).
func LambdaID(v Value) int {
	b, _ := asLambda(v)
	return b.id
}
