// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "testing"

// run reads, expands, and evaluates a single program in a fresh
// interpreter, failing the test on any pipeline error.
func run(t *testing.T, program string) Value {
	t.Helper()
	ctx := NewInterpreter()
	defer ctx.Shutdown()

	form, err := ctx.Read(program)
	if err != ErrNone {
		t.Fatalf("Read(%q): %v", program, err)
	}
	expanded, err := ctx.Expand(form)
	if err != ErrNone {
		t.Fatalf("Expand(%q): %v", program, err)
	}
	result, err := ctx.Eval(expanded, ctx.GlobalEnv())
	if err != ErrNone {
		t.Fatalf("Eval(%q): %v", program, err)
	}
	return result
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		program string
		want    int
	}{
		{"(+ 1 2)", 3},
		{"(- 10 4)", 6},
		{"(* 3 4)", 12},
		{"(/ 10 2)", 5},
		{"(+ 1 (* 2 3))", 7},
		{"(if 1 10 20)", 10},
		{"(if 0 10 20)", 20},
	}
	for _, c := range cases {
		got := run(t, c.program)
		if got.Type() != TypeInt || got.Int() != c.want {
			t.Errorf("%s = %v, want %d", c.program, got.Int(), c.want)
		}
	}
}

func TestEvalDefineAndSet(t *testing.T) {
	got := run(t, "(begin (define x 5) (set! x (+ x 1)) x)")
	if got.Int() != 6 {
		t.Errorf("got %d, want 6", got.Int())
	}
}

func TestEvalLambdaClosure(t *testing.T) {
	got := run(t, `(begin
		(define (adder n) (lambda (x) (+ x n)))
		(define add5 (adder 5))
		(add5 10))`)
	if got.Int() != 15 {
		t.Errorf("got %d, want 15", got.Int())
	}
}

func TestEvalTailRecursionDoesNotOverflow(t *testing.T) {
	got := run(t, `(begin
		(define (count n acc)
			(if (= n 0) acc (count (- n 1) (+ acc 1))))
		(count 50000 0))`)
	if got.Int() != 50000 {
		t.Errorf("got %d, want 50000", got.Int())
	}
}

func TestEvalCondAndLet(t *testing.T) {
	got := run(t, `(let ((x 3) (y 4))
		(cond ((< x 0) -1)
		      ((= x y) 0)
		      (else (+ x y))))`)
	if got.Int() != 7 {
		t.Errorf("got %d, want 7", got.Int())
	}
}

func TestEvalAndOr(t *testing.T) {
	cases := []struct {
		program string
		want    int
	}{
		{"(and 1 1 1)", 1},
		{"(and 1 0 1)", 0},
		{"(or 0 0 1)", 1},
		{"(or 0 0 0)", 0},
	}
	for _, c := range cases {
		if got := run(t, c.program); got.Int() != c.want {
			t.Errorf("%s = %d, want %d", c.program, got.Int(), c.want)
		}
	}
}

func TestEvalListPrimitives(t *testing.T) {
	got := run(t, "(length (map (lambda (x) (* x x)) (list 1 2 3 4)))")
	if got.Int() != 4 {
		t.Errorf("got %d, want 4", got.Int())
	}

	got = run(t, "(car (cdr (list 1 2 3)))")
	if got.Int() != 2 {
		t.Errorf("got %d, want 2", got.Int())
	}
}

func TestEvalUnknownVariable(t *testing.T) {
	ctx := NewInterpreter()
	defer ctx.Shutdown()

	form, err := ctx.Read("undefined-name")
	if err != ErrNone {
		t.Fatalf("Read: %v", err)
	}
	_, err = ctx.Eval(form, ctx.GlobalEnv())
	if err != ErrUnknownVar {
		t.Errorf("got error %v, want ErrUnknownVar", err)
	}
}
