// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "testing"

// These mirror the literal scenarios used to validate the interpreter
// end to end, each run against the shipped primitive library rather than
// a stripped-down test fixture.

func TestScenarioSimpleArithmetic(t *testing.T) {
	got := run(t, "(+ 1 2)")
	if got.Type() != TypeInt || got.Int() != 3 {
		t.Errorf("(+ 1 2) = %v, want int 3", got)
	}
}

func TestScenarioFactorial(t *testing.T) {
	got := run(t, "(define (fact n) (if (<= n 1) 1 (* n (fact (- n 1))))) (fact 5)")
	if got.Type() != TypeInt || got.Int() != 120 {
		t.Errorf("(fact 5) = %v, want int 120", got)
	}
}

func TestScenarioLetBinding(t *testing.T) {
	got := run(t, "(let ((x 2) (y 3)) (* x y))")
	if got.Type() != TypeInt || got.Int() != 6 {
		t.Errorf("let result = %v, want int 6", got)
	}
}

func TestScenarioCondWithElse(t *testing.T) {
	got := run(t, "(cond ((= 1 2) 'a) ((= 2 2) 'b) (else 'c))")
	if got.Type() != TypeSymbol || Symbol(got) != "B" {
		t.Errorf("cond result = %v, want symbol B", got)
	}
}

func TestScenarioQuotedListSymbolIdentity(t *testing.T) {
	ctx := NewInterpreter()
	defer ctx.Shutdown()

	form, err := ctx.Read("'(a b c)")
	if err != ErrNone {
		t.Fatalf("Read: %v", err)
	}
	expanded, err := ctx.Expand(form)
	if err != ErrNone {
		t.Fatalf("Expand: %v", err)
	}
	result, err := ctx.Eval(expanded, ctx.GlobalEnv())
	if err != ErrNone {
		t.Fatalf("Eval: %v", err)
	}

	if Length(result) != 3 {
		t.Fatalf("result has length %d, want 3", Length(result))
	}
	a1 := AtIndex(result, 0)
	if a1.Type() != TypeSymbol || Symbol(a1) != "A" {
		t.Fatalf("first element = %v, want symbol A", a1)
	}

	second, err := ctx.Read("'a")
	if err != ErrNone {
		t.Fatalf("Read second program: %v", err)
	}
	secondExpanded, err := ctx.Expand(second)
	if err != ErrNone {
		t.Fatalf("Expand second program: %v", err)
	}
	a2, err := ctx.Eval(secondExpanded, ctx.GlobalEnv())
	if err != ErrNone {
		t.Fatalf("Eval second program: %v", err)
	}
	if !Eq(a1, a2) {
		t.Errorf("A read from two separate programs should be eq? via interning")
	}
}

// TestScenarioCollectPreservesHostRoot forces a collection mid-program and
// confirms that the rest of the program still sees xs. The evaluator keeps
// using the environment it held before collect!, so this checks that the
// collection leaves the running program intact; it does not inspect the
// relocated global environment.
func TestScenarioCollectPreservesHostRoot(t *testing.T) {
	got := run(t, "(define xs (list 1 2 3)) (collect!) (length xs)")
	if got.Type() != TypeInt || got.Int() != 3 {
		t.Errorf("(length xs) after collect! = %v, want int 3", got)
	}
}
