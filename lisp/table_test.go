// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestTableSetGet(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	table := ctx.MakeTable(8)
	foo := ctx.MakeSymbol("foo")
	bar := ctx.MakeSymbol("bar")

	ctx.TableSet(table, foo, MakeInt(1))
	ctx.TableSet(table, bar, MakeInt(2))

	if got := Cdr(ctx.TableGet(table, foo)); got.Int() != 1 {
		t.Errorf("foo = %d, want 1", got.Int())
	}
	if got := Cdr(ctx.TableGet(table, bar)); got.Int() != 2 {
		t.Errorf("bar = %d, want 2", got.Int())
	}
	if !ctx.TableGet(table, ctx.MakeSymbol("missing")).IsNull() {
		t.Errorf("missing key should be Null")
	}
}

func TestTableSetReplacesInPlace(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	table := ctx.MakeTable(8)
	foo := ctx.MakeSymbol("foo")

	ctx.TableSet(table, foo, MakeInt(1))
	ctx.TableSet(table, foo, MakeInt(2))

	tb, _ := asTable(table)
	if tb.count != 1 {
		t.Errorf("count = %d, want 1 (replace should not grow the table)", tb.count)
	}
	if got := Cdr(ctx.TableGet(table, foo)); got.Int() != 2 {
		t.Errorf("foo = %d, want 2", got.Int())
	}
}

func TestEnvLookupShadowing(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	outer := ctx.MakeTable(4)
	x := ctx.MakeSymbol("x")
	ctx.TableSet(outer, x, MakeInt(1))
	env := ctx.MakeEnv(outer)

	inner := ctx.MakeTable(4)
	ctx.TableSet(inner, x, MakeInt(2))
	env = ctx.EnvExtend(env, inner)

	pair := ctx.EnvLookup(env, x)
	if Cdr(pair).Int() != 2 {
		t.Errorf("inner frame should shadow outer: got %d, want 2", Cdr(pair).Int())
	}
}

func TestEnvSetOnUnboundVariableIsNoop(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	env := ctx.MakeEnv(ctx.MakeTable(4))
	ctx.EnvSet(env, ctx.MakeSymbol("never-defined"), MakeInt(1))
	if !ctx.EnvLookup(env, ctx.MakeSymbol("never-defined")).IsNull() {
		t.Errorf("EnvSet should not have defined the variable")
	}
}

func TestEnvSetOnUnboundVariableReportsDiagnostic(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	env := ctx.MakeEnv(ctx.MakeTable(4))
	ctx.EnvSet(env, ctx.MakeSymbol("never-defined"), MakeInt(1))

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll: %v", err)
	}
	if !strings.Contains(string(out), "NEVER-DEFINED") {
		t.Errorf("stderr = %q, want it to name the unknown variable", out)
	}
}

func TestSymbolInternReturnsSamePointer(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	a := ctx.MakeSymbol("alpha")
	b := ctx.MakeSymbol("ALPHA")
	c := ctx.MakeSymbol("beta")

	if !Eq(a, b) {
		t.Errorf("case-insensitive interning should unify alpha/ALPHA")
	}
	if Eq(a, c) {
		t.Errorf("distinct names should not be Eq")
	}
}
