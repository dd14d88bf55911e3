// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "testing"

func TestValueIntFloatCoercion(t *testing.T) {
	if MakeInt(5).Float() != 5.0 {
		t.Errorf("int 5 as float should be 5.0")
	}
	if MakeFloat(5.9).Int() != 5 {
		t.Errorf("float 5.9 truncates to int 5, got %d", MakeFloat(5.9).Int())
	}
	if MakeFloat(-5.9).Int() != -5 {
		t.Errorf("float -5.9 truncates to int -5, got %d", MakeFloat(-5.9).Int())
	}
}

func TestValueEqScalars(t *testing.T) {
	if !Eq(MakeInt(3), MakeInt(3)) {
		t.Errorf("equal ints should be Eq")
	}
	if Eq(MakeInt(3), MakeInt(4)) {
		t.Errorf("distinct ints should not be Eq")
	}
	if Eq(MakeInt(3), MakeFloat(3)) {
		t.Errorf("values of different types should never be Eq")
	}
	if !Eq(Null(), Null()) {
		t.Errorf("Null should be Eq to itself")
	}
}

func TestValuePairsAreEqOnlyByIdentity(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	a := ctx.Cons(MakeInt(1), Null())
	b := ctx.Cons(MakeInt(1), Null())
	if Eq(a, b) {
		t.Errorf("structurally-equal but distinct pairs should not be Eq")
	}
	if !Eq(a, a) {
		t.Errorf("a pair should be Eq to itself")
	}
}
