// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"strings"
	"testing"
)

func TestReadAtoms(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	cases := []struct {
		text string
		typ  ValueType
	}{
		{"42", TypeInt},
		{"-7", TypeInt},
		{"3.14", TypeFloat},
		{"-0.5", TypeFloat},
		{`"hello"`, TypeString},
		{"foo", TypeSymbol},
		{"()", TypeNull},
	}
	for _, c := range cases {
		v, err := ctx.Read(c.text)
		if err != ErrNone {
			t.Fatalf("Read(%q): %v", c.text, err)
		}
		if v.Type() != c.typ {
			t.Errorf("Read(%q).Type() = %v, want %v", c.text, v.Type(), c.typ)
		}
	}
}

func TestReadSymbolIsCaseInsensitive(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	a, err := ctx.Read("foo")
	if err != ErrNone {
		t.Fatal(err)
	}
	b, err := ctx.Read("FOO")
	if err != ErrNone {
		t.Fatal(err)
	}
	if !Eq(a, b) {
		t.Errorf("Read(\"foo\") and Read(\"FOO\") are not Eq")
	}
}

func TestReadList(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	v, err := ctx.Read("(1 2 3)")
	if err != ErrNone {
		t.Fatal(err)
	}
	if Length(v) != 3 {
		t.Fatalf("Length = %d, want 3", Length(v))
	}
	if AtIndex(v, 0).Int() != 1 || AtIndex(v, 1).Int() != 2 || AtIndex(v, 2).Int() != 3 {
		t.Errorf("got %v", v)
	}
}

func TestReadQuote(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	v, err := ctx.Read("'foo")
	if err != ErrNone {
		t.Fatal(err)
	}
	if Length(v) != 2 || Symbol(Car(v)) != "QUOTE" {
		t.Errorf("'foo did not read as (quote foo): %v", v)
	}
}

func TestReadMultipleTopLevelFormsWrapInBegin(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	v, err := ctx.Read("(define x 1) (define y 2)")
	if err != ErrNone {
		t.Fatal(err)
	}
	if Symbol(Car(v)) != "BEGIN" {
		t.Errorf("got head %v, want BEGIN", Symbol(Car(v)))
	}
	if Length(v) != 3 {
		t.Errorf("Length(v) = %d, want 3", Length(v))
	}
}

func TestReadUnmatchedParenIsError(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	if _, err := ctx.Read("(1 2"); err != ErrParenExpected {
		t.Errorf("got %v, want ErrParenExpected", err)
	}
	if _, err := ctx.Read(")"); err != ErrParenUnexpected {
		t.Errorf("got %v, want ErrParenUnexpected", err)
	}
}

func TestReadReaderStreamingMatchesReadString(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	program := "(define (square x) (* x x))"
	fromString, err := ctx.Read(program)
	if err != ErrNone {
		t.Fatal(err)
	}
	fromReader, err := ctx.ReadReader(strings.NewReader(program))
	if err != ErrNone {
		t.Fatal(err)
	}
	if Sprint(fromString) != Sprint(fromReader) {
		t.Errorf("string reader gave %q, io.Reader gave %q", Sprint(fromString), Sprint(fromReader))
	}
}

func TestReadReaderAcrossBufferBoundary(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	// Pad the program so the token 1 ends on the last byte of the first
	// 4096-byte buffer: scanning it runs into the refilled second buffer,
	// exercising the lexer's refill and its cross-buffer token-text branch.
	pad := strings.Repeat(" ", defaultBuffSize-4)
	program := pad + "(+ 1 2)"

	v, err := ctx.ReadReader(strings.NewReader(program))
	if err != ErrNone {
		t.Fatalf("ReadReader: %v", err)
	}
	if Length(v) != 3 || Symbol(Car(v)) != "+" {
		t.Errorf("got %v", v)
	}
}

func TestReadPathMissingFile(t *testing.T) {
	ctx := NewReader()
	defer ctx.Shutdown()

	if _, err := ctx.ReadPath("/nonexistent/path/to/nowhere.lisp"); err != ErrFileOpen {
		t.Errorf("got %v, want ErrFileOpen", err)
	}
}
