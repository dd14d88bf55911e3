// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"hash/adler32"
	"strings"
)

// MakeSymbol interns name, case-folding it to uppercase. Every distinct
// (case-insensitive) name maps to exactly one block, discovered through the
// context's symbol table keyed on the folded string and its Adler-32 hash —
// so two calls with "foo" and "FOO" return values that are Eq.
func (ctx *Context) MakeSymbol(name string) Value {
	folded := strings.ToUpper(name)
	hash := adler32.Checksum([]byte(folded))

	if pair := tableGetByName(ctx.symbolTable, folded, hash); !pair.IsNull() {
		return Car(pair)
	}

	sym := newSymbol(folded, hash, ctx.heap)
	ctx.TableSet(ctx.symbolTable, sym, Null())
	return sym
}

// Symbol returns the (already uppercased) name of a symbol value.
func Symbol(v Value) string {
	if sb, ok := asSymbol(v); ok {
		return sb.name
	}
	return ""
}

func symbolHash(v Value) uint32 {
	if sb, ok := asSymbol(v); ok {
		return sb.hash
	}
	return 0
}
