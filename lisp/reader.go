// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"io"
	"os"
	"strconv"
)

// Read parses a single in-memory program into a value tree. If the text
// contains more than one top-level form they are wrapped as
// (begin form1 form2 ...).
func (ctx *Context) Read(text string) (Value, ErrorCode) {
	return ctx.readFrom(newStringLexer(text))
}

// ReadReader parses program text streamed from r, using a double-buffered
// lexer that never materializes more of the input than two lexer buffers
// at a time.
func (ctx *Context) ReadReader(r io.Reader) (Value, ErrorCode) {
	return ctx.readFrom(newFileLexer(r))
}

// ReadPath opens path and parses its contents.
func (ctx *Context) ReadPath(path string) (Value, ErrorCode) {
	f, err := os.Open(path)
	if err != nil {
		return Null(), ErrFileOpen
	}
	defer f.Close()
	return ctx.ReadReader(f)
}

func (ctx *Context) readFrom(lx *lexer) (result Value, outErr ErrorCode) {
	defer catch(&outErr)
	result = ctx.parse(lx)
	return result, ErrNone
}

func (ctx *Context) parse(lx *lexer) Value {
	lx.next()
	result := ctx.parseListR(lx)

	if lx.token != tokNone {
		back := ctx.Cons(result, Null())
		front := ctx.Cons(ctx.MakeSymbol("BEGIN"), back)

		for lx.token != tokNone {
			next := ctx.parseListR(lx)
			cell := ctx.Cons(next, Null())
			setCdr(back, cell)
			back = cell
		}
		result = front
	}
	return result
}

func (ctx *Context) parseListR(lx *lexer) Value {
	switch lx.token {
	case tokNone:
		raise(ErrParenExpected)
		panic("unreachable")
	case tokLParen:
		front, back := Null(), Null()
		lx.next()
		for lx.token != tokRParen {
			if lx.token == tokNone {
				raise(ErrParenExpected)
			}
			item := ctx.parseListR(lx)
			ctx.backAppend(&front, &back, item)
		}
		lx.next()
		return front
	case tokRParen:
		raise(ErrParenUnexpected)
		panic("unreachable")
	case tokQuote:
		lx.next()
		inner := ctx.Cons(ctx.parseListR(lx), Null())
		return ctx.Cons(ctx.MakeSymbol("QUOTE"), inner)
	default:
		return ctx.parseAtom(lx)
	}
}

func (ctx *Context) parseAtom(lx *lexer) Value {
	length := lx.scanLength
	var result Value

	switch lx.token {
	case tokInt:
		text := lx.tokenText(0, length)
		n, err := strconv.Atoi(text)
		if err != nil {
			raise(ErrBadToken)
		}
		result = MakeInt(n)
	case tokFloat:
		text := lx.tokenText(0, length)
		x, err := strconv.ParseFloat(text, 64)
		if err != nil {
			raise(ErrBadToken)
		}
		result = MakeFloat(x)
	case tokString:
		// skip the surrounding quotes
		text := lx.tokenText(1, length-2)
		result = ctx.MakeString(text)
	case tokSymbol:
		text := lx.tokenText(0, length)
		result = ctx.MakeSymbol(text)
	default:
		raise(ErrBadToken)
	}

	lx.next()
	return result
}
