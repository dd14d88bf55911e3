// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import "io"

type tokenType int

const (
	tokNone tokenType = iota
	tokLParen
	tokRParen
	tokQuote
	tokSymbol
	tokString
	tokInt
	tokFloat
)

// defaultBuffSize is the size of each of the lexer's two input buffers in
// streaming (file) mode.
const defaultBuffSize = 4096

// lexer is a double-buffered, streaming tokenizer. In string mode (r ==
// nil) the entire input lives in buffs[0] and there is nothing to refill;
// this is the same code path as file mode, just one that never needs a
// second buffer, exactly as the source interpreter's in-memory lexer reuses
// its file lexer's scanning routines without its refill branch.
//
// Two cursors walk the buffers: sc marks the start of the token currently
// being matched, c is the scanner. When c runs off the end of its buffer,
// the *other* buffer is refilled from the reader — unless that buffer is
// the one holding sc, in which case the token has outgrown both buffers and
// is rejected as too long.
type lexer struct {
	r        io.Reader
	buffSize int

	buffs      [2][]byte
	buffLen    [2]int
	buffNumber [2]int // generation stamps; higher means more recently filled

	scBuf, scPos int
	cBuf, cPos   int
	scanLength   int

	token    tokenType
	tokenErr bool // true once a token has been rejected as too long / truncated
}

func newStringLexer(program string) *lexer {
	return &lexer{
		buffs:      [2][]byte{[]byte(program), nil},
		buffLen:    [2]int{len(program), 0},
		buffNumber: [2]int{0, -1},
	}
}

func newFileLexer(r io.Reader) *lexer {
	lx := &lexer{
		r:          r,
		buffSize:   defaultBuffSize,
		buffNumber: [2]int{0, -1},
	}
	lx.buffs[0] = make([]byte, lx.buffSize)
	lx.buffs[1] = make([]byte, lx.buffSize)
	n, _ := io.ReadFull(r, lx.buffs[0])
	lx.buffLen[0] = n
	return lx
}

// curByte returns the byte at the scan cursor, or 0 at end of input.
func (lx *lexer) curByte() byte {
	if lx.cPos >= lx.buffLen[lx.cBuf] {
		return 0
	}
	return lx.buffs[lx.cBuf][lx.cPos]
}

// step advances the scan cursor by one byte, refilling or flipping buffers
// as needed. It returns false at end of input or if the current token has
// outgrown both buffers.
func (lx *lexer) step() bool {
	lx.cPos++
	lx.scanLength++

	if lx.cPos < lx.buffLen[lx.cBuf] {
		return true
	}

	if lx.r == nil {
		return false
	}

	prev := lx.cBuf
	next := 1 - prev
	if next == lx.scBuf {
		lx.tokenErr = true
		return false
	}

	if lx.buffNumber[next] < lx.buffNumber[prev] {
		n, err := io.ReadFull(lx.r, lx.buffs[next])
		if n == 0 && err != nil {
			return false
		}
		lx.buffLen[next] = n
		lx.buffNumber[next] = lx.buffNumber[prev] + 1
	} else if lx.buffLen[next] == 0 {
		return false
	}

	lx.cBuf = next
	lx.cPos = 0
	return lx.buffLen[next] > 0
}

func (lx *lexer) advanceStart() {
	lx.scBuf, lx.scPos = lx.cBuf, lx.cPos
	lx.scanLength = 0
}

func (lx *lexer) restartScan() {
	lx.cBuf, lx.cPos = lx.scBuf, lx.scPos
	lx.scanLength = 0
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isSymbolChar matches any printable ASCII byte except the illegal set
// "()#;" and whitespace.
func isSymbolChar(b byte) bool {
	if b < '!' || b > '~' {
		return false
	}
	switch b {
	case '(', ')', '#', ';':
		return false
	}
	return true
}

func (lx *lexer) skipEmpty() {
	for {
		for isSpace(lx.curByte()) {
			if !lx.step() {
				return
			}
		}
		if lx.curByte() == ';' {
			for lx.curByte() != 0 && lx.curByte() != '\n' {
				if !lx.step() {
					return
				}
			}
		} else {
			return
		}
	}
}

func (lx *lexer) matchInt() bool {
	lx.restartScan()
	c := lx.curByte()
	if !isDigit(c) {
		if c == '-' || c == '+' {
			lx.step()
			if !isDigit(lx.curByte()) {
				return false
			}
		} else {
			return false
		}
	}
	lx.step()
	for isDigit(lx.curByte()) {
		lx.step()
	}
	return true
}

func (lx *lexer) matchFloat() bool {
	lx.restartScan()
	c := lx.curByte()
	if !isDigit(c) {
		if c == '-' || c == '+' {
			lx.step()
			if !isDigit(lx.curByte()) {
				return false
			}
		} else {
			return false
		}
	}
	lx.step()

	foundDecimal := false
	for {
		c := lx.curByte()
		if isDigit(c) {
			lx.step()
		} else if c == '.' {
			foundDecimal = true
			lx.step()
		} else {
			break
		}
	}
	return foundDecimal
}

func (lx *lexer) matchSymbol() bool {
	lx.restartScan()
	if !isSymbolChar(lx.curByte()) {
		return false
	}
	lx.step()
	for isSymbolChar(lx.curByte()) {
		lx.step()
	}
	return true
}

func (lx *lexer) matchString() bool {
	lx.restartScan()
	if lx.curByte() != '"' {
		return false
	}
	lx.step()
	for lx.curByte() != '"' {
		c := lx.curByte()
		if c == 0 || c == '\n' {
			return false
		}
		lx.step()
	}
	lx.step()
	return true
}

// tokenText materializes the bytes from start (relative to the token start
// cursor) for length bytes, handling the case where the token straddles
// the boundary between the two buffers with two copies.
func (lx *lexer) tokenText(start, length int) string {
	if lx.cBuf == lx.scBuf {
		return string(lx.buffs[lx.scBuf][lx.scPos+start : lx.scPos+start+length])
	}

	firstAvail := lx.buffLen[lx.scBuf] - (lx.scPos + start)
	if firstAvail < 0 {
		firstAvail = 0
	}
	if firstAvail > length {
		firstAvail = length
	}

	out := make([]byte, 0, length)
	if firstAvail > 0 {
		out = append(out, lx.buffs[lx.scBuf][lx.scPos+start:lx.scPos+start+firstAvail]...)
	}
	rest := length - firstAvail
	if rest > 0 {
		out = append(out, lx.buffs[lx.cBuf][:rest]...)
	}
	return string(out)
}

func (lx *lexer) next() {
	lx.skipEmpty()
	lx.advanceStart()

	switch c := lx.curByte(); {
	case c == 0:
		lx.token = tokNone
	case c == '(':
		lx.token = tokLParen
		lx.step()
	case c == ')':
		lx.token = tokRParen
		lx.step()
	case c == '\'':
		lx.token = tokQuote
		lx.step()
	case lx.matchString():
		lx.token = tokString
	case lx.matchFloat():
		lx.token = tokFloat
	case lx.matchInt():
		lx.token = tokInt
	case lx.matchSymbol():
		lx.token = tokSymbol
	default:
		lx.token = tokNone
	}
}
