// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// MakeString allocates a new string value. Strings are not interned;
// structural equality between two strings is never implied by Eq.
func (ctx *Context) MakeString(s string) Value { return newString(s, ctx.heap) }

// String returns the contents of a string value.
func String(v Value) string {
	if sb, ok := asString(v); ok {
		return sb.s
	}
	return ""
}
