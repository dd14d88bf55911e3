// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// Collect runs a full Cheney-style copying collection: everything reachable
// from root, the global environment, and the symbol table is evacuated into
// the context's spare semispace, the two heaps are swapped, and the spare
// (now holding only garbage) is reset for reuse. It returns root's relocated
// value, which callers must use in place of the value passed in — anything
// still referring to the from-space after Collect returns is stale.
//
// Rather than the source interpreter's explicit to-space scan loop (walk the
// to-space pages in allocation order, forwarding each block's own fields as
// they're visited), this copies each block's children immediately and
// recursively: the flagMoved check on entry makes that safe against cycles
// (a lambda closing over an environment that, through some chain of defines,
// ends up referencing the lambda again), and a value tree built by a reader
// and evaluator rarely nests deep enough for the recursion itself to be a
// concern. See DESIGN.md.
func (ctx *Context) Collect(root Value) Value {
	newRoot := ctx.gcMove(root)
	ctx.globalEnv = ctx.gcMove(ctx.globalEnv)
	ctx.symbolTable = ctx.gcMove(ctx.symbolTable)

	ctx.heap, ctx.toHeap = ctx.toHeap, ctx.heap
	ctx.toHeap.reset(ctx.heap.size)
	return newRoot
}

// gcMove relocates v into the to-space, or returns its already-relocated
// address if some earlier reference already moved it.
func (ctx *Context) gcMove(v Value) Value {
	if v.ref == nil {
		return v
	}
	h := v.ref.header()
	if h.flags&flagMoved != 0 {
		return Value{typ: v.typ, ref: h.forward}
	}

	switch v.Type() {
	case TypePair:
		p, _ := asPair(v)
		newVal := newPair(Null(), Null(), ctx.toHeap)
		h.flags |= flagMoved
		h.forward = newVal.ref

		np, _ := asPair(newVal)
		np.car = ctx.gcMove(p.car)
		np.cdr = ctx.gcMove(p.cdr)
		return newVal

	case TypeSymbol:
		sb, _ := asSymbol(v)
		newVal := newSymbol(sb.name, sb.hash, ctx.toHeap)
		h.flags |= flagMoved
		h.forward = newVal.ref
		return newVal

	case TypeString:
		sb, _ := asString(v)
		newVal := newString(sb.s, ctx.toHeap)
		h.flags |= flagMoved
		h.forward = newVal.ref
		return newVal

	case TypeLambda:
		lb, _ := asLambda(v)
		newVal := newLambda(lb.id, Null(), Null(), Null(), ctx.toHeap)
		h.flags |= flagMoved
		h.forward = newVal.ref

		nb, _ := asLambda(newVal)
		nb.args = ctx.gcMove(lb.args)
		nb.body = ctx.gcMove(lb.body)
		nb.env = ctx.gcMove(lb.env)
		return newVal

	case TypeTable:
		return ctx.gcMoveTable(v)

	default:
		// scalars (int, float, func) and anything else with no ref payload
		return v
	}
}

// gcMoveTable relocates a table, opportunistically resizing its bucket
// array when the load factor has drifted outside [0.1, 0.75] — the same
// rehash-on-scavenge rule the source interpreter applies, so a table that
// grew past its starting capacity (or shrank well below it) gets a better
// bucket count without a separate resize pass.
func (ctx *Context) gcMoveTable(v Value) Value {
	tb, _ := asTable(v)
	h := tb.header()

	newCap := len(tb.buckets)
	load := 0.0
	if newCap > 0 {
		load = float64(tb.count) / float64(newCap)
	}
	if load > 0.75 || load < 0.1 {
		newCap = 3*tb.count - 1
		if newCap < 1 {
			newCap = 1
		}
	}

	newVal := newTable(newCap, ctx.toHeap)
	h.flags |= flagMoved
	h.forward = newVal.ref

	ntb, _ := asTable(newVal)
	ntb.count = tb.count

	for _, bucket := range tb.buckets {
		it := bucket
		for !it.IsNull() {
			entry, _ := asPair(it)
			pair, _ := asPair(entry.car)

			symbol := ctx.gcMove(pair.car)
			value := ctx.gcMove(pair.cdr)

			index := int(symbolHash(symbol)) % len(ntb.buckets)
			newEntry := newPair(symbol, value, ctx.toHeap)
			ntb.buckets[index] = newPair(newEntry, ntb.buckets[index], ctx.toHeap)

			it = entry.cdr
		}
	}
	return newVal
}
