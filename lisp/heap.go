// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lisp

// defaultPageCapacity is the size, in accounted bytes, of a freshly created
// page absent a larger single allocation.
const defaultPageCapacity = 8192

// page is one link of a heap's bump-allocated arena. Blocks are never freed
// individually; a page's blocks are only ever dropped in bulk, either when
// the page itself is released or when heap.reset zeroes it for reuse.
type page struct {
	capacity int
	size     int    // accounted bytes currently used
	blocks   []ref  // allocated blocks, in allocation order
	next     *page
}

func newPage(capacity int) *page {
	return &page{capacity: capacity}
}

func (p *page) reset() {
	p.size = 0
	p.blocks = p.blocks[:0]
}

// heap is a chain of pages plus a cursor to the page currently being
// allocated into. Two heaps exist at all times (the active from-space and
// the collector's to-space); Context.Collect swaps them at the end of a cycle.
type heap struct {
	first *page
	page  *page
	size  int // total accounted bytes live in this heap
}

func newHeap() *heap {
	p := newPage(defaultPageCapacity)
	return &heap{first: p, page: p}
}

// place allocates size accounted bytes for b inside the heap's arena,
// choosing or creating a page exactly as spec.md's heap_alloc does: fit in
// the current page, else reuse an already-linked next page if it fits,
// else allocate a fresh page sized to the larger of the default and size.
func (h *heap) place(b ref, size int) {
	p := h.page
	if p.size+size > p.capacity {
		if p.next != nil && p.next.size+size <= p.next.capacity {
			p = p.next
			h.page = p
		} else {
			capacity := defaultPageCapacity
			if size > capacity {
				capacity = size
			}
			np := newPage(capacity)
			np.next = p.next
			p.next = np
			h.page = np
			p = np
		}
	}
	b.header().size = size
	p.blocks = append(p.blocks, b)
	p.size += size
	h.size += size
}

// reset retains enough leading pages to cover target accounted bytes
// (clearing them for reuse) and drops the remainder of the chain, exactly
// as spec.md's heap_reset: pages live until the heap is reset; collection
// keeps the from-space pages whose retained capacity can serve the new
// live set and discards the surplus.
func (h *heap) reset(target int) {
	p := h.first
	prev := p
	counted := 0
	// The first page is always cleared and retained, even when target is 0;
	// every later page is cleared only while it's needed to cover target.
	p.reset()
	for {
		next := p.next
		if next == nil || counted >= target {
			break
		}
		counted += next.size
		next.reset()
		prev = next
		p = next
	}
	prev.next = nil
	h.page = h.first
	h.size = 0
}
