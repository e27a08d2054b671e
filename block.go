package arena

import "unsafe"

// block is one contiguous backing buffer in an arena's chain. Blocks are
// linked newest-first: prev points at the block that was the head before
// this one. Only the head ever receives bump allocations; older blocks stay
// linked so the whole chain can be released at once.
type block struct {
	buf    []byte
	off    uintptr // next free byte in buf
	prev   *block
	mapped bool // buf came from the OS block source, needs explicit unmap
	fixed  bool // buf is caller-owned, never released by the arena
}

// tryBump serves n bytes at the given alignment from b, or reports that b
// is full. Alignment is computed on the absolute address, not the offset:
// caller-supplied fixed buffers make no alignment promises at all.
func (b *block) tryBump(n int, align uintptr) ([]byte, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
	off := alignUp(base+b.off, align) - base
	if off+uintptr(n) > uintptr(len(b.buf)) {
		return nil, false
	}
	b.off = off + uintptr(n)
	return unsafe.Slice(&b.buf[off], n), true
}

func alignUp(p, align uintptr) uintptr {
	return (p + align - 1) &^ (align - 1)
}

// bump is the allocation entry used by every public alloc operation.
// Fast path: the head block has room. Slow path: grow the chain.
func (r *Raw) bump(n int, align uintptr) []byte {
	b := r.head
	if b == nil {
		panic("arena: use after Free()")
	}
	if p, ok := b.tryBump(n, align); ok {
		return p
	}
	return r.bumpSlow(n, align)
}

func (r *Raw) bumpSlow(n int, align uintptr) []byte {
	// Worst case the new block's base costs align-1 bytes of padding.
	need := n + int(align) - 1
	if need > r.nextSize {
		// Dedicated block sized to the request. The growth cursor is left
		// alone so one huge allocation does not inflate every later block.
		r.pushBlock(need)
		r.logEvent("msg", "oversized block allocated", "size", need)
	} else {
		size := r.nextSize
		r.pushBlock(size)
		next := growSize(size, r.opts)
		r.nextSize = next
		r.logEvent("msg", "block grown", "size", size, "next", next)
	}
	p, ok := r.head.tryBump(n, align)
	if !ok {
		panic("arena: grown block cannot fit allocation")
	}
	return p
}

// pushBlock allocates a block of the given capacity and makes it the head.
// Underlying allocation failure is fatal: an arena has no partial-failure
// story to offer its caller.
func (r *Raw) pushBlock(size int) {
	buf, mapped := allocBlockMem(size)
	r.head = &block{buf: buf, prev: r.head, mapped: mapped}
}

// releaseChain returns every block in the chain to its source. Heap blocks
// are left to the collector, mapped blocks are unmapped, fixed blocks belong
// to the caller and are skipped.
func releaseChain(head *block) {
	for b := head; b != nil; b = b.prev {
		if b.fixed {
			continue
		}
		if b.mapped {
			freeBlockMem(b.buf)
		}
		b.buf = nil
	}
}

// appendChain links chain onto the front of list and returns the new front.
// Chains are short (growth is geometric), so walking to the tail is cheap.
func appendChain(chain, list *block) *block {
	if chain == nil {
		return list
	}
	tail := chain
	for tail.prev != nil {
		tail = tail.prev
	}
	tail.prev = list
	return chain
}
