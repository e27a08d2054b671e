package arena

import (
	"math"
	"runtime"
	"unsafe"
)

// zerobase backs every zero-sized allocation, the way the Go runtime backs
// new(struct{}). Such pointers are never dereferenced for data; they only
// have to be non-nil.
var zerobase uintptr

// Alloc returns a pointer to a zeroed T stored inside the arena. The pointer
// stays valid until the arena's fuse group is freed.
//
// T's alignment must be within the arena's MaxAlign. Values stored through
// the pointer live in pointerless memory: do not make arena memory the only
// reference to something the garbage collector manages.
func Alloc[T any](a *Arena) *T {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return (*T)(unsafe.Pointer(&zerobase))
	}
	b := a.AllocBytes(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc, but the contents are undefined until written;
// with a fixed-buffer arena they are whatever the caller's buffer held.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return (*T)(unsafe.Pointer(&zerobase))
	}
	b := a.AllocBytes(int(unsafe.Sizeof(zero)), unsafe.Alignof(zero))
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&zerobase)), n)
	}
	if n > math.MaxInt/elemSize {
		panic("arena: slice length overflows")
	}
	b := a.AllocBytes(elemSize*n, unsafe.Alignof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	var zero T
	for i := range s {
		s[i] = zero
	}
	return s
}

// Copy stores a bitwise copy of v in the arena and returns a pointer to it.
// The copy's lifetime is the fuse group's, not the source's.
func Copy[T any](a *Arena, v T) *T {
	p := AllocUninitialized[T](a)
	*p = v
	return p
}

// CopySlice copies src into arena memory, preserving length, contents and
// order. Returns nil for an empty source.
func CopySlice[T any](a *Arena, src []T) []T {
	if len(src) == 0 {
		return nil
	}
	dst := AllocSlice[T](a, len(src))
	copy(dst, src)
	return dst
}

// CopyBytes copies src into arena memory byte for byte.
func CopyBytes(a *Arena, src []byte) []byte {
	return CopySlice(a, src)
}

// CopyString copies s into arena memory and returns it as a string. The
// copy is bitwise, so valid text stays valid text.
func CopyString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s), 1)
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// PtrAndKeepAlive returns t and keeps the arena reachable up to this call,
// so blocks behind pointers produced via Raw-handle round-trips are not
// collected mid-flight. Place it after the last raw use, not before.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
