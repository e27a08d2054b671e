package arena

import (
	"errors"
	"fmt"
)

// Example demonstrates basic arena usage.
func Example() {
	a := New()
	defer a.Free()

	// Allocate raw bytes at a chosen alignment.
	buf := a.AllocBytes(1024, 8)
	fmt.Printf("allocated %d bytes\n", len(buf))

	// Allocate a typed, zeroed value.
	p := Alloc[int64](a)
	*p = 42
	fmt.Printf("typed value: %d\n", *p)

	// Copy data in; the copy outlives the source.
	s := CopyString(a, "hello arena")
	fmt.Println(s)

	// Output:
	// allocated 1024 bytes
	// typed value: 42
	// hello arena
}

// ExampleArena_Fuse shows two arenas sharing one lifetime.
func ExampleArena_Fuse() {
	a, b := New(), New()

	msg := CopyString(a, "built in a")
	if err := a.Fuse(b); err != nil {
		panic(err)
	}

	a.Free()
	// b keeps the fused group alive, so memory from a is still valid.
	fmt.Println(msg)
	b.Free()

	// Output:
	// built in a
}

// ExampleNewFixed allocates from a caller-owned buffer.
func ExampleNewFixed() {
	var scratch [512]byte
	f := NewFixed(scratch[:])
	defer f.Free()

	fmt.Println(len(f.AllocBytes(64, 8)))

	// Fixed arenas own no lifetime to extend, so fusion is refused.
	other := New()
	defer other.Free()
	fmt.Println(errors.Is(f.Fuse(other), ErrFixedBuffer))

	// Output:
	// 64
	// true
}
