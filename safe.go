package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for callers that must
// allocate from several goroutines. Fuse and Free are already goroutine-safe
// on the plain Arena; the lock here covers the allocation fast path and
// Stats.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with default options.
func NewSafeArena() *SafeArena {
	return &SafeArena{a: New()}
}

// NewSafeArenaWithOptions creates a thread-safe arena configured by opts.
func NewSafeArenaWithOptions(opts Options) *SafeArena {
	return &SafeArena{a: NewWithOptions(opts)}
}

// Arena returns the wrapped arena. Callers taking it out of the wrapper take
// over the single-writer obligation for any direct allocation they do.
func (s *SafeArena) Arena() *Arena {
	return s.a
}

// AllocBytes thread-safely allocates n bytes at the given alignment.
func (s *SafeArena) AllocBytes(n int, align uintptr) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n, align)
}

// CopyBytes thread-safely copies src into arena memory.
func (s *SafeArena) CopyBytes(src []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CopyBytes(s.a, src)
}

// CopyString thread-safely copies src into arena memory.
func (s *SafeArena) CopyString(src string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CopyString(s.a, src)
}

// Fuse merges the wrapped arena's lifetime with other's. Group state has its
// own synchronization, so this takes no wrapper locks and cannot deadlock
// against concurrent allocation.
func (s *SafeArena) Fuse(other *SafeArena) error {
	return s.a.Fuse(other.a)
}

// Free releases this handle's claim on its fuse group.
func (s *SafeArena) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free()
}

// Stats thread-safely snapshots the arena's usage. Safe to call from a
// metrics scrape while other goroutines allocate.
func (s *SafeArena) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

// SafeAlloc thread-safely returns a pointer to a zeroed T in the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeCopy thread-safely stores a bitwise copy of v in the arena.
func SafeCopy[T any](s *SafeArena, v T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Copy(s.a, v)
}

// SafeCopySlice thread-safely copies src into arena memory.
func SafeCopySlice[T any](s *SafeArena, src []T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CopySlice(s.a, src)
}
