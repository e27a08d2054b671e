// Package arena implements a region-based bump allocator with lifetime
// fusion.
//
// # Overview
//
// An arena hands out fast, individually-unfreeable allocations from a chain
// of memory blocks and releases them all at once. On top of that, two arenas
// can be fused: their lifetimes become one, so cross-referencing structures
// built from both stay valid until every member of the fused group has been
// freed. This suits message and tree builders, parsers, and anything else
// that creates many small, immutable, interlinked objects and wants to drop
// them in one motion instead of tracking ownership per object.
//
// # Basic Usage
//
//	a := arena.New()
//	defer a.Free()
//
//	// Allocate raw bytes at a chosen alignment.
//	buf := a.AllocBytes(1024, 8)
//
//	// Allocate typed values.
//	ptr := arena.Alloc[MyStruct](a)
//	ids := arena.AllocSlice[int64](a, 100)
//
//	// Copy existing data in; the copies outlive the sources.
//	name := arena.CopyString(a, req.Name)
//
// # Lifetime Fusion
//
//	a, b := arena.New(), arena.New()
//	if err := a.Fuse(b); err != nil { ... }
//	a.Free() // memory allocated from a is still valid here
//	b.Free() // now the whole group is released
//
// After a successful Fuse, memory from either arena remains valid until
// every arena that ever joined the group, directly or transitively, has been
// freed. Whichever Free observes the last member leaving releases all
// accumulated blocks, exactly once.
//
// Arenas built on a caller-supplied buffer (NewFixed) cannot be fused: the
// arena does not own that buffer's lifetime, so Fuse reports ErrFixedBuffer
// instead of silently downgrading the guarantee.
//
// # Thread Safety
//
// Allocation follows a single-writer discipline: an Arena may move between
// goroutines but must not be allocated from by two at once. SafeArena wraps
// an Arena in a mutex for genuinely concurrent callers. Fuse and Free are
// safe from any goroutine, including concurrent fuses and frees on arenas
// sharing a group.
//
// # Memory Layout
//
// Blocks start small (256 bytes by default) and grow geometrically to a cap,
// after which growth is linear; a request larger than the next policy block
// gets a dedicated block of exactly its size. On Linux, large blocks come
// from the OS directly and are unmapped when the fuse group is freed;
// elsewhere the Go heap backs all blocks.
//
// # Important Notes
//
//   - Allocated memory is valid only while the fuse group has live members.
//   - There is no individual deallocation and no reset: Free is the one
//     release point.
//   - Arena memory is pointerless as far as the garbage collector knows.
//     Never make it the only reference to a GC-managed object.
//   - Underlying allocation failure halts the process; an arena cannot
//     degrade meaningfully.
//
// # Monitoring
//
// Stats returns a usage snapshot, and Collector exports the same numbers as
// prometheus metrics:
//
//	sa := arena.NewSafeArena()
//	prometheus.MustRegister(arena.NewCollector(sa, nil))
package arena
