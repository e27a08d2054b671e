package arena

// Arena is a handle granting bump allocation from a chain of memory blocks,
// with group lifetime semantics: memory is released all at once when the
// arena (or, after fusion, its whole fuse group) is freed.
//
// Allocation methods follow a single-writer discipline: an Arena may be
// handed between goroutines but must not be allocated from by two at once
// (wrap it in a SafeArena for that). Fuse and Free are safe from any
// goroutine.
type Arena struct {
	raw *Raw

	// borrowed handles (FromRaw) never free the underlying state.
	borrowed bool
}

// Raw is the allocator state behind an Arena handle: the block chain, the
// growth cursor and the fuse-group membership. It exists as a separate type
// so state can round-trip through foreign code via FromRaw/Raw.
type Raw struct {
	head     *block
	nextSize int
	opts     Options

	group *group
	fixed bool // built on a caller-supplied buffer; cannot fuse
	freed bool // guarded by fuseMu
}

// New returns an arena with default options. It never fails observably:
// underlying memory exhaustion halts the process.
func New() *Arena {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an arena configured by opts. Zero fields take the
// package defaults; the options are fixed for the arena's lifetime.
func NewWithOptions(opts Options) *Arena {
	opts = opts.withDefaults()
	r := &Raw{opts: opts, group: newGroup()}
	r.pushBlock(opts.InitialBlockSize)
	r.nextSize = growSize(opts.InitialBlockSize, opts)
	return &Arena{raw: r}
}

// NewFixed returns an arena whose first block is buf, a buffer the caller
// owns. The arena allocates from buf until it fills, then grows with owned
// blocks as usual, but it can never be fused (see ErrFixedBuffer) and never
// releases buf itself.
func NewFixed(buf []byte) *Arena {
	return NewFixedWithOptions(buf, Options{})
}

// NewFixedWithOptions is NewFixed with explicit options. InitialBlockSize
// applies to the first owned block allocated after buf is exhausted.
func NewFixedWithOptions(buf []byte, opts Options) *Arena {
	opts = opts.withDefaults()
	r := &Raw{opts: opts, group: newGroup(), fixed: true}
	r.head = &block{buf: buf, fixed: true}
	r.nextSize = opts.InitialBlockSize
	return &Arena{raw: r}
}

// FromRaw wraps externally held allocator state in a borrowed handle. The
// caller attests that r is valid and that whoever owns it will not free it
// while this handle is in use; Free on the returned Arena is a no-op.
func FromRaw(r *Raw) *Arena {
	return &Arena{raw: r, borrowed: true}
}

// Raw returns the underlying allocator state, for handing to code that
// reconstructs a handle with FromRaw. The state stays owned by a.
func (a *Arena) Raw() *Raw {
	return a.raw
}

// AllocBytes returns n uninitialized bytes from the arena, aligned to align.
// The bytes stay valid until the arena's fuse group is freed; they are never
// individually freed. Returns nil if n <= 0.
//
// align must be a power of two no larger than the arena's MaxAlign; anything
// else is a programmer error and panics.
func (a *Arena) AllocBytes(n int, align uintptr) []byte {
	if align == 0 || align&(align-1) != 0 || align > a.raw.opts.MaxAlign {
		panic("arena: unsupported alignment")
	}
	return a.AllocBytesUnchecked(n, align)
}

// AllocBytesUnchecked is AllocBytes without the alignment assertion. The
// caller guarantees align is a power of two within the arena's ceiling;
// passing anything else corrupts the bump cursor.
func (a *Arena) AllocBytesUnchecked(n int, align uintptr) []byte {
	if n <= 0 {
		return nil
	}
	return a.raw.bump(n, align)
}

// Fixed reports whether the arena was built on a caller-supplied buffer.
func (a *Arena) Fixed() bool {
	return a.raw.fixed
}

func growSize(cur int, opts Options) int {
	next := int(float64(cur) * opts.GrowthFactor)
	if next > opts.MaxBlockSize {
		next = opts.MaxBlockSize
	}
	if next < cur {
		next = cur
	}
	return next
}

func (r *Raw) logEvent(keyvals ...interface{}) {
	if l := r.opts.Logger; l != nil {
		_ = l.Log(keyvals...)
	}
}
