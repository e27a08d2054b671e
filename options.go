package arena

import "github.com/go-kit/log"

const (
	// DefaultInitialBlockSize is the size of the first block allocated by a
	// new arena (256 bytes). Small on purpose: most arenas in tree/message
	// building workloads stay small, and the chain grows geometrically when
	// they don't.
	DefaultInitialBlockSize = 256

	// DefaultGrowthFactor is the multiplier applied to the block size on
	// each growth until DefaultMaxBlockSize is reached.
	DefaultGrowthFactor = 2.0

	// DefaultMaxBlockSize caps geometric growth (64 KiB); past it the chain
	// grows linearly in cap-sized blocks.
	DefaultMaxBlockSize = 1 << 16

	// DefaultMaxAlign is the largest alignment AllocBytes accepts.
	DefaultMaxAlign = 16
)

// Options configures an arena at construction time. All fields are fixed
// once the arena exists; the zero value selects the defaults above.
type Options struct {
	// InitialBlockSize is the capacity of the arena's first owned block.
	InitialBlockSize int

	// GrowthFactor multiplies the block size on each growth. Values below
	// 1 fall back to DefaultGrowthFactor.
	GrowthFactor float64

	// MaxBlockSize caps the size of policy-grown blocks. Oversized
	// allocations still get a dedicated block of exactly the requested
	// size.
	MaxBlockSize int

	// MaxAlign is the alignment ceiling for AllocBytes. Must be a power of
	// two no larger than the block sources can guarantee.
	MaxAlign uintptr

	// Logger, when set, receives slow-path events only (block growth,
	// fusion, terminal free). The allocation fast path never logs.
	Logger log.Logger
}

// withDefaults fills zero fields and clamps inconsistent ones.
func (o Options) withDefaults() Options {
	if o.InitialBlockSize <= 0 {
		o.InitialBlockSize = DefaultInitialBlockSize
	}
	if o.GrowthFactor < 1 {
		o.GrowthFactor = DefaultGrowthFactor
	}
	if o.MaxBlockSize <= 0 {
		o.MaxBlockSize = DefaultMaxBlockSize
	}
	if o.MaxBlockSize < o.InitialBlockSize {
		o.MaxBlockSize = o.InitialBlockSize
	}
	if o.MaxAlign == 0 {
		o.MaxAlign = DefaultMaxAlign
	}
	if o.MaxAlign&(o.MaxAlign-1) != 0 {
		panic("arena: MaxAlign must be a power of two")
	}
	return o
}
