package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time snapshot of an arena's memory accounting.
type Stats struct {
	BytesInUse   int     // bytes handed out, including alignment padding
	Capacity     int     // total capacity of all blocks in this chain
	Blocks       int     // blocks in this chain
	Utilization  float64 // BytesInUse / Capacity, 0 when empty
	GroupMembers int     // live arenas in this fuse group, 0 after Free
}

func (s Stats) String() string {
	return fmt.Sprintf("%s of %s in %d blocks (%.1f%% used, %d live members)",
		humanize.IBytes(uint64(s.BytesInUse)), humanize.IBytes(uint64(s.Capacity)),
		s.Blocks, s.Utilization*100, s.GroupMembers)
}

// Stats returns a snapshot of the arena's usage. Like the alloc methods it
// follows the single-writer discipline; use SafeArena.Stats for concurrent
// observation (e.g. a metrics scrape).
func (a *Arena) Stats() Stats {
	var s Stats
	for b := a.raw.head; b != nil; b = b.prev {
		s.BytesInUse += int(b.off)
		s.Capacity += len(b.buf)
		s.Blocks++
	}
	if s.Capacity > 0 {
		s.Utilization = float64(s.BytesInUse) / float64(s.Capacity)
	}
	s.GroupMembers = a.groupMembers()
	return s
}

// SizeInUse returns the total number of bytes currently allocated in the
// arena, including internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for b := a.raw.head; b != nil; b = b.prev {
		sum += int(b.off)
	}
	return sum
}

// Capacity returns the total capacity in bytes of all blocks in the chain.
func (a *Arena) Capacity() int {
	sum := 0
	for b := a.raw.head; b != nil; b = b.prev {
		sum += len(b.buf)
	}
	return sum
}

// NumBlocks returns the number of blocks in the arena's chain.
func (a *Arena) NumBlocks() int {
	n := 0
	for b := a.raw.head; b != nil; b = b.prev {
		n++
	}
	return n
}

// Utilization returns the ratio of bytes in use to total capacity (0 to 1).
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

func (a *Arena) groupMembers() int {
	fuseMu.Lock()
	defer fuseMu.Unlock()
	if a.raw.freed {
		return 0
	}
	return a.raw.group.find().refs
}
