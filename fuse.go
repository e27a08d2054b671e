package arena

import (
	"errors"
	"sync"
)

// ErrFixedBuffer is returned by Fuse when either arena was built on a
// caller-supplied buffer. Such an arena cannot extend a lifetime it does not
// own, so fusion is refused outright rather than silently downgraded.
var ErrFixedBuffer = errors.New("arena: cannot fuse a fixed-buffer arena")

// fuseMu guards the whole fusion forest: parent pointers, live counts and
// orphaned chains. Fuse and Free are cold paths, and merging groups under a
// single lock avoids any lock-ordering question when two fuses race on a
// shared member.
var fuseMu sync.Mutex

// group is a node in the union-find forest that models one fused lifetime.
// Fields other than parent are meaningful only at a root.
type group struct {
	parent *group
	rank   int

	// refs counts arena handles in the group that have not been freed.
	// The group's memory is released by whichever Free drops it to zero.
	refs int

	// orphans collects the block chains of members that were freed while
	// the group was still alive.
	orphans *block
}

func newGroup() *group {
	return &group{refs: 1}
}

// find returns g's root, compressing the path behind it. Caller holds fuseMu.
func (g *group) find() *group {
	root := g
	for root.parent != nil {
		root = root.parent
	}
	for g.parent != nil {
		g.parent, g = root, g.parent
	}
	return root
}

// union merges two distinct roots by rank and returns the merged root.
// Caller holds fuseMu.
func union(a, b *group) *group {
	if a.rank < b.rank {
		a, b = b, a
	}
	b.parent = a
	if a.rank == b.rank {
		a.rank++
	}
	a.refs += b.refs
	a.orphans = appendChain(b.orphans, a.orphans)
	b.refs = 0
	b.orphans = nil
	return a
}

// Fuse merges the lifetimes of a and b: memory allocated from either remains
// valid until every member of the combined group (including arenas fused in
// later, transitively) has been freed.
//
// Fuse is safe to call concurrently with Fuse and Free on other arenas, even
// ones sharing a group with a or b. Fusing an already-freed arena is a
// programmer error and panics.
func (a *Arena) Fuse(b *Arena) error {
	if a.raw.fixed || b.raw.fixed {
		return ErrFixedBuffer
	}
	fuseMu.Lock()
	defer fuseMu.Unlock()
	if a.raw.freed || b.raw.freed {
		panic("arena: Fuse after Free()")
	}
	ra, rb := a.raw.group.find(), b.raw.group.find()
	if ra == rb {
		return nil
	}
	root := union(ra, rb)
	a.raw.logEvent("msg", "arenas fused", "members", root.refs)
	return nil
}

// MustFuse is Fuse for callers that treat a fixed-buffer mismatch as a logic
// bug in their arena topology: it panics instead of returning the error.
func (a *Arena) MustFuse(b *Arena) {
	if err := a.Fuse(b); err != nil {
		panic(err)
	}
}

// Free releases this handle's claim on its fuse group. If other members are
// still alive the arena's blocks are handed to the group and stay valid;
// when the last member goes, every chain the group ever accumulated is
// released. Free is idempotent per handle and safe to call from any
// goroutine; it is a no-op on borrowed handles (see FromRaw).
func (a *Arena) Free() {
	if a.borrowed {
		return
	}
	r := a.raw

	fuseMu.Lock()
	if r.freed {
		fuseMu.Unlock()
		return
	}
	r.freed = true
	root := r.group.find()
	root.refs--
	last := root.refs == 0
	var chain *block
	if last {
		chain = appendChain(r.head, root.orphans)
		root.orphans = nil
	} else {
		root.orphans = appendChain(r.head, root.orphans)
	}
	r.head = nil
	fuseMu.Unlock()

	if last {
		releaseChain(chain)
		r.logEvent("msg", "fuse group freed")
	}
}
