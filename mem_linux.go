//go:build linux

package arena

import "golang.org/x/sys/unix"

// mmapThreshold: blocks at least this large bypass the Go heap and come
// straight from the OS. Keeps multi-megabyte message arenas from inflating
// the heap footprint between collections.
const mmapThreshold = 1 << 16

func allocBlockMem(size int) ([]byte, bool) {
	if size >= mmapThreshold {
		buf, err := unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
		if err == nil {
			return buf, true
		}
		// Fall through to the heap; if that fails too, make panics and
		// the process halts, which is the contract for arena OOM.
	}
	return make([]byte, size), false
}

func freeBlockMem(buf []byte) {
	_ = unix.Munmap(buf)
}
