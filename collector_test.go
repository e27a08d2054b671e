package arena

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	sa := NewSafeArenaWithOptions(Options{InitialBlockSize: 1024})
	defer sa.Free()

	c := NewCollector(sa, nil)
	require.Equal(t, 4, testutil.CollectAndCount(c))

	expected := `# HELP arena_blocks Number of blocks in the arena's chain.
# TYPE arena_blocks gauge
arena_blocks 1
# HELP arena_capacity_bytes Total capacity of all blocks in the arena's chain.
# TYPE arena_capacity_bytes gauge
arena_capacity_bytes 1024
# HELP arena_fuse_group_members Live arenas in this arena's fuse group.
# TYPE arena_fuse_group_members gauge
arena_fuse_group_members 1
# HELP arena_in_use_bytes Bytes handed out by the arena, including alignment padding.
# TYPE arena_in_use_bytes gauge
arena_in_use_bytes 0
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorConstLabels(t *testing.T) {
	sa := NewSafeArena()
	defer sa.Free()

	c := NewCollector(sa, map[string]string{"pool": "ingest"})
	require.Equal(t, 4, testutil.CollectAndCount(c))

	problems, err := testutil.CollectAndLint(c)
	require.NoError(t, err)
	require.Empty(t, problems)
}
