package arena

import "github.com/prometheus/client_golang/prometheus"

// StatsSource is anything that can report arena usage. Arena satisfies it,
// but a prometheus scrape runs on its own goroutine, so hand the Collector a
// SafeArena (or otherwise synchronized source) unless the arena is idle.
type StatsSource interface {
	Stats() Stats
}

// Collector exports an arena's usage as prometheus metrics. Register it
// against the process registerer:
//
//	sa := arena.NewSafeArena()
//	prometheus.MustRegister(arena.NewCollector(sa, prometheus.Labels{"pool": "ingest"}))
type Collector struct {
	source StatsSource

	bytesInUse   *prometheus.Desc
	capacity     *prometheus.Desc
	blocks       *prometheus.Desc
	groupMembers *prometheus.Desc
}

// NewCollector returns a Collector reading from source. constLabels
// distinguishes multiple arenas in one registry and may be nil.
func NewCollector(source StatsSource, constLabels prometheus.Labels) *Collector {
	return &Collector{
		source: source,
		bytesInUse: prometheus.NewDesc(
			"arena_in_use_bytes",
			"Bytes handed out by the arena, including alignment padding.",
			nil, constLabels),
		capacity: prometheus.NewDesc(
			"arena_capacity_bytes",
			"Total capacity of all blocks in the arena's chain.",
			nil, constLabels),
		blocks: prometheus.NewDesc(
			"arena_blocks",
			"Number of blocks in the arena's chain.",
			nil, constLabels),
		groupMembers: prometheus.NewDesc(
			"arena_fuse_group_members",
			"Live arenas in this arena's fuse group.",
			nil, constLabels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesInUse
	ch <- c.capacity
	ch <- c.blocks
	ch <- c.groupMembers
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(s.BytesInUse))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(s.Blocks))
	ch <- prometheus.MustNewConstMetric(c.groupMembers, prometheus.GaugeValue, float64(s.GroupMembers))
}
