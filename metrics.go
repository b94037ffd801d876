package canal

import "github.com/prometheus/client_golang/prometheus"

// Metrics descriptors for a Channel registered as a prometheus.Collector.
// Unlike a process-wide metrics registry, each Channel collects its own
// gauges on demand from Describe/Collect rather than updating package-level
// vars from inside Push, so registering the same *Channel[T] twice is the
// only way to get duplicate series.
var (
	channelLengthDesc = prometheus.NewDesc(
		"canal_channel_length",
		"Number of values currently held by the channel.",
		[]string{"channel"}, nil,
	)
	channelSegmentsDesc = prometheus.NewDesc(
		"canal_channel_segments",
		"Number of segments the channel has grown to.",
		[]string{"channel"}, nil,
	)
	channelSegmentCapacityDesc = prometheus.NewDesc(
		"canal_segment_capacity",
		"Fixed capacity of each segment in the channel.",
		[]string{"channel"}, nil,
	)
	notifierWaitersDesc = prometheus.NewDesc(
		"canal_notifier_waiters",
		"Number of goroutines currently parked waiting for a value.",
		[]string{"channel"}, nil,
	)
)

// Describe implements prometheus.Collector.
func (c *Channel[T]) Describe(ch chan<- *prometheus.Desc) {
	ch <- channelLengthDesc
	ch <- channelSegmentsDesc
	ch <- channelSegmentCapacityDesc
	ch <- notifierWaitersDesc
}

// Collect implements prometheus.Collector.
func (c *Channel[T]) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(channelLengthDesc, prometheus.GaugeValue, float64(c.Len()), c.metricsLabel)
	ch <- prometheus.MustNewConstMetric(channelSegmentsDesc, prometheus.GaugeValue, float64(c.segmentCount()), c.metricsLabel)
	ch <- prometheus.MustNewConstMetric(channelSegmentCapacityDesc, prometheus.GaugeValue, float64(c.segmentCapacity), c.metricsLabel)
	ch <- prometheus.MustNewConstMetric(notifierWaitersDesc, prometheus.GaugeValue, float64(c.notifier.Count()), c.metricsLabel)
}
