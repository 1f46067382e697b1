package lrumap

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a Map's lifetime counters and current size as
// Prometheus metrics. Collection reads a consistent stats snapshot, so
// the exported counters always agree with Stats. Register with any
// prometheus.Registerer:
//
//	reg.MustRegister(lrumap.NewCollector(m, "myservice"))
type Collector[K comparable, V any] struct {
	m *Map[K, V]

	inserts   *prometheus.Desc
	overflows *prometheus.Desc
	finds     *prometheus.Desc
	findHits  *prometheus.Desc
	erases    *prometheus.Desc
	clears    *prometheus.Desc
	size      *prometheus.Desc
}

// NewCollector creates a Collector for m. The namespace becomes the
// metric name prefix, e.g. "myservice_lrumap_inserts_total".
func NewCollector[K comparable, V any](m *Map[K, V], namespace string) *Collector[K, V] {
	name := func(s string) string {
		return prometheus.BuildFQName(namespace, "lrumap", s)
	}
	return &Collector[K, V]{
		m:         m,
		inserts:   prometheus.NewDesc(name("inserts_total"), "Total number of Insert calls.", nil, nil),
		overflows: prometheus.NewDesc(name("overflows_total"), "Total number of capacity evictions.", nil, nil),
		finds:     prometheus.NewDesc(name("finds_total"), "Total number of Find calls.", nil, nil),
		findHits:  prometheus.NewDesc(name("find_hits_total"), "Total number of successful Find calls.", nil, nil),
		erases:    prometheus.NewDesc(name("erases_total"), "Total number of Erase calls.", nil, nil),
		clears:    prometheus.NewDesc(name("clears_total"), "Total number of Clear calls.", nil, nil),
		size:      prometheus.NewDesc(name("size"), "Current number of entries.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector[K, V]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.inserts
	ch <- c.overflows
	ch <- c.finds
	ch <- c.findHits
	ch <- c.erases
	ch <- c.clears
	ch <- c.size
}

// Collect implements prometheus.Collector.
func (c *Collector[K, V]) Collect(ch chan<- prometheus.Metric) {
	snap := c.m.Stats()
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(snap.Inserts))
	ch <- prometheus.MustNewConstMetric(c.overflows, prometheus.CounterValue, float64(snap.Overflows))
	ch <- prometheus.MustNewConstMetric(c.finds, prometheus.CounterValue, float64(snap.Finds))
	ch <- prometheus.MustNewConstMetric(c.findHits, prometheus.CounterValue, float64(snap.FindHits))
	ch <- prometheus.MustNewConstMetric(c.erases, prometheus.CounterValue, float64(snap.Erases))
	ch <- prometheus.MustNewConstMetric(c.clears, prometheus.CounterValue, float64(snap.Clears))
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.m.Size()))
}
