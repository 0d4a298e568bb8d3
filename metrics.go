package gridtree

import "github.com/prometheus/client_golang/prometheus"

// Collector adapts a Tree to prometheus.Collector, computing every gauge
// value on demand from the tree's live state at scrape time rather than
// tracking counters on the mutation path. A Tree is typically instantiated
// many times per process (one per spatial domain), so gauges are collected
// per-instance through this type instead of registered as package-level
// globals.
type Collector struct {
	tree   *Tree
	labels prometheus.Labels

	size  *prometheus.Desc
	nodes *prometheus.Desc
	depth *prometheus.Desc
}

// NewCollector returns a Collector reporting on t. name distinguishes
// multiple trees registered against the same registry (e.g. one per game
// zone or dataset).
func NewCollector(t *Tree, name string) *Collector {
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		tree:   t,
		labels: labels,
		size: prometheus.NewDesc(
			"gridtree_values", "Number of distinct values currently stored.",
			nil, labels,
		),
		nodes: prometheus.NewDesc(
			"gridtree_nodes", "Number of live nodes in the tree's arena.",
			nil, labels,
		),
		depth: prometheus.NewDesc(
			"gridtree_depth", "Number of grid levels from the root down to the finest node currently in the tree.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.nodes
	ch <- c.depth
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.tree.Size()))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(c.tree.Nodes()))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(c.tree.Depth()))
}
