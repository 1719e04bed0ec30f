package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type poolCollector struct {
	pool PoolStatter

	total        *prometheus.Desc
	idle         *prometheus.Desc
	acquired     *prometheus.Desc
	constructing *prometheus.Desc
	max          *prometheus.Desc
	acquires     *prometheus.Desc
	emptyAcq     *prometheus.Desc
	canceledAcq  *prometheus.Desc
	acquireSecs  *prometheus.Desc
}

func newPoolCollector(p PoolStatter) *poolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, nil, nil)
	}

	return &poolCollector{
		pool:         p,
		total:        desc("clients", "Signing clients currently in the pool."),
		idle:         desc("idle_clients", "Signing clients waiting to be acquired."),
		acquired:     desc("acquired_clients", "Signing clients currently in use."),
		constructing: desc("constructing_clients", "Signing clients being created."),
		max:          desc("max_clients", "Maximum pool size."),
		acquires:     desc("acquires_total", "Successful acquires."),
		emptyAcq:     desc("empty_acquires_total", "Acquires that had to wait for a new or released client."),
		canceledAcq:  desc("canceled_acquires_total", "Acquires canceled by their context."),
		acquireSecs:  desc("acquire_duration_seconds_total", "Total time spent acquiring clients."),
	}
}

func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	stat := c.pool.Stat()

	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(stat.TotalResources()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(stat.IdleResources()))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(stat.AcquiredResources()))
	ch <- prometheus.MustNewConstMetric(c.constructing, prometheus.GaugeValue, float64(stat.ConstructingResources()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(stat.MaxResources()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(stat.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.emptyAcq, prometheus.CounterValue, float64(stat.EmptyAcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.canceledAcq, prometheus.CounterValue, float64(stat.CanceledAcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.acquireSecs, prometheus.CounterValue, stat.AcquireDuration().Seconds())
}
