package metrics

import (
	"github.com/pluto-org-co/randomint/random"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "sampler"

// Collector exposes the statistics of a sampler. Values are read on every
// scrape.
type Collector struct {
	sampler *random.Sampler

	draws         *prometheus.Desc
	rejections    *prometheus.Desc
	insecureDraws *prometheus.Desc
	failures      *prometheus.Desc
	secure        *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(namespace string, sampler *random.Sampler) (c *Collector) {
	return &Collector{
		sampler: sampler,
		draws: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "draws_total"),
			"Random 53-bit values drawn, rejected ones included",
			nil, nil,
		),
		rejections: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "rejections_total"),
			"Draws discarded because they fell in the biased tail",
			nil, nil,
		),
		insecureDraws: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "insecure_draws_total"),
			"Draws served by the insecure fallback",
			nil, nil,
		),
		failures: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "failures_total"),
			"Calls that failed to obtain entropy",
			nil, nil,
		),
		secure: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "secure_source"),
			"Whether a secure random facility is in use",
			[]string{"facility"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.draws
	ch <- c.rejections
	ch <- c.insecureDraws
	ch <- c.failures
	ch <- c.secure
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.sampler.Stats()
	ch <- prometheus.MustNewConstMetric(c.draws, prometheus.CounterValue, float64(stats.Draws))
	ch <- prometheus.MustNewConstMetric(c.rejections, prometheus.CounterValue, float64(stats.Rejections))
	ch <- prometheus.MustNewConstMetric(c.insecureDraws, prometheus.CounterValue, float64(stats.InsecureDraws))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(stats.Failures))

	var secure float64
	facility := c.sampler.Facility()
	if c.sampler.Secure() {
		secure = 1
	} else {
		facility = "none"
	}
	ch <- prometheus.MustNewConstMetric(c.secure, prometheus.GaugeValue, secure, facility)
}
