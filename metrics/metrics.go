// Package metrics exports UUIDv7 generator activity as Prometheus counters.
//
// A Collector implements uuidv7.Observer:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer)
//	gen := uuidv7.NewGenerator(uuidv7.WithObserver(c))
//
// Clock regressions and sequence wraps are the two events that weaken the
// ordering guarantee, so they are worth alerting on.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Lzww0608/uuidv7"
)

const namespace = "uuidv7"

// Collector counts generation events by kind.
type Collector struct {
	generated *prometheus.CounterVec
}

var _ uuidv7.Observer = (*Collector)(nil)

// NewCollector creates the counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	return &Collector{
		generated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "UUIDs generated, by sequence transition.",
		}, []string{"event"}),
	}
}

// Observe increments the counter for e.
func (c *Collector) Observe(e uuidv7.Event) {
	c.generated.WithLabelValues(e.String()).Inc()
}

// Count returns the current value for e. Intended for tests and debug output.
func (c *Collector) Count(e uuidv7.Event) float64 {
	return testValue(c.generated.WithLabelValues(e.String()))
}
