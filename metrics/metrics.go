// Package metrics exposes Prometheus instruments for significance runs.
//
// A Collector is registered on a caller-supplied Registerer, never on the
// global default, so several runs (or tests) can own independent registries.
// Every method is safe on a nil *Collector and then does nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ricci/errors"
)

// Replicate outcome labels.
const (
	StatusOK        = "ok"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Exclusion scope labels.
const (
	ScopeReal = "real"
	ScopeNull = "null"
)

// Collector groups the run instruments.
type Collector struct {
	replicates *prometheus.CounterVec
	excluded   *prometheus.CounterVec
	clamped    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewCollector creates the instruments and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, errors.New("metrics: registerer is nil")
	}
	c := &Collector{
		replicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ricci_replicates_total",
			Help: "Null replicates processed, by null model and outcome",
		}, []string{"variant", "status"}),
		excluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ricci_excluded_edges_total",
			Help: "Edges excluded because the transport solver failed",
		}, []string{"scope"}),
		clamped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ricci_clamped_edges_total",
			Help: "Edges whose curvature was clamped into [-1, 1]",
		}, []string{"scope"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ricci_replicate_duration_seconds",
			Help:    "Wall time of one null replicate",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"variant"}),
	}
	for _, col := range []prometheus.Collector{c.replicates, c.excluded, c.clamped, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "metrics: register")
		}
	}
	return c, nil
}

// ObserveReplicate records one replicate outcome and its duration.
func (c *Collector) ObserveReplicate(variant, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.replicates.WithLabelValues(variant, status).Inc()
	if status == StatusOK {
		c.duration.WithLabelValues(variant).Observe(d.Seconds())
	}
}

// AddExcluded adds n excluded edges under scope.
func (c *Collector) AddExcluded(scope string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.excluded.WithLabelValues(scope).Add(float64(n))
}

// AddClamped adds n clamped edges under scope.
func (c *Collector) AddClamped(scope string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.clamped.WithLabelValues(scope).Add(float64(n))
}
