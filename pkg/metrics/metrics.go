package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/puerro-dev/puerro/pkg/vdom"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "puerro").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for repaint duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Collector holds the reconciler metrics. It implements vdom.Recorder so
// the differ reports applied patches directly.
type Collector struct {
	repaints        prometheus.Counter
	repaintDuration prometheus.Histogram
	patches         *prometheus.CounterVec
}

// NewCollector creates and registers the reconciler metrics.
func NewCollector(opts ...Option) *Collector {
	cfg := Config{
		Namespace: "puerro",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Collector{
		repaints: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "repaints_total",
			Help:        "Total number of repaint cycles.",
			ConstLabels: cfg.ConstLabels,
		}),
		repaintDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "repaint_duration_seconds",
			Help:        "Duration of repaint cycles in seconds.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}),
		patches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of applied patch operations by op.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"op"}),
	}
}

// ObserveRepaint records one repaint cycle and its duration.
func (c *Collector) ObserveRepaint(d time.Duration) {
	c.repaints.Inc()
	c.repaintDuration.Observe(d.Seconds())
}

// Record implements vdom.Recorder.
func (c *Collector) Record(p vdom.Patch) {
	c.patches.WithLabelValues(p.Op.String()).Inc()
}
