// Package metrics exposes Prometheus instrumentation for view lifecycle
// operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the lifecycle metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "viewkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the lifecycle metrics.
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

func defaultConfig() Config {
	return Config{
		Namespace: "viewkit",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Lifecycle holds the Prometheus metrics for view lifecycle operations.
//
// Metrics collected:
//   - viewkit_renders_total: Counter of render attempts by node and status
//   - viewkit_render_duration_seconds: Histogram of render duration by node
//   - viewkit_clears_total: Counter of clear operations
//   - viewkit_destroys_total: Counter of destroy operations
//   - viewkit_errors_total: Counter of recoverable errors by code
//   - viewkit_rendered_nodes: Gauge of currently rendered nodes
//   - viewkit_ids_allocated_total: Counter of allocated anchor identifiers
type Lifecycle struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	clearsTotal    prometheus.Counter
	destroysTotal  prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	renderedNodes  prometheus.Gauge
	idsAllocated   prometheus.Counter
}

// New creates lifecycle metrics registered with the configured registry.
func New(opts ...Option) *Lifecycle {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Lifecycle{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render attempts by node and status",
			ConstLabels: config.ConstLabels,
		}, []string{"node", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds by node",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"node"}),

		clearsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "clears_total",
			Help:        "Total number of clear operations",
			ConstLabels: config.ConstLabels,
		}),

		destroysTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "destroys_total",
			Help:        "Total number of destroy operations",
			ConstLabels: config.ConstLabels,
		}),

		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of recoverable lifecycle errors by code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		renderedNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_nodes",
			Help:        "Number of currently rendered nodes",
			ConstLabels: config.ConstLabels,
		}),

		idsAllocated: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ids_allocated_total",
			Help:        "Total number of allocated anchor identifiers",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordRender records a render attempt. status is "success", "cancelled",
// or "error".
func (m *Lifecycle) RecordRender(node, status string, seconds float64) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(node, status).Inc()
	if status == "success" {
		m.renderDuration.WithLabelValues(node).Observe(seconds)
	}
}

// RecordClear records a clear operation.
func (m *Lifecycle) RecordClear() {
	if m == nil {
		return
	}
	m.clearsTotal.Inc()
}

// RecordDestroy records a destroy operation.
func (m *Lifecycle) RecordDestroy() {
	if m == nil {
		return
	}
	m.destroysTotal.Inc()
}

// RecordError records a recoverable lifecycle error by code.
func (m *Lifecycle) RecordError(code string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(code).Inc()
}

// NodeRendered increments the rendered-nodes gauge.
func (m *Lifecycle) NodeRendered() {
	if m == nil {
		return
	}
	m.renderedNodes.Inc()
}

// NodeCleared decrements the rendered-nodes gauge.
func (m *Lifecycle) NodeCleared() {
	if m == nil {
		return
	}
	m.renderedNodes.Dec()
}

// RecordIDAllocated records one anchor identifier allocation.
func (m *Lifecycle) RecordIDAllocated() {
	if m == nil {
		return
	}
	m.idsAllocated.Inc()
}
