package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	mu      sync.Mutex
	largest float64

	countTotal      *prometheus.CounterVec
	countDuration   *prometheus.HistogramVec
	countLargestN   prometheus.Gauge
	decodeTotal     *prometheus.CounterVec
	decodeDuration  *prometheus.HistogramVec
	decodeChecked   *prometheus.CounterVec
	decodePruned    *prometheus.CounterVec
	decodeSolutions *prometheus.CounterVec
	invalidInputs   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements Collector.
var _ Collector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "invpart" if empty)
//
// Returns:
//   - *PrometheusCollector: A Collector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "invpart"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.countTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "counts_total",
			Help:      "Total p(n) evaluations by method.",
		}, []string{"method"})

		p.countDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "count_duration_seconds",
			Help:      "Duration of p(n) evaluations in seconds by method.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"method"})

		p.countLargestN = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partition",
			Name:      "largest_n",
			Help:      "Largest n evaluated by this process.",
		})

		p.decodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "codec",
			Name:      "decodes_total",
			Help:      "Total decode runs by strategy.",
		}, []string{"strategy"})

		p.decodeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "codec",
			Name:      "decode_duration_seconds",
			Help:      "Duration of decode runs in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms .. ~4m
		}, []string{"strategy"})

		p.decodeChecked = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "codec",
			Name:      "nodes_checked_total",
			Help:      "Search nodes visited by strategy.",
		}, []string{"strategy"})

		p.decodePruned = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "codec",
			Name:      "nodes_pruned_total",
			Help:      "Search branches cut by bounds by strategy.",
		}, []string{"strategy"})

		p.decodeSolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "codec",
			Name:      "solutions_total",
			Help:      "Candidate passwords found by strategy.",
		}, []string{"strategy"})

		p.invalidInputs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "invalid_inputs_total",
			Help:      "Rejected inputs by reason.",
		}, []string{"reason"})

		p.reg.MustRegister(p.countTotal)
		p.reg.MustRegister(p.countDuration)
		p.reg.MustRegister(p.countLargestN)
		p.reg.MustRegister(p.decodeTotal)
		p.reg.MustRegister(p.decodeDuration)
		p.reg.MustRegister(p.decodeChecked)
		p.reg.MustRegister(p.decodePruned)
		p.reg.MustRegister(p.decodeSolutions)
		p.reg.MustRegister(p.invalidInputs)
	})
}

// ObserveCount increments the method counter, observes latency and tracks the largest n.
func (p *PrometheusCollector) ObserveCount(method string, n int, seconds float64) {
	p.ensureRegistered()
	p.countTotal.WithLabelValues(method).Inc()
	p.countDuration.WithLabelValues(method).Observe(seconds)
	p.raiseLargest(float64(n))
}

// ObserveDecode records the run, its search statistics and the solutions found.
func (p *PrometheusCollector) ObserveDecode(strategy string, checked, pruned int64, solutions int, seconds float64) {
	p.ensureRegistered()
	p.decodeTotal.WithLabelValues(strategy).Inc()
	p.decodeDuration.WithLabelValues(strategy).Observe(seconds)
	p.decodeChecked.WithLabelValues(strategy).Add(float64(checked))
	p.decodePruned.WithLabelValues(strategy).Add(float64(pruned))
	p.decodeSolutions.WithLabelValues(strategy).Add(float64(solutions))
}

// IncInvalidInput increments the rejected input counter for reason.
func (p *PrometheusCollector) IncInvalidInput(reason string) {
	p.ensureRegistered()
	p.invalidInputs.WithLabelValues(reason).Inc()
}

func (p *PrometheusCollector) raiseLargest(n float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n > p.largest {
		p.largest = n
		p.countLargestN.Set(n)
	}
}
