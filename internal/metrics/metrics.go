// Package metrics records invpart counters and timings.
//
// Collector has two implementations: NopMetrics, which discards everything,
// and PrometheusCollector, which registers its series lazily on first use.
package metrics

// Collector receives measurements from the command layer.
type Collector interface {
	// ObserveCount records one p(n) evaluation with the method used and its duration.
	ObserveCount(method string, n int, seconds float64)

	// ObserveDecode records one decode run and its search statistics.
	ObserveDecode(strategy string, checked, pruned int64, solutions int, seconds float64)

	// IncInvalidInput counts rejected inputs by reason.
	IncInvalidInput(reason string)
}
