package metrics

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Used when no metrics file is configured.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements Collector.
var _ Collector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ObserveCount discards the count metric.
func (n *NopMetrics) ObserveCount(_ /* method */ string, _ /* n */ int, _ /* seconds */ float64) {
	// No-op
}

// ObserveDecode discards the decode metric.
func (n *NopMetrics) ObserveDecode(_ /* strategy */ string, _ /* checked */, _ /* pruned */ int64, _ /* solutions */ int, _ /* seconds */ float64) {
	// No-op
}

// IncInvalidInput discards the invalid input metric.
func (n *NopMetrics) IncInvalidInput(_ /* reason */ string) {
	// No-op
}
