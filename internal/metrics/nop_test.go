package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_DiscardsEverything(t *testing.T) {
	metrics := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		metrics.ObserveCount("coin-change", 5, 0.001)
		metrics.ObserveCount("", -1, -1)
		metrics.ObserveDecode("backtracking", 10, 2, 1, 0.5)
		metrics.ObserveDecode("", 0, 0, 0, 0)
		metrics.IncInvalidInput("not_a_number")
	})
}
