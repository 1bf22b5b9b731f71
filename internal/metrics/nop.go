package metrics

import "github.com/javdevA/SmartDormCapstonePro/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	engine, err := dormalloc.NewEngine(cfg, dormalloc.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AllocationMetrics implementation

// RecordAllocation discards the allocation outcome metric.
func (n *NopMetrics) RecordAllocation(_ /* kind */ types.StrategyKind, _ /* assigned */, _ /* unassigned */ int, _ /* duration */ float64) {
	// No-op
}

// RecordInvalidIDs discards the invalid identifier metric.
func (n *NopMetrics) RecordInvalidIDs(_ /* count */ int) {
	// No-op
}

// RecordFairness discards the fairness snapshot.
func (n *NopMetrics) RecordFairness(_ /* kind */ types.StrategyKind, _ /* m */ types.Metrics) {
	// No-op
}

// SimulationMetrics implementation

// RecordSimulation discards the simulation metric.
func (n *NopMetrics) RecordSimulation(_ /* trials */ int, _ /* duration */ float64) {
	// No-op
}

// WaitlistMetrics implementation

// RecordReallocation discards the reallocation metric.
func (n *NopMetrics) RecordReallocation(_ /* placed */, _ /* remaining */ int) {
	// No-op
}
