package types

// MetricsCollector defines methods for recording allocation engine metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Simulation trials may record from multiple goroutines, so implementations
// must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	AllocationMetrics
	SimulationMetrics
	WaitlistMetrics
}

// AllocationMetrics defines metrics for single allocation runs.
type AllocationMetrics interface {
	// RecordAllocation records the outcome of one strategy call.
	//
	// Parameters:
	//   - kind: Strategy that produced the allocation
	//   - assigned: Number of students placed in a dorm
	//   - unassigned: Number of students left without a dorm
	//   - duration: Time taken in seconds
	RecordAllocation(kind StrategyKind, assigned, unassigned int, duration float64)

	// RecordInvalidIDs records identifiers skipped because they failed checksum validation.
	RecordInvalidIDs(count int)

	// RecordFairness records the fairness snapshot of the latest allocation for a strategy.
	RecordFairness(kind StrategyKind, m Metrics)
}

// SimulationMetrics defines metrics for the multi-trial simulation runner.
type SimulationMetrics interface {
	// RecordSimulation records a completed simulation.
	//
	// Parameters:
	//   - trials: Number of trials run
	//   - duration: Total wall time in seconds
	RecordSimulation(trials int, duration float64)
}

// WaitlistMetrics defines metrics for waitlist reallocation.
type WaitlistMetrics interface {
	// RecordReallocation records one reallocation pass.
	//
	// Parameters:
	//   - placed: Waitlisted students newly placed
	//   - remaining: Waitlisted students still without a dorm
	RecordReallocation(placed, remaining int)
}
