// Package types provides core type definitions and interfaces for the dormitory
// allocation engine.
//
// This package contains shared types that are used across multiple packages in the
// module. By keeping these types in a separate package, we avoid import cycles
// between the root package and the strategy, fairness, simulation, roommate and
// waitlist packages.
//
// Key types:
//   - Student, Dorm: Read-only input records supplied by the collaborator layer
//   - Allocation: Student ID to dorm ID mapping produced by one strategy call
//   - Metrics, Summary, SimulationResult: Derived fairness snapshots
//   - StrategyKind: Closed enumeration of the built-in allocation strategies
//   - AllocationStrategy: Common allocate capability
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
