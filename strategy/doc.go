// Package strategy provides the built-in allocation strategy implementations.
//
// Allocation strategies determine how students are distributed across dorms.
// The package includes three built-in strategies, one per types.StrategyKind:
//
//   - Greedy: Each student takes the highest-scoring dorm that still has capacity (recommended)
//   - Random: Each student takes a uniformly random dorm with capacity (comparison baseline)
//   - PriorityFirst: Greedy placement in descending priority order, without shuffling
//
// # Strategy Selection Guide
//
// Greedy:
//   - Maximizes preference satisfaction for whoever is processed first
//   - Shuffles processing order by default so contention is not biased by input order
//   - Skips students whose identifiers fail checksum validation, reporting them once
//
// Random:
//   - Ignores preferences entirely; useful to show what the scoring buys
//   - Consumes input order as given
//
// PriorityFirst:
//   - Deterministic: stable sort by priority, then greedy placement
//   - Use when high-priority applicants must be served before contention sets in
//
// All strategies use a fresh remaining-capacity working copy per call, never
// exceed a dorm's capacity and record students that could not be placed as
// explicit types.Unassigned entries.
package strategy
