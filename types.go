package dormalloc

import "github.com/javdevA/SmartDormCapstonePro/types"

// Re-export types from the types package.
//
// Internal packages depend on `types` rather than the root package, which
// keeps the import graph acyclic while users can still write
// dormalloc.Student, dormalloc.Allocation and so on.
type (
	Student          = types.Student
	Dorm             = types.Dorm
	Allocation       = types.Allocation
	Metrics          = types.Metrics
	Summary          = types.Summary
	SimulationResult = types.SimulationResult
	WaitlistEntry    = types.WaitlistEntry
	RoommatePair     = types.RoommatePair
	StrategyKind     = types.StrategyKind
)

// Re-export interfaces from the types package for convenience.
type (
	AllocationStrategy = types.AllocationStrategy
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export strategy kinds and the unassigned marker.
const (
	KindGreedy        = types.KindGreedy
	KindRandom        = types.KindRandom
	KindPriorityFirst = types.KindPriorityFirst

	Unassigned = types.Unassigned
)

// Hooks re-exports the engine event callbacks.
type Hooks = types.Hooks

// CohortSource re-exports the student and dorm provider interface.
type CohortSource = types.CohortSource
