package dormalloc

import (
	"context"
	"fmt"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/javdevA/SmartDormCapstonePro/fairness"
	"github.com/javdevA/SmartDormCapstonePro/internal/hooks"
	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/roommate"
	"github.com/javdevA/SmartDormCapstonePro/simulation"
	"github.com/javdevA/SmartDormCapstonePro/strategy"
	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
	"github.com/javdevA/SmartDormCapstonePro/waitlist"
)

// Comparison is one strategy's row in a Compare result.
type Comparison struct {
	Kind StrategyKind `json:"strategy" yaml:"strategy"`
	Summary
}

// Engine ties the allocation components together and remembers the latest
// allocation produced by each strategy.
//
// Each strategy run replaces the previous allocation of its kind; results are
// never merged. All methods are safe for concurrent use.
type Engine struct {
	cfg Config

	hooks   Hooks
	metrics MetricsCollector
	logger  Logger

	runner *simulation.Runner
	latest *xsync.Map[StrategyKind, Allocation]
}

// NewEngine creates an allocation engine.
//
// Parameters:
//   - cfg: Configuration (defaults are filled in place, then validated)
//   - opts: Optional configuration (WithLogger, WithMetrics, WithHooks)
//
// Returns:
//   - *Engine: Initialized engine
//   - error: ErrInvalidConfig (wrapped) for a nil or invalid configuration
//
// Example:
//
//	cfg := dormalloc.DefaultConfig()
//	engine, err := dormalloc.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	alloc, err := engine.Allocate(ctx, dormalloc.KindGreedy, students, dorms)
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	e := &Engine{
		cfg:     *cfg,
		hooks:   hooks.Fill(options.hooks),
		metrics: metricsCollector,
		logger:  loggerInstance,
		latest:  xsync.NewMap[StrategyKind, Allocation](),
	}
	e.runner = simulation.NewRunner(
		simulation.WithSeed(cfg.Seed),
		simulation.WithParallelism(cfg.Simulation.Parallelism),
		simulation.WithLogger(loggerInstance),
		simulation.WithMetrics(metricsCollector),
	)

	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Allocate runs one strategy and stores the result as the latest allocation of its kind.
//
// Parameters:
//   - ctx: Passed to hooks
//   - kind: Strategy to run
//   - students: Cohort to allocate
//   - dorms: Candidate dorms
//
// Returns:
//   - Allocation: The new allocation (the caller owns it)
//   - error: ErrUnknownStrategy or ErrInvalidRecord (wrapped)
func (e *Engine) Allocate(ctx context.Context, kind StrategyKind, students []Student, dorms []Dorm) (Allocation, error) {
	s, err := strategy.New(kind, e.strategyOptions()...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	alloc, err := s.Allocate(students, dorms)
	if err != nil {
		return nil, fmt.Errorf("%s allocation: %w", kind, err)
	}
	elapsed := time.Since(start)

	// Random never validates identifiers, so only the validating strategies report them
	if kind != KindRandom {
		if _, invalid := studentid.Partition(students); len(invalid) > 0 {
			e.metrics.RecordInvalidIDs(len(invalid))
		}
	}

	summary := fairness.Summarize(students, alloc)
	e.metrics.RecordAllocation(kind, summary.Assigned, summary.Unallocated, elapsed.Seconds())
	e.metrics.RecordFairness(kind, summary.Metrics)
	e.logger.Info("allocation completed",
		"strategy", kind.String(),
		"assigned", summary.Assigned,
		"unallocated", summary.Unallocated,
		"top1", summary.Top1Rate,
		"duration", elapsed,
	)

	e.replace(ctx, kind, alloc)

	return alloc, nil
}

// AllocateFrom loads the cohort from src and runs one strategy over it.
func (e *Engine) AllocateFrom(ctx context.Context, kind StrategyKind, src CohortSource) (Allocation, error) {
	students, dorms, err := loadCohort(ctx, src)
	if err != nil {
		return nil, err
	}

	return e.Allocate(ctx, kind, students, dorms)
}

// AllocateDefault runs the configured default strategy.
func (e *Engine) AllocateDefault(ctx context.Context, students []Student, dorms []Dorm) (Allocation, error) {
	return e.Allocate(ctx, e.cfg.Strategy, students, dorms)
}

// Compare runs every built-in strategy on the same input and summarizes each.
//
// Each run also becomes the latest allocation of its kind.
//
// Returns:
//   - []Comparison: One row per strategy in types.StrategyKinds order
//   - error: First allocation error
func (e *Engine) Compare(ctx context.Context, students []Student, dorms []Dorm) ([]Comparison, error) {
	rows := make([]Comparison, 0, len(types.StrategyKinds))
	for _, kind := range types.StrategyKinds {
		alloc, err := e.Allocate(ctx, kind, students, dorms)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Comparison{Kind: kind, Summary: fairness.Summarize(students, alloc)})
	}

	return rows, nil
}

// Evaluate computes fairness metrics for any allocation.
func (e *Engine) Evaluate(students []Student, alloc Allocation) Metrics {
	return fairness.Compute(students, alloc)
}

// Simulate averages greedy fairness over repeated shuffled trials.
//
// Parameters:
//   - trials: Number of trials; values <= 0 use the configured trial count
func (e *Engine) Simulate(ctx context.Context, students []Student, dorms []Dorm, trials int) (SimulationResult, error) {
	if trials <= 0 {
		trials = e.cfg.Simulation.Trials
	}

	return e.runner.Run(ctx, students, dorms, trials)
}

// Latest returns a copy of the latest allocation produced for kind.
func (e *Engine) Latest(kind StrategyKind) (Allocation, bool) {
	alloc, ok := e.latest.Load(kind)
	if !ok {
		return nil, false
	}

	return alloc.Clone(), true
}

// Waitlist lists students without a dorm in the latest allocation of kind.
//
// Without a previous run every student is waitlisted.
func (e *Engine) Waitlist(kind StrategyKind, students []Student) []WaitlistEntry {
	alloc, _ := e.latest.Load(kind)

	return waitlist.Build(students, alloc)
}

// Unallocated counts students without a dorm in the latest allocation of kind.
func (e *Engine) Unallocated(kind StrategyKind, students []Student) int {
	return len(e.Waitlist(kind, students))
}

// Reallocate places the waitlist of kind into leftover capacity.
//
// The result replaces the latest allocation of kind.
//
// Parameters:
//   - ctx: Passed to hooks
//   - kind: Strategy whose latest allocation is extended
//   - students: Full cohort; the waitlist is derived from it
//   - dorms: Dorms with declared capacities
//
// Returns:
//   - Allocation: Previous assignments plus new placements
//   - error: ErrInvalidRecord (wrapped) for invalid dorm records
func (e *Engine) Reallocate(ctx context.Context, kind StrategyKind, students []Student, dorms []Dorm) (Allocation, error) {
	current, _ := e.latest.Load(kind)
	waiting := waitlist.Students(waitlist.Build(students, current))

	next, err := waitlist.Reallocate(waiting, dorms, current,
		waitlist.WithLogger(e.logger),
		waitlist.WithMetrics(e.metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("reallocate %s: %w", kind, err)
	}

	var placed, still []string
	for _, s := range waiting {
		dorm, seen := next[s.ID]
		switch {
		case !seen:
			// invalid identifier, never considered
		case dorm == Unassigned:
			still = append(still, s.ID)
		default:
			placed = append(placed, s.ID)
		}
	}
	e.logger.Info("waitlist reallocated",
		"strategy", kind.String(),
		"placed", len(placed),
		"waiting", len(still),
	)

	e.replace(ctx, kind, next)
	e.callHook(ctx, "OnWaitlistReallocated", e.hooks.OnWaitlistReallocated(ctx, placed, still))

	return next, nil
}

// ReallocateFrom loads the cohort from src and reallocates the waitlist of kind.
func (e *Engine) ReallocateFrom(ctx context.Context, kind StrategyKind, src CohortSource) (Allocation, error) {
	students, dorms, err := loadCohort(ctx, src)
	if err != nil {
		return nil, err
	}

	return e.Reallocate(ctx, kind, students, dorms)
}

// SuggestRoommates proposes roommate pairs using the configured limits.
func (e *Engine) SuggestRoommates(students []Student) []RoommatePair {
	return roommate.Suggest(students, e.cfg.Roommates.MaxPairs, roommate.WithMinScore(e.cfg.Roommates.MinScore))
}

// Capacity returns the total declared capacity of dorms.
func (e *Engine) Capacity(dorms []Dorm) int {
	total := 0
	for _, d := range dorms {
		total += max(0, d.Capacity)
	}

	return total
}

func (e *Engine) strategyOptions() []strategy.Option {
	return []strategy.Option{
		strategy.WithRandomizeOrder(*e.cfg.RandomizeOrder),
		strategy.WithLogger(e.logger),
	}
}

// replace stores next as the latest allocation of kind and notifies hooks.
func (e *Engine) replace(ctx context.Context, kind StrategyKind, next Allocation) {
	prev, _ := e.latest.LoadAndStore(kind, next.Clone())
	e.callHook(ctx, "OnAllocationChanged", e.hooks.OnAllocationChanged(ctx, kind, prev, next.Clone()))
}

func (e *Engine) callHook(ctx context.Context, name string, err error) {
	if err == nil {
		return
	}

	e.logger.Error("hook failed", "hook", name, "error", err)
	if herr := e.hooks.OnError(ctx, fmt.Errorf("%s: %w", name, err)); herr != nil {
		e.logger.Error("error hook failed", "error", herr)
	}
}

func loadCohort(ctx context.Context, src CohortSource) ([]Student, []Dorm, error) {
	students, err := src.ListStudents(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list students: %w", err)
	}
	dorms, err := src.ListDorms(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list dorms: %w", err)
	}

	return students, dorms, nil
}
