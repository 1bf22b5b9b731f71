package strategy

import (
	"slices"

	"github.com/javdevA/SmartDormCapstonePro/internal/placement"
	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Greedy implements preference-maximizing greedy allocation.
type Greedy struct {
	opts options
}

var _ types.AllocationStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy strategy.
//
// Each student, in processing order, is placed in the highest-scoring dorm
// (see scoring.Rank) that still has capacity. Processing order is a uniform
// random permutation of the input unless WithRandomizeOrder(false) is given;
// the shuffle is the only nondeterminism and exists so repeated runs sample
// different contention outcomes.
//
// Parameters:
//   - opts: Optional configuration (WithRandomizeOrder, WithRand, WithLogger)
//
// Returns:
//   - *Greedy: Initialized greedy strategy
//
// Example:
//
//	g := strategy.NewGreedy(strategy.WithRandomizeOrder(false))
//	alloc, err := g.Allocate(students, dorms)
func NewGreedy(opts ...Option) *Greedy {
	return &Greedy{opts: applyOptions(opts)}
}

// Kind returns types.KindGreedy.
func (g *Greedy) Kind() types.StrategyKind {
	return types.KindGreedy
}

// Allocate calculates an allocation using greedy placement.
//
// The algorithm:
//  1. Copy the student slice and shuffle it if randomization is enabled
//  2. Skip students whose identifiers fail checksum validation
//  3. Rank dorms by score (stable on ties) and take the first with capacity
//  4. Record students that found no capacity as explicit types.Unassigned
//  5. Emit a single warning listing all skipped identifiers
//
// Parameters:
//   - students: Students to place
//   - dorms: Candidate dorms
//
// Returns:
//   - types.Allocation: Student ID to dorm ID mapping (invalid IDs absent)
//   - error: types.ErrInvalidRecord (wrapped) for negative capacities or duplicate dorm IDs
func (g *Greedy) Allocate(students []types.Student, dorms []types.Dorm) (types.Allocation, error) {
	order := slices.Clone(students)
	if g.opts.randomizeOrder {
		g.opts.shuffle(order)
	}

	return g.allocateOrdered(g.Kind(), order, dorms)
}

// allocateOrdered places students in the given order; kind labels the warning.
func (g *Greedy) allocateOrdered(kind types.StrategyKind, order []types.Student, dorms []types.Dorm) (types.Allocation, error) {
	caps, err := placement.NewCapacities(dorms)
	if err != nil {
		return nil, err
	}

	alloc := make(types.Allocation, len(order))
	var invalid []string

	for _, s := range order {
		if !studentid.IsValid(s.ID) {
			invalid = append(invalid, s.ID)
			continue
		}

		dorm, _ := caps.Place(s, dorms)
		alloc[s.ID] = dorm
	}

	if len(invalid) > 0 {
		g.opts.logger.Warn("invalid student IDs skipped",
			"strategy", kind.String(),
			"count", len(invalid),
			"ids", invalid,
		)
	}

	return alloc, nil
}
