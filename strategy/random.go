package strategy

import (
	"github.com/javdevA/SmartDormCapstonePro/internal/placement"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Random implements the uniform random baseline.
type Random struct {
	opts options
}

var _ types.AllocationStrategy = (*Random)(nil)

// NewRandom creates a new random strategy.
//
// Students are processed in input order; each takes a uniformly random dorm
// among those with remaining capacity. Scores and identifiers are not consulted.
//
// Parameters:
//   - opts: Optional configuration (WithRand)
//
// Returns:
//   - *Random: Initialized random strategy
func NewRandom(opts ...Option) *Random {
	return &Random{opts: applyOptions(opts)}
}

// Kind returns types.KindRandom.
func (r *Random) Kind() types.StrategyKind {
	return types.KindRandom
}

// Allocate assigns every student to a random dorm with remaining capacity.
//
// Students left over once all capacity is consumed are recorded as explicit
// types.Unassigned entries, the same representation Greedy uses.
func (r *Random) Allocate(students []types.Student, dorms []types.Dorm) (types.Allocation, error) {
	caps, err := placement.NewCapacities(dorms)
	if err != nil {
		return nil, err
	}

	alloc := make(types.Allocation, len(students))
	for _, s := range students {
		available := caps.Available()
		if len(available) == 0 {
			alloc[s.ID] = types.Unassigned
			continue
		}

		dorm := available[r.opts.intN(len(available))]
		caps.Take(dorm)
		alloc[s.ID] = dorm
	}

	return alloc, nil
}
