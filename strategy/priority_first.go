package strategy

import (
	"cmp"
	"slices"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// PriorityFirst implements greedy allocation in descending priority order.
type PriorityFirst struct {
	greedy *Greedy
}

var _ types.AllocationStrategy = (*PriorityFirst)(nil)

// NewPriorityFirst creates a new priority-first strategy.
//
// Students are stably sorted by priority, highest first, and then placed
// greedily with shuffling disabled, so only priority decides the processing
// sequence while scoring still decides each dorm.
//
// Parameters:
//   - opts: Optional configuration (WithLogger); WithRandomizeOrder is ignored
//
// Returns:
//   - *PriorityFirst: Initialized priority-first strategy
func NewPriorityFirst(opts ...Option) *PriorityFirst {
	o := applyOptions(opts)
	o.randomizeOrder = false

	return &PriorityFirst{greedy: &Greedy{opts: o}}
}

// Kind returns types.KindPriorityFirst.
func (p *PriorityFirst) Kind() types.StrategyKind {
	return types.KindPriorityFirst
}

// Allocate sorts students by priority and places them greedily.
func (p *PriorityFirst) Allocate(students []types.Student, dorms []types.Dorm) (types.Allocation, error) {
	order := slices.Clone(students)
	slices.SortStableFunc(order, func(a, b types.Student) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	alloc, err := p.greedy.allocateOrdered(p.Kind(), order, dorms)
	if err != nil {
		return nil, err
	}

	return alloc, nil
}
