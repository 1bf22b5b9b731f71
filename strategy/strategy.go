package strategy

import (
	"fmt"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// New creates the strategy for kind.
//
// This is the single dispatch point from a types.StrategyKind to an
// implementation; the set of kinds is closed.
//
// Parameters:
//   - kind: One of types.KindGreedy, types.KindRandom, types.KindPriorityFirst
//   - opts: Options applied to the created strategy
//
// Returns:
//   - types.AllocationStrategy: The strategy
//   - error: ErrUnknownStrategy (wrapped) for any other kind
//
// Example:
//
//	s, err := strategy.New(types.KindPriorityFirst, strategy.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	alloc, err := s.Allocate(students, dorms)
func New(kind types.StrategyKind, opts ...Option) (types.AllocationStrategy, error) {
	switch kind {
	case types.KindGreedy:
		return NewGreedy(opts...), nil
	case types.KindRandom:
		return NewRandom(opts...), nil
	case types.KindPriorityFirst:
		return NewPriorityFirst(opts...), nil
	default:
		return nil, fmt.Errorf("kind %d: %w", int(kind), ErrUnknownStrategy)
	}
}
