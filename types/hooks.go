package types

import "context"

// Hooks defines callbacks for Engine events.
//
// All hooks are optional and run synchronously on the calling goroutine after
// the engine has recorded the new state. Hook errors are logged and passed to
// OnError but never fail the engine operation.
//
// Example:
//
//	hooks := &dormalloc.Hooks{
//	    OnAllocationChanged: func(ctx context.Context, kind dormalloc.StrategyKind, prev, next dormalloc.Allocation) error {
//	        return store.Save(ctx, kind, next)
//	    },
//	}
type Hooks struct {
	// OnAllocationChanged is called after a strategy run or reallocation
	// replaces the latest allocation of a kind. prev is nil on the first run.
	OnAllocationChanged func(ctx context.Context, kind StrategyKind, prev, next Allocation) error

	// OnWaitlistReallocated is called after a reallocation pass with the IDs
	// of newly placed students and of those still waiting.
	OnWaitlistReallocated func(ctx context.Context, placed, waiting []string) error

	// OnError is called when a hook returns an error.
	OnError func(ctx context.Context, err error) error
}
