package hooks

import (
	"context"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.StrategyKind, types.Allocation, types.Allocation) error = (*NopHooks)(nil).OnAllocationChanged
	_ func(context.Context, []string, []string) error                                     = (*NopHooks)(nil).OnWaitlistReallocated
	_ func(context.Context, error) error                                                  = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnAllocationChanged:   h.OnAllocationChanged,
		OnWaitlistReallocated: h.OnWaitlistReallocated,
		OnError:               h.OnError,
	}
}

// Fill returns a copy of hooks with every nil callback replaced by a no-op.
func Fill(hooks *types.Hooks) types.Hooks {
	out := NewNop()
	if hooks == nil {
		return out
	}
	if hooks.OnAllocationChanged != nil {
		out.OnAllocationChanged = hooks.OnAllocationChanged
	}
	if hooks.OnWaitlistReallocated != nil {
		out.OnWaitlistReallocated = hooks.OnWaitlistReallocated
	}
	if hooks.OnError != nil {
		out.OnError = hooks.OnError
	}

	return out
}

// OnAllocationChanged is a no-op implementation.
func (h *NopHooks) OnAllocationChanged(ctx context.Context, kind types.StrategyKind, prev, next types.Allocation) error {
	return nil
}

// OnWaitlistReallocated is a no-op implementation.
func (h *NopHooks) OnWaitlistReallocated(ctx context.Context, placed, waiting []string) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
