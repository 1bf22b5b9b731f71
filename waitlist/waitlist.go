// Package waitlist tracks students without a dorm and places them into
// capacity left over by an existing allocation.
//
// Waitlist order is first-come-first-served by input position; there is no
// timestamp to order by.
package waitlist

import (
	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/internal/placement"
	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Build lists the students that hold no dorm in alloc, in input order.
//
// A student counts as waitlisted when absent from alloc or mapped to
// types.Unassigned. Positions start at 1.
func Build(students []types.Student, alloc types.Allocation) []types.WaitlistEntry {
	out := make([]types.WaitlistEntry, 0)
	for _, s := range students {
		if _, ok := alloc.DormOf(s.ID); ok {
			continue
		}
		out = append(out, types.WaitlistEntry{Student: s, Position: len(out) + 1})
	}

	return out
}

// Students returns the student records of a waitlist, keeping its order.
func Students(entries []types.WaitlistEntry) []types.Student {
	out := make([]types.Student, len(entries))
	for i, e := range entries {
		out[i] = e.Student
	}

	return out
}

// Option configures Reallocate.
type Option func(*options)

type options struct {
	logger  types.Logger
	metrics types.WaitlistMetrics
}

// WithLogger sets the logger used for the batched invalid-identifier warning.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets the collector notified after each reallocation pass.
func WithMetrics(m types.WaitlistMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Reallocate places waitlisted students into the capacity left by current.
//
// Remaining capacity per dorm is its declared capacity minus the students
// already mapped to it in current, floored at zero; entries for unknown dorms
// are ignored. Each waitlisted student with a valid identifier takes the
// highest-scoring dorm that still has a bed, exactly as greedy allocation
// would. Students that already hold a dorm in current keep it. Students that
// cannot be placed are recorded as types.Unassigned; invalid identifiers are
// skipped and reported in one warning.
//
// Parameters:
//   - waitlisted: Students to place, in waitlist order
//   - dorms: Dorms with their declared capacities
//   - current: Existing allocation; never modified
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - types.Allocation: current plus the new placements
//   - error: types.ErrInvalidRecord (wrapped) for negative capacities or duplicate dorm IDs
func Reallocate(waitlisted []types.Student, dorms []types.Dorm, current types.Allocation, opts ...Option) (types.Allocation, error) {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	caps, err := placement.NewCapacities(dorms)
	if err != nil {
		return nil, err
	}
	caps.Reserve(current)

	next := current.Clone()
	valid, invalid := studentid.Partition(waitlisted)
	placed, remaining := 0, 0

	for _, s := range valid {
		if _, ok := next.DormOf(s.ID); ok {
			continue
		}
		dorm, ok := caps.Place(s, dorms)
		next[s.ID] = dorm
		if ok {
			placed++
		} else {
			remaining++
		}
	}

	if len(invalid) > 0 {
		o.logger.Warn("invalid student IDs skipped",
			"operation", "reallocate",
			"count", len(invalid),
			"ids", invalid,
		)
	}
	o.metrics.RecordReallocation(placed, remaining)
	o.logger.Debug("waitlist reallocated", "placed", placed, "remaining", remaining)

	return next, nil
}
