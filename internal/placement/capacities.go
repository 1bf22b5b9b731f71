// Package placement holds the per-call remaining-capacity working copy shared
// by the allocation strategies and waitlist reallocation.
//
// A Capacities value is created from the caller's dorm records at the start of
// a call and discarded at the end. It never aliases or mutates the dorm records.
package placement

import (
	"fmt"
	"strings"

	"github.com/javdevA/SmartDormCapstonePro/scoring"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Capacities tracks remaining beds per dorm for the duration of one call.
type Capacities struct {
	remaining map[string]int
	order     []string
}

// NewCapacities builds a working copy from the declared dorm capacities.
//
// Returns:
//   - *Capacities: Working copy seeded with each dorm's Capacity
//   - error: types.ErrInvalidRecord (wrapped) for a blank dorm ID, a negative
//     capacity or a repeated dorm ID
func NewCapacities(dorms []types.Dorm) (*Capacities, error) {
	c := &Capacities{
		remaining: make(map[string]int, len(dorms)),
		order:     make([]string, 0, len(dorms)),
	}

	for _, d := range dorms {
		// A blank ID would collide with types.Unassigned.
		if strings.TrimSpace(d.ID) == "" {
			return nil, fmt.Errorf("dorm %q: blank dorm ID: %w", d.ID, types.ErrInvalidRecord)
		}
		if d.Capacity < 0 {
			return nil, fmt.Errorf("dorm %q: capacity %d is negative: %w", d.ID, d.Capacity, types.ErrInvalidRecord)
		}
		if _, dup := c.remaining[d.ID]; dup {
			return nil, fmt.Errorf("dorm %q: duplicate dorm ID: %w", d.ID, types.ErrInvalidRecord)
		}
		c.remaining[d.ID] = d.Capacity
		c.order = append(c.order, d.ID)
	}

	return c, nil
}

// Reserve subtracts beds already taken in an existing allocation.
//
// Entries pointing to unknown dorms or to Unassigned are ignored. Remaining
// capacity is floored at zero so an over-full existing allocation cannot
// produce negative capacity.
func (c *Capacities) Reserve(existing types.Allocation) {
	for dorm, n := range existing.Counts() {
		if left, ok := c.remaining[dorm]; ok {
			c.remaining[dorm] = max(0, left-n)
		}
	}
}

// Remaining returns the number of free beds in a dorm (0 for unknown dorms).
func (c *Capacities) Remaining(dormID string) int {
	return c.remaining[dormID]
}

// Total returns the number of free beds across all dorms.
func (c *Capacities) Total() int {
	total := 0
	for _, n := range c.remaining {
		total += n
	}

	return total
}

// Take consumes one bed in dormID. It reports false when the dorm is unknown or full.
func (c *Capacities) Take(dormID string) bool {
	if c.remaining[dormID] <= 0 {
		return false
	}
	c.remaining[dormID]--

	return true
}

// Available returns the IDs of dorms with free beds, in input order.
func (c *Capacities) Available() []string {
	out := make([]string, 0, len(c.order))
	for _, id := range c.order {
		if c.remaining[id] > 0 {
			out = append(out, id)
		}
	}

	return out
}

// Place assigns s to the highest-scoring dorm that still has a free bed and
// consumes that bed.
//
// Returns:
//   - string: Chosen dorm ID, or types.Unassigned
//   - bool: false when no dorm had a free bed
func (c *Capacities) Place(s types.Student, dorms []types.Dorm) (string, bool) {
	if c.Total() == 0 {
		return types.Unassigned, false
	}

	for _, cand := range scoring.Rank(s, dorms) {
		if c.Take(cand.Dorm.ID) {
			return cand.Dorm.ID, true
		}
	}

	return types.Unassigned, false
}
