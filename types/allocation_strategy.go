package types

import (
	"fmt"
	"strings"
)

// StrategyKind identifies one of the built-in allocation strategies.
//
// The set is closed: every kind has exactly one implementation in the strategy
// package and dispatch happens through strategy.New.
type StrategyKind int

const (
	// KindGreedy assigns each student to the highest-scoring dorm with capacity,
	// optionally in shuffled order.
	KindGreedy StrategyKind = iota

	// KindRandom assigns each student to a uniformly random dorm with capacity.
	// Used as a comparison baseline.
	KindRandom

	// KindPriorityFirst processes students by descending priority, then places
	// them greedily without shuffling.
	KindPriorityFirst
)

// StrategyKinds lists every built-in kind in presentation order.
var StrategyKinds = []StrategyKind{KindGreedy, KindRandom, KindPriorityFirst}

// String returns the canonical name of the kind.
func (k StrategyKind) String() string {
	switch k {
	case KindGreedy:
		return "greedy"
	case KindRandom:
		return "random"
	case KindPriorityFirst:
		return "priority"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-facing label of the kind.
func (k StrategyKind) DisplayName() string {
	switch k {
	case KindGreedy:
		return "Smart Greedy"
	case KindRandom:
		return "Random"
	case KindPriorityFirst:
		return "Priority-first"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the built-in kinds.
func (k StrategyKind) Valid() bool {
	return k >= KindGreedy && k <= KindPriorityFirst
}

// ParseStrategyKind converts a strategy name into a StrategyKind.
//
// Matching is case-insensitive; "priority", "priority-first" and
// "priority_first" all select KindPriorityFirst.
//
// Returns:
//   - StrategyKind: Parsed kind
//   - error: ErrUnknownStrategy (wrapped) for unrecognized names
func ParseStrategyKind(name string) (StrategyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "greedy":
		return KindGreedy, nil
	case "random":
		return KindRandom, nil
	case "priority", "priority-first", "priority_first":
		return KindPriorityFirst, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k StrategyKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("kind %d: %w", int(k), ErrUnknownStrategy)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StrategyKind) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategyKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// AllocationStrategy assigns students to dorms under capacity constraints.
//
// Strategy implementations must:
//   - Never exceed any dorm's declared capacity
//   - Never mutate the input students or dorms
//   - Use a fresh remaining-capacity working copy on every call
//   - Return an empty allocation (not an error) for empty inputs
type AllocationStrategy interface {
	// Kind returns the strategy's kind.
	Kind() StrategyKind

	// Allocate assigns students to dorms.
	//
	// Parameters:
	//   - students: Students to place, in input order
	//   - dorms: Candidate dorms, in input order (order breaks score ties)
	//
	// Returns:
	//   - Allocation: Student ID to dorm ID mapping
	//   - error: ErrInvalidRecord (wrapped) for negative capacities or duplicate dorm IDs
	Allocate(students []Student, dorms []Dorm) (Allocation, error)
}
