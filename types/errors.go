package types

import "errors"

// Sentinel errors for the allocation engine.
//
// These errors provide type-safe error checking using errors.Is().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).
var (
	// ErrInvalidRecord is returned when an input record violates the input contract,
	// e.g. a numeric field cannot be coerced, a capacity is negative or a dorm ID repeats.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnknownStrategy is returned when a strategy kind is not one of the built-in kinds.
	ErrUnknownStrategy = errors.New("unknown allocation strategy")

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyID is returned when a student identifier is empty.
	ErrEmptyID = errors.New("student ID is empty")
)
