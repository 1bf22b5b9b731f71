package dormalloc

import "github.com/javdevA/SmartDormCapstonePro/types"

// Sentinel errors returned by the Engine and its components.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidRecord is returned when a student or dorm record violates the input contract.
	ErrInvalidRecord = types.ErrInvalidRecord

	// ErrUnknownStrategy is returned for a strategy kind outside the built-in set.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrEmptyID is returned when a student identifier is empty.
	ErrEmptyID = types.ErrEmptyID
)
