package strategy

import "github.com/javdevA/SmartDormCapstonePro/types"

// ErrUnknownStrategy indicates that New was called with a kind outside the closed set.
var ErrUnknownStrategy = types.ErrUnknownStrategy
