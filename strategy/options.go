package strategy

import (
	"math/rand/v2"

	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Option configures a strategy.
type Option func(*options)

type options struct {
	randomizeOrder bool
	rng            *rand.Rand
	logger         types.Logger
}

func defaultOptions() options {
	return options{
		randomizeOrder: true,
		logger:         logging.NewNop(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}

	return o
}

// WithRandomizeOrder controls whether Greedy shuffles the student processing
// order before placement (default: true). PriorityFirst ignores it.
//
// Parameters:
//   - enabled: false processes students in input order
//
// Returns:
//   - Option: Configuration option
func WithRandomizeOrder(enabled bool) Option {
	return func(o *options) {
		o.randomizeOrder = enabled
	}
}

// WithRand sets the random source used for shuffling (Greedy) and dorm choice (Random).
//
// A *rand.Rand is not safe for concurrent use, so a strategy built with this
// option must not be shared across goroutines. Without it, strategies use the
// goroutine-safe top-level math/rand/v2 functions.
//
// Parameters:
//   - r: Random source; nil restores the default
//
// Returns:
//   - Option: Configuration option
//
// Example:
//
//	g := strategy.NewGreedy(strategy.WithRand(rand.New(rand.NewPCG(42, 0))))
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithLogger sets the logger used for the batched invalid-identifier warning.
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o options) shuffle(students []types.Student) {
	swap := func(i, j int) { students[i], students[j] = students[j], students[i] }
	if o.rng != nil {
		o.rng.Shuffle(len(students), swap)

		return
	}
	rand.Shuffle(len(students), swap)
}

func (o options) intN(n int) int {
	if o.rng != nil {
		return o.rng.IntN(n)
	}

	return rand.IntN(n)
}
