package simulation

import (
	"runtime"

	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// Option configures a Runner.
type Option func(*Runner)

// WithSeed fixes the base seed. Zero, the default, draws a fresh seed per Run.
func WithSeed(seed uint64) Option {
	return func(r *Runner) {
		r.seed = seed
	}
}

// WithParallelism bounds the number of trials running at once.
//
// Values below 1 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(r *Runner) {
		r.parallelism = n
	}
}

// WithLogger sets the runner logger.
func WithLogger(logger types.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics collector notified after each completed run.
func WithMetrics(m types.SimulationMetrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

func (r *Runner) applyDefaults() {
	if r.parallelism < 1 {
		r.parallelism = runtime.GOMAXPROCS(0)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.metrics == nil {
		r.metrics = metrics.NewNop()
	}
}
