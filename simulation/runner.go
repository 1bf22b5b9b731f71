package simulation

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/javdevA/SmartDormCapstonePro/fairness"
	"github.com/javdevA/SmartDormCapstonePro/internal/logging"
	"github.com/javdevA/SmartDormCapstonePro/strategy"
	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// DefaultTrials is used when a caller asks for zero or fewer trials.
const DefaultTrials = 100

// Runner executes repeated greedy trials.
type Runner struct {
	seed        uint64
	parallelism int
	logger      types.Logger
	metrics     types.SimulationMetrics
}

// NewRunner creates a simulation runner.
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithParallelism, WithLogger, WithMetrics)
//
// Returns:
//   - *Runner: Initialized runner, safe for concurrent use
//
// Example:
//
//	r := simulation.NewRunner(simulation.WithSeed(42))
//	res, err := r.Run(ctx, students, dorms, 100)
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.applyDefaults()

	return r
}

// Run averages fairness metrics over repeated shuffled greedy allocations.
//
// Empty students or dorms short-circuit to a zero result. Invalid student
// identifiers are reported once for the whole run rather than once per trial.
//
// Parameters:
//   - ctx: Cancels the run between trials
//   - students: Cohort to allocate
//   - dorms: Candidate dorms
//   - trials: Number of trials; values <= 0 fall back to DefaultTrials
//
// Returns:
//   - types.SimulationResult: Means of Top1Rate, Top3Rate and EnvyPairs
//   - error: Context error on cancellation, types.ErrInvalidRecord for bad dorms
func (r *Runner) Run(ctx context.Context, students []types.Student, dorms []types.Dorm, trials int) (types.SimulationResult, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if len(students) == 0 || len(dorms) == 0 {
		return types.SimulationResult{}, nil
	}

	if _, invalid := studentid.Partition(students); len(invalid) > 0 {
		r.logger.Warn("invalid student IDs skipped",
			"strategy", types.KindGreedy.String(),
			"count", len(invalid),
			"ids", invalid,
		)
	}

	seed := r.seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	start := time.Now()
	results := make([]types.Metrics, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)
	for i := range trials {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			greedy := strategy.NewGreedy(
				strategy.WithRand(trialRand(seed, i)),
				strategy.WithLogger(logging.NewNop()),
			)
			alloc, err := greedy.Allocate(students, dorms)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = fairness.Compute(students, alloc)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.SimulationResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return types.SimulationResult{}, err
	}

	res := average(results)
	elapsed := time.Since(start)
	r.metrics.RecordSimulation(trials, elapsed.Seconds())
	r.logger.Debug("simulation completed",
		"trials", trials,
		"seed", seed,
		"avg_top1", res.AvgTop1,
		"duration", elapsed,
	)

	return res, nil
}

// trialRand derives an independent random source for one trial.
func trialRand(seed uint64, trial int) *rand.Rand {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(trial))
	h := xxh3.HashSeed(buf[:], seed)

	return rand.New(rand.NewPCG(h, seed))
}

func average(results []types.Metrics) types.SimulationResult {
	res := types.SimulationResult{Trials: len(results)}
	if len(results) == 0 {
		return res
	}

	var envy float64
	for _, m := range results {
		res.AvgTop1 += m.Top1Rate
		res.AvgTop3 += m.Top3Rate
		envy += float64(m.EnvyPairs)
	}

	n := float64(len(results))
	res.AvgTop1 /= n
	res.AvgTop3 /= n
	res.AvgEnvyPairs = envy / n

	return res
}

// ParseTrials coerces a caller-supplied trial count.
//
// Missing, non-numeric and non-positive input falls back to DefaultTrials.
func ParseTrials(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n <= 0 {
		return DefaultTrials
	}

	return n
}
