package dormalloc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javdevA/SmartDormCapstonePro/internal/logger"
	"github.com/javdevA/SmartDormCapstonePro/internal/metrics"
	"github.com/javdevA/SmartDormCapstonePro/source"
	"github.com/javdevA/SmartDormCapstonePro/studentid"
)

type recordingCollector struct {
	*metrics.NopMetrics

	mu          sync.Mutex
	allocations map[StrategyKind]int
	invalidIDs  int
	simulations int
	placed      int
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{NopMetrics: metrics.NewNop(), allocations: make(map[StrategyKind]int)}
}

func (r *recordingCollector) RecordAllocation(kind StrategyKind, _, _ int, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.allocations[kind]++
}

func (r *recordingCollector) RecordInvalidIDs(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidIDs += count
}

func (r *recordingCollector) RecordSimulation(int, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.simulations++
}

func (r *recordingCollector) RecordReallocation(placed, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placed += placed
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	cfg := TestConfig()
	engine, err := NewEngine(&cfg, opts...)
	require.NoError(t, err)

	return engine
}

func cohort(n int, prefs string) []Student {
	out := make([]Student, n)
	for i := range out {
		out[i] = Student{
			ID:             studentid.ComputeChecksum(fmt.Sprint(1000 + i)),
			Name:           fmt.Sprintf("Student %d", i),
			Year:           2,
			PreferredDorms: prefs,
		}
	}

	return out
}

func TestNewEngine(t *testing.T) {
	t.Run("rejects nil config", func(t *testing.T) {
		_, err := NewEngine(nil)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Roommates.MinScore = 120

		_, err := NewEngine(&cfg)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("fills defaults", func(t *testing.T) {
		cfg := Config{}

		engine, err := NewEngine(&cfg)

		require.NoError(t, err)
		require.Equal(t, 100, engine.Config().Simulation.Trials)
		require.True(t, *engine.Config().RandomizeOrder)
	})

	t.Run("warns about unusual settings", func(t *testing.T) {
		rec := logger.NewRecorder()
		cfg := DefaultConfig()
		cfg.Roommates.MinScore = 40

		_, err := NewEngine(&cfg, WithLogger(rec))

		require.NoError(t, err)
		require.Len(t, rec.ByLevel("WARN"), 1)
	})
}

func TestEngine_Allocate(t *testing.T) {
	ctx := context.Background()

	t.Run("places a single student and skips an invalid one", func(t *testing.T) {
		rec := logger.NewRecorder()
		collector := newRecordingCollector()
		engine := newTestEngine(t, WithLogger(rec), WithMetrics(collector))
		students := []Student{
			{ID: "100", Year: 2, PreferredDorms: "D1"},
			{ID: "101", Year: 2, PreferredDorms: "D1"},
		}

		alloc, err := engine.Allocate(ctx, KindGreedy, students, []Dorm{{ID: "D1", Capacity: 1}})

		require.NoError(t, err)
		require.Equal(t, Allocation{"101": "D1"}, alloc)
		require.InDelta(t, 1.0, engine.Evaluate(students[1:], alloc).Top1Rate, 1e-9)
		require.Len(t, rec.ByLevel("WARN"), 1)
		require.Equal(t, 1, collector.invalidIDs)
		require.Equal(t, 1, collector.allocations[KindGreedy])
	})

	t.Run("overwrites the previous allocation of the same kind", func(t *testing.T) {
		engine := newTestEngine(t)
		dorms := []Dorm{{ID: "D1", Capacity: 5}}

		_, err := engine.Allocate(ctx, KindGreedy, []Student{{ID: "101"}}, dorms)
		require.NoError(t, err)
		_, err = engine.Allocate(ctx, KindGreedy, []Student{{ID: "112"}}, dorms)
		require.NoError(t, err)

		latest, ok := engine.Latest(KindGreedy)
		require.True(t, ok)
		require.Equal(t, Allocation{"112": "D1"}, latest)

		_, ok = engine.Latest(KindRandom)
		require.False(t, ok)
	})

	t.Run("latest returns an independent copy", func(t *testing.T) {
		engine := newTestEngine(t)
		alloc, err := engine.Allocate(ctx, KindGreedy, []Student{{ID: "101"}}, []Dorm{{ID: "D1", Capacity: 1}})
		require.NoError(t, err)

		alloc["101"] = "D9"
		latest, _ := engine.Latest(KindGreedy)
		latest["112"] = "D1"

		again, _ := engine.Latest(KindGreedy)
		require.Equal(t, Allocation{"101": "D1"}, again)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		_, err := newTestEngine(t).Allocate(ctx, StrategyKind(7), nil, nil)

		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("wraps invalid dorm records", func(t *testing.T) {
		_, err := newTestEngine(t).Allocate(ctx, KindRandom, cohort(1, ""), []Dorm{{ID: "D1", Capacity: -1}})

		require.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("uses the configured default strategy", func(t *testing.T) {
		cfg := TestConfig()
		cfg.Strategy = KindPriorityFirst
		engine, err := NewEngine(&cfg)
		require.NoError(t, err)

		_, err = engine.AllocateDefault(ctx, cohort(2, "D1"), []Dorm{{ID: "D1", Capacity: 1}})

		require.NoError(t, err)
		_, ok := engine.Latest(KindPriorityFirst)
		require.True(t, ok)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		engine := newTestEngine(t)
		students := cohort(20, "D1,D2")
		dorms := []Dorm{{ID: "D1", Capacity: 5}, {ID: "D2", Capacity: 5}}

		var wg sync.WaitGroup
		errs := make(chan error, 12)
		for i := range 12 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.Allocate(ctx, StrategyKind(i%3), students, dorms)
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		for _, kind := range []StrategyKind{KindGreedy, KindRandom, KindPriorityFirst} {
			latest, ok := engine.Latest(kind)
			require.True(t, ok)
			require.Equal(t, 10, latest.AssignedCount())
		}
	})
}

func TestEngine_Compare(t *testing.T) {
	collector := newRecordingCollector()
	engine := newTestEngine(t, WithMetrics(collector))
	students := cohort(6, "D1,D2")
	dorms := []Dorm{{ID: "D1", Capacity: 2}, {ID: "D2", Capacity: 2}}

	rows, err := engine.Compare(context.Background(), students, dorms)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []StrategyKind{KindGreedy, KindRandom, KindPriorityFirst}, []StrategyKind{rows[0].Kind, rows[1].Kind, rows[2].Kind})
	for _, row := range rows {
		require.Equal(t, 4, row.Assigned, "strategy %s", row.Kind)
		require.Equal(t, 2, row.Unallocated, "strategy %s", row.Kind)
		require.LessOrEqual(t, row.Top1Rate, row.Top3Rate)
	}
	// greedy without shuffling fills D1 first
	require.InDelta(t, 2.0/6.0, rows[0].Top1Rate, 1e-9)
	require.Len(t, collector.allocations, 3)
}

func TestEngine_Simulate(t *testing.T) {
	collector := newRecordingCollector()
	engine := newTestEngine(t, WithMetrics(collector))

	res, err := engine.Simulate(context.Background(), cohort(4, "D1"), []Dorm{{ID: "D1", Capacity: 2}}, 0)

	require.NoError(t, err)
	require.Equal(t, 10, res.Trials)
	require.InDelta(t, 0.5, res.AvgTop1, 1e-9)
	require.Equal(t, 1, collector.simulations)
}

func TestEngine_WaitlistAndReallocate(t *testing.T) {
	ctx := context.Background()
	students := cohort(3, "D1")

	t.Run("everyone waits before any run", func(t *testing.T) {
		engine := newTestEngine(t)

		require.Len(t, engine.Waitlist(KindGreedy, students), 3)
		require.Equal(t, 3, engine.Unallocated(KindGreedy, students))
	})

	t.Run("places the waitlist into new capacity", func(t *testing.T) {
		var placedIDs, waitingIDs []string
		var changes int
		hooks := &Hooks{
			OnAllocationChanged: func(context.Context, StrategyKind, Allocation, Allocation) error {
				changes++
				return nil
			},
			OnWaitlistReallocated: func(_ context.Context, placed, waiting []string) error {
				placedIDs, waitingIDs = placed, waiting
				return nil
			},
		}
		collector := newRecordingCollector()
		engine := newTestEngine(t, WithHooks(hooks), WithMetrics(collector))

		_, err := engine.Allocate(ctx, KindGreedy, students, []Dorm{{ID: "D1", Capacity: 1}})
		require.NoError(t, err)
		entries := engine.Waitlist(KindGreedy, students)
		require.Len(t, entries, 2)
		require.Equal(t, 1, entries[0].Position)

		next, err := engine.Reallocate(ctx, KindGreedy, students, []Dorm{{ID: "D1", Capacity: 2}})

		require.NoError(t, err)
		require.Equal(t, 2, next.AssignedCount())
		require.Equal(t, []string{students[1].ID}, placedIDs)
		require.Equal(t, []string{students[2].ID}, waitingIDs)
		require.Equal(t, 2, changes)
		require.Equal(t, 1, collector.placed)

		latest, _ := engine.Latest(KindGreedy)
		require.Equal(t, next, latest)
		require.Equal(t, 1, engine.Unallocated(KindGreedy, students))
	})

	t.Run("hook errors are reported but do not fail the call", func(t *testing.T) {
		var reported error
		hooks := &Hooks{
			OnAllocationChanged: func(context.Context, StrategyKind, Allocation, Allocation) error {
				return errors.New("store unavailable")
			},
			OnError: func(_ context.Context, err error) error {
				reported = err
				return nil
			},
		}
		rec := logger.NewRecorder()
		engine := newTestEngine(t, WithHooks(hooks), WithLogger(rec))

		_, err := engine.Allocate(ctx, KindGreedy, students, []Dorm{{ID: "D1", Capacity: 3}})

		require.NoError(t, err)
		require.ErrorContains(t, reported, "store unavailable")
		require.Len(t, rec.ByLevel("ERROR"), 1)
	})
}

func TestEngine_SuggestRoommates(t *testing.T) {
	cfg := TestConfig()
	cfg.Roommates.MaxPairs = 2
	engine, err := NewEngine(&cfg)
	require.NoError(t, err)

	pairs := engine.SuggestRoommates(cohort(6, ""))

	require.Len(t, pairs, 2)
	require.Empty(t, engine.SuggestRoommates(cohort(1, "")))
}

func TestEngine_Capacity(t *testing.T) {
	engine := newTestEngine(t)

	require.Equal(t, 7, engine.Capacity([]Dorm{{Capacity: 3}, {Capacity: 4}, {Capacity: -2}}))
	require.Zero(t, engine.Capacity(nil))
}

type failingSource struct{}

func (failingSource) ListStudents(context.Context) ([]Student, error) {
	return nil, errors.New("store offline")
}

func (failingSource) ListDorms(context.Context) ([]Dorm, error) {
	return nil, nil
}

func TestEngine_FromSource(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates and reallocates from a source", func(t *testing.T) {
		engine := newTestEngine(t)
		students := cohort(3, "D1")
		src := source.NewStatic(students, []Dorm{{ID: "D1", Capacity: 1}})

		alloc, err := engine.AllocateFrom(ctx, KindGreedy, src)
		require.NoError(t, err)
		require.Equal(t, 1, alloc.AssignedCount())

		src.Update(students, []Dorm{{ID: "D1", Capacity: 1}, {ID: "D2", Capacity: 2}})
		next, err := engine.ReallocateFrom(ctx, KindGreedy, src)

		require.NoError(t, err)
		require.Equal(t, 3, next.AssignedCount())
		require.Equal(t, alloc[students[0].ID], next[students[0].ID])
	})

	t.Run("wraps source errors", func(t *testing.T) {
		_, err := newTestEngine(t).AllocateFrom(ctx, KindGreedy, failingSource{})

		require.ErrorContains(t, err, "list students")
	})
}
