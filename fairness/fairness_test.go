package fairness

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

func TestCompute(t *testing.T) {
	t.Run("returns zeros for an empty cohort", func(t *testing.T) {
		require.Equal(t, types.Metrics{}, Compute(nil, types.Allocation{"101": "D1"}))
	})

	t.Run("single student in first choice", func(t *testing.T) {
		students := []types.Student{{ID: "101", PreferredDorms: "D1"}}

		m := Compute(students, types.Allocation{"101": "D1"})

		require.Equal(t, types.Metrics{Top1Rate: 1, Top3Rate: 1}, m)
	})

	t.Run("counts top three but not top one", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1,D2,D3,D4"},
			{ID: "112", PreferredDorms: "D1,D2,D3,D4"},
		}

		m := Compute(students, types.Allocation{"101": "D3", "112": "D4"})

		require.Zero(t, m.Top1Rate)
		require.InDelta(t, 0.5, m.Top3Rate, 1e-9)
	})

	t.Run("unplaced students lower the rates", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1"},
			{ID: "112", PreferredDorms: "D1"},
			{ID: "100", PreferredDorms: "D1"},
			{ID: "123", PreferredDorms: "D1"},
		}
		alloc := types.Allocation{"101": "D1", "112": types.Unassigned, "123": "D1"}

		m := Compute(students, alloc)

		require.InDelta(t, 0.5, m.Top1Rate, 1e-9)
		require.InDelta(t, 0.5, m.Top3Rate, 1e-9)
	})

	t.Run("students without preferences never count", func(t *testing.T) {
		students := []types.Student{{ID: "101"}, {ID: "112", PreferredDorms: " , "}}

		m := Compute(students, types.Allocation{"101": "D1", "112": "D2"})

		require.Equal(t, types.Metrics{}, m)
	})

	t.Run("counts directed envy", func(t *testing.T) {
		// 101 wants D1 but holds D2; 112 holds D1 and wants nothing else.
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1,D2"},
			{ID: "112", PreferredDorms: "D1"},
		}

		m := Compute(students, types.Allocation{"101": "D2", "112": "D1"})

		// only 101 envies: D2 is not among 112's preferences
		require.Equal(t, 1, m.EnvyPairs)
	})

	t.Run("unassigned students envy everyone holding a preferred dorm", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1"},
			{ID: "112", PreferredDorms: "D1"},
			{ID: "123", PreferredDorms: "D1"},
		}

		m := Compute(students, types.Allocation{"101": "D1", "112": "D2", "123": types.Unassigned})

		require.Equal(t, 2, m.EnvyPairs)
	})

	t.Run("sharing a dorm is not envy", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1"},
			{ID: "112", PreferredDorms: "D1"},
		}

		m := Compute(students, types.Allocation{"101": "D1", "112": "D1"})

		require.Zero(t, m.EnvyPairs)
	})

	t.Run("duplicate IDs are compared by position", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1"},
			{ID: "101", PreferredDorms: "D1"},
		}

		m := Compute(students, types.Allocation{"101": "D1"})

		require.Zero(t, m.EnvyPairs)
		require.InDelta(t, 1.0, m.Top1Rate, 1e-9)
	})

	t.Run("rates stay within the unit interval", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1,D2,D3"},
			{ID: "112", PreferredDorms: "D2"},
			{ID: "123", PreferredDorms: "D3,D1"},
		}
		alloc := types.Allocation{"101": "D1", "112": "D2", "123": "D3"}

		m := Compute(students, alloc)

		require.InDelta(t, 1.0, m.Top1Rate, 1e-9)
		require.InDelta(t, 1.0, m.Top3Rate, 1e-9)
		require.GreaterOrEqual(t, m.Top3Rate, m.Top1Rate)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("counts assigned and unallocated students", func(t *testing.T) {
		students := []types.Student{
			{ID: "101", PreferredDorms: "D1"},
			{ID: "112", PreferredDorms: "D1"},
			{ID: "100", PreferredDorms: "D1"},
		}

		sum := Summarize(students, types.Allocation{"101": "D1", "112": types.Unassigned})

		require.Equal(t, 1, sum.Assigned)
		require.Equal(t, 2, sum.Unallocated)
		require.InDelta(t, 1.0/3.0, sum.Top1Rate, 1e-9)
	})

	t.Run("empty cohort", func(t *testing.T) {
		require.Equal(t, types.Summary{}, Summarize(nil, nil))
	})
}

func BenchmarkCompute(b *testing.B) {
	students := make([]types.Student, 500)
	alloc := make(types.Allocation, len(students))
	dorms := []string{"D1", "D2", "D3", "D4", "D5"}
	for i := range students {
		id := fmt.Sprintf("S%d", i)
		students[i] = types.Student{ID: id, PreferredDorms: "D1,D3,D5"}
		alloc[id] = dorms[i%len(dorms)]
	}

	b.ReportAllocs()
	for b.Loop() {
		Compute(students, alloc)
	}
}
