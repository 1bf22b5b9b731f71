package sample

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javdevA/SmartDormCapstonePro/studentid"
)

func TestLoad(t *testing.T) {
	t.Run("generates valid identifiers and sample dorms", func(t *testing.T) {
		students, dorms, err := Load(rand.New(rand.NewPCG(1, 1)), DefaultStudents)

		require.NoError(t, err)
		require.Len(t, students, DefaultStudents)
		require.Equal(t, "10001", students[0].ID)
		require.Equal(t, "10191", students[19].ID)
		for _, s := range students {
			require.True(t, studentid.IsValid(s.ID), s.ID)
			require.GreaterOrEqual(t, s.Year, 1)
			require.LessOrEqual(t, s.Year, 4)
			require.Len(t, s.Preferences(), 2)
		}

		require.Len(t, dorms, 5)
		total := 0
		for _, d := range dorms {
			total += d.Capacity
		}
		require.Equal(t, 20, total)
		require.Contains(t, dorms[0].AttributeSet(), "quiet")
	})

	t.Run("same seed gives the same cohort", func(t *testing.T) {
		a := StudentRecords(rand.New(rand.NewPCG(9, 9)), 5)
		b := StudentRecords(rand.New(rand.NewPCG(9, 9)), 5)

		require.Equal(t, a, b)
	})

	t.Run("dorm records are independent copies", func(t *testing.T) {
		recs := DormRecords()
		recs[0]["capacity"] = "-1"

		_, dorms, err := Load(rand.New(rand.NewPCG(2, 2)), 1)

		require.NoError(t, err)
		require.Equal(t, 3, dorms[0].Capacity)
	})
}
