// Package fairness computes satisfaction and envy metrics for an allocation.
//
// Rates use the total number of students as the denominator, so students that
// were never placed (explicitly unassigned or absent from the allocation) pull
// the rates down instead of being excluded.
package fairness

import (
	"slices"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

// topN is the preference depth counted by Top3Rate.
const topN = 3

// Compute returns the fairness metrics of alloc for the given students.
//
// A student counts toward Top1Rate when assigned to preferences[0] and toward
// Top3Rate when assigned to any of the first three preferences. Students with
// no preferences never count. EnvyPairs counts ordered pairs (A, B) of distinct
// positions where B holds a dorm that appears anywhere in A's preferences and A
// is not in that dorm.
//
// Parameters:
//   - students: Cohort the allocation was computed for
//   - alloc: Student ID to dorm ID mapping
//
// Returns:
//   - types.Metrics: Zero value when students is empty
func Compute(students []types.Student, alloc types.Allocation) types.Metrics {
	if len(students) == 0 {
		return types.Metrics{}
	}

	prefs := make([][]string, len(students))
	top1, top3 := 0, 0
	for i, s := range students {
		prefs[i] = s.Preferences()
		dorm, ok := alloc.DormOf(s.ID)
		if !ok || len(prefs[i]) == 0 {
			continue
		}
		if dorm == prefs[i][0] {
			top1++
		}
		if slices.Contains(prefs[i][:min(topN, len(prefs[i]))], dorm) {
			top3++
		}
	}

	n := float64(len(students))

	return types.Metrics{
		Top1Rate:  float64(top1) / n,
		Top3Rate:  float64(top3) / n,
		EnvyPairs: envyPairs(students, prefs, alloc),
	}
}

// envyPairs scans every ordered pair of students: O(n²) in cohort size.
func envyPairs(students []types.Student, prefs [][]string, alloc types.Allocation) int {
	envy := 0
	for a, sa := range students {
		if len(prefs[a]) == 0 {
			continue
		}
		own, _ := alloc.DormOf(sa.ID)
		for b, sb := range students {
			if a == b {
				continue
			}
			theirs, ok := alloc.DormOf(sb.ID)
			if !ok || theirs == own {
				continue
			}
			if slices.Contains(prefs[a], theirs) {
				envy++
			}
		}
	}

	return envy
}

// Summarize extends Compute with placement counts.
//
// Unallocated counts students with no dorm in alloc, whether recorded as
// types.Unassigned or missing because the strategy skipped them.
func Summarize(students []types.Student, alloc types.Allocation) types.Summary {
	sum := types.Summary{Metrics: Compute(students, alloc)}
	for _, s := range students {
		if _, ok := alloc.DormOf(s.ID); ok {
			sum.Assigned++
		} else {
			sum.Unallocated++
		}
	}

	return sum
}
