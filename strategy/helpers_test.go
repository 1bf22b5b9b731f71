package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javdevA/SmartDormCapstonePro/studentid"
	"github.com/javdevA/SmartDormCapstonePro/types"
)

// cohort builds n students with valid identifiers, all in year 2 and all
// preferring the given dorms in order.
func cohort(n int, prefs string) []types.Student {
	out := make([]types.Student, n)
	for i := range out {
		out[i] = types.Student{
			ID:             studentid.ComputeChecksum(fmt.Sprint(1000 + i)),
			Name:           fmt.Sprintf("Student %d", i),
			Year:           2,
			PreferredDorms: prefs,
		}
	}

	return out
}

// requireWithinCapacity asserts the capacity invariant for every dorm.
func requireWithinCapacity(t *testing.T, alloc types.Allocation, dorms []types.Dorm) {
	t.Helper()

	capacity := make(map[string]int, len(dorms))
	for _, d := range dorms {
		capacity[d.ID] = d.Capacity
	}
	for dorm, n := range alloc.Counts() {
		c, ok := capacity[dorm]
		require.True(t, ok, "allocation references unknown dorm %s", dorm)
		require.LessOrEqual(t, n, c, "dorm %s over capacity", dorm)
	}
}
