package types

// Unassigned is the dorm value recorded for a student that was considered but
// could not be placed because no dorm had remaining capacity.
const Unassigned = ""

// Allocation maps student IDs to dorm IDs.
//
// A key mapped to Unassigned is an explicit "no capacity" outcome. A missing key
// means the student was never considered (e.g. its identifier failed validation).
// Each strategy call produces a fresh Allocation; results are overwritten by
// later calls, never merged.
type Allocation map[string]string

// DormOf returns the dorm assigned to a student and whether one was assigned.
func (a Allocation) DormOf(studentID string) (string, bool) {
	dorm, ok := a[studentID]
	if !ok || dorm == Unassigned {
		return "", false
	}

	return dorm, true
}

// Clone returns an independent copy of the allocation.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Counts returns the number of students assigned to each dorm.
// Unassigned entries are not counted.
func (a Allocation) Counts() map[string]int {
	counts := make(map[string]int)
	for _, dorm := range a {
		if dorm != Unassigned {
			counts[dorm]++
		}
	}

	return counts
}

// AssignedCount returns the number of students mapped to a dorm.
func (a Allocation) AssignedCount() int {
	n := 0
	for _, dorm := range a {
		if dorm != Unassigned {
			n++
		}
	}

	return n
}

// UnassignedCount returns the number of explicit unassigned entries.
func (a Allocation) UnassignedCount() int {
	return len(a) - a.AssignedCount()
}

// Metrics is a read-only fairness snapshot for one allocation.
type Metrics struct {
	// Top1Rate is the fraction of all students placed in their first preference.
	Top1Rate float64 `json:"top1_rate" yaml:"top1_rate"`

	// Top3Rate is the fraction of all students placed within their first three preferences.
	Top3Rate float64 `json:"top3_rate" yaml:"top3_rate"`

	// EnvyPairs counts directed (A envies B) instances.
	EnvyPairs int `json:"envy_pairs" yaml:"envy_pairs"`
}

// Summary extends Metrics with placement counts, as shown when comparing strategies.
type Summary struct {
	Metrics

	// Assigned is the number of students placed in a dorm.
	Assigned int `json:"assigned" yaml:"assigned"`

	// Unallocated is the number of students without a dorm (explicitly
	// unassigned or absent from the allocation).
	Unallocated int `json:"unallocated" yaml:"unallocated"`
}

// SimulationResult holds fairness metrics averaged over repeated greedy trials.
type SimulationResult struct {
	// Trials is the number of trials actually run.
	Trials int `json:"trials" yaml:"trials"`

	AvgTop1      float64 `json:"avg_top1" yaml:"avg_top1"`
	AvgTop3      float64 `json:"avg_top3" yaml:"avg_top3"`
	AvgEnvyPairs float64 `json:"avg_envy_pairs" yaml:"avg_envy_pairs"`
}

// WaitlistEntry is a student currently without a dorm.
type WaitlistEntry struct {
	Student

	// Position is the 1-based first-come-first-served rank, taken from input order.
	Position int `json:"position" yaml:"position"`
}

// RoommatePair is a suggested pairing with its compatibility score.
type RoommatePair struct {
	First  Student `json:"first" yaml:"first"`
	Second Student `json:"second" yaml:"second"`

	// Score is the pair compatibility in [0,100].
	Score int `json:"score" yaml:"score"`

	// Reason is a human-readable explanation, e.g. "Same year, Shared tags".
	Reason string `json:"reason" yaml:"reason"`
}
