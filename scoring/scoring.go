// Package scoring computes the affinity between a student and a dorm.
//
// The score is a sum of independent bonuses:
//
//	preference rank  max(0, 10 - 2*rank)   first occurrence of the dorm in the student's preferences
//	priority         3 * priority
//	year affinity    max(0, 5 - |year - 2|) peaks at year 2
//	quiet match      +2 when the dorm is "quiet" and the student's tag text contains "quiet"
//	library match    +2 when the dorm is "near_library" and the tag text contains "studious"
//
// Tag matching is a substring test on the raw tag text, while dorm attributes
// use set membership. Scores are pure functions of their inputs.
package scoring

import (
	"slices"
	"strings"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

const (
	rankBonusMax   = 10
	rankBonusStep  = 2
	priorityWeight = 3
	yearBonusMax   = 5
	yearPeak       = 2
	tagBonus       = 2

	attrQuiet       = "quiet"
	attrNearLibrary = "near_library"
	tagQuiet        = "quiet"
	tagStudious     = "studious"
)

// Compatibility returns the affinity score of student s for dorm d.
func Compatibility(s types.Student, d types.Dorm) float64 {
	return compatibility(s, s.Preferences(), d, d.AttributeSet())
}

// Candidate is a dorm paired with its score for one student.
type Candidate struct {
	Dorm  types.Dorm
	Score float64
}

// Rank scores every dorm for s and returns them ordered by score, highest first.
//
// The sort is stable: dorms with equal scores keep their input order, which
// makes the outcome independent of map iteration or sort implementation.
//
// Complexity: O(m log m) for m dorms, plus parsing each dorm's attributes once.
func Rank(s types.Student, dorms []types.Dorm) []Candidate {
	prefs := s.Preferences()
	out := make([]Candidate, len(dorms))
	for i, d := range dorms {
		out[i] = Candidate{Dorm: d, Score: compatibility(s, prefs, d, d.AttributeSet())}
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return out
}

func compatibility(s types.Student, prefs []string, d types.Dorm, attrs map[string]struct{}) float64 {
	score := 0.0

	if rank := slices.Index(prefs, d.ID); rank >= 0 {
		score += float64(max(0, rankBonusMax-rankBonusStep*rank))
	}

	score += float64(priorityWeight * s.Priority)
	score += float64(max(0, yearBonusMax-abs(s.Year-yearPeak)))

	if _, ok := attrs[attrQuiet]; ok && strings.Contains(s.Tags, tagQuiet) {
		score += tagBonus
	}
	if _, ok := attrs[attrNearLibrary]; ok && strings.Contains(s.Tags, tagStudious) {
		score += tagBonus
	}

	return score
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
