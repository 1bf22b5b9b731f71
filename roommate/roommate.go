// Package roommate scores student pairs and suggests likely roommates.
//
// Suggestions are greedy: each student is matched with its single best
// later-listed partner. A student may be the best match of several earlier
// students, and no global optimum is sought.
package roommate

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

const (
	// DefaultMaxPairs is used when Suggest is asked for zero or fewer pairs.
	DefaultMaxPairs = 10

	// DefaultMinScore is the lowest pair score worth suggesting.
	DefaultMinScore = 60

	baseScore        = 50
	sameYearBonus    = 25
	priorityBonus    = 15
	sharedTagBonus   = 10
	sameInitialBonus = 5
	maxScore         = 100
)

// Reason strings attached to suggestions.
const (
	ReasonSameYear    = "Same year"
	ReasonSharedTags  = "Shared tags"
	ReasonPersonality = "Personality match"
)

// PairCompatibility scores how well two students would share a room.
//
// The score starts at 50 and adds 25 for the same year, 15 when priorities
// differ by at most one, 10 per shared tag (lower-cased tokens) and 5 when the
// names start with the same letter ignoring case. The result is clamped to [0,100].
func PairCompatibility(a, b types.Student) int {
	score := baseScore
	if a.Year == b.Year {
		score += sameYearBonus
	}
	if abs(a.Priority-b.Priority) <= 1 {
		score += priorityBonus
	}
	score += sharedTagBonus * sharedTags(a, b)
	if sameInitial(a.Name, b.Name) {
		score += sameInitialBonus
	}

	return min(max(score, 0), maxScore)
}

// Option configures Suggest.
type Option func(*options)

type options struct {
	minScore int
}

// WithMinScore overrides DefaultMinScore.
func WithMinScore(score int) Option {
	return func(o *options) {
		o.minScore = score
	}
}

// Suggest proposes roommate pairs.
//
// For each student in input order, the best-scoring later student is chosen
// (the earliest wins ties) if the pair reaches the minimum score. Pairs are
// returned sorted by score descending, keeping discovery order on ties, and
// truncated to maxPairs.
//
// Parameters:
//   - students: Candidates in input order
//   - maxPairs: Result limit; values <= 0 select DefaultMaxPairs
//   - opts: Optional configuration (WithMinScore)
//
// Returns:
//   - []types.RoommatePair: Empty for fewer than two students
func Suggest(students []types.Student, maxPairs int, opts ...Option) []types.RoommatePair {
	o := options{minScore: DefaultMinScore}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if maxPairs <= 0 {
		maxPairs = DefaultMaxPairs
	}
	if len(students) < 2 {
		return []types.RoommatePair{}
	}

	pairs := make([]types.RoommatePair, 0, len(students))
	for i, s := range students {
		best, bestScore := -1, -1
		for j := i + 1; j < len(students); j++ {
			if score := PairCompatibility(s, students[j]); score > bestScore {
				best, bestScore = j, score
			}
		}
		if best < 0 || bestScore < o.minScore {
			continue
		}
		pairs = append(pairs, types.RoommatePair{
			First:  s,
			Second: students[best],
			Score:  bestScore,
			Reason: reason(s, students[best]),
		})
	}

	slices.SortStableFunc(pairs, func(a, b types.RoommatePair) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(pairs) > maxPairs {
		pairs = pairs[:maxPairs]
	}

	return pairs
}

func reason(a, b types.Student) string {
	var parts []string
	if a.Year == b.Year {
		parts = append(parts, ReasonSameYear)
	}
	if sharedTags(a, b) > 0 {
		parts = append(parts, ReasonSharedTags)
	}
	if len(parts) == 0 {
		return ReasonPersonality
	}

	return strings.Join(parts, ", ")
}

func sharedTags(a, b types.Student) int {
	left := lowerTags(a)
	n := 0
	for tag := range lowerTags(b) {
		if _, ok := left[tag]; ok {
			n++
		}
	}

	return n
}

func lowerTags(s types.Student) map[string]struct{} {
	tags := s.TagSet()
	out := make(map[string]struct{}, len(tags))
	for tag := range tags {
		out[strings.ToLower(tag)] = struct{}{}
	}

	return out
}

func sameInitial(a, b string) bool {
	ra, _ := utf8.DecodeRuneInString(strings.TrimSpace(a))
	rb, _ := utf8.DecodeRuneInString(strings.TrimSpace(b))
	if ra == utf8.RuneError || rb == utf8.RuneError {
		return false
	}

	return unicode.ToLower(ra) == unicode.ToLower(rb)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
