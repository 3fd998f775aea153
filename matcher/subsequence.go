package matcher

import (
	"github.com/gcbaptista/go-label-matcher/model"
)

// SubsequenceMatch tests whether the runes of query appear in order inside candidate,
// ignoring case. On success it returns a score in (0.5, 0.8] that grows with the
// density of the match, and one single-rune range per matched query rune.
// On failure it returns 0 and an empty slice.
//
// The scan is a single greedy pass, so repeated characters bind to their earliest
// occurrence rather than to the densest possible alignment.
func SubsequenceMatch(query, candidate string) (float64, []model.MatchRange) {
	return subsequence(fold(query), fold(candidate))
}

func subsequence(q, c []rune) (float64, []model.MatchRange) {
	if len(q) == 0 {
		return 0, []model.MatchRange{}
	}

	ranges := make([]model.MatchRange, 0, len(q))
	qi := 0
	for i := 0; i < len(c) && qi < len(q); i++ {
		if c[i] == q[qi] {
			ranges = append(ranges, model.MatchRange{Start: i, End: i + 1})
			qi++
		}
	}

	if qi < len(q) {
		return 0, []model.MatchRange{}
	}

	span := ranges[len(ranges)-1].End - ranges[0].Start
	density := float64(len(q)) / float64(span)
	return 0.5 + 0.3*density, ranges
}
