package matcher

import (
	"sort"

	"github.com/gcbaptista/go-label-matcher/model"
)

// MergeRanges returns ranges sorted by start with overlapping or touching ranges
// combined, so that consecutive output ranges are separated by a strict gap.
// The input slice is not modified. Merging an already merged slice is a no-op.
func MergeRanges(ranges []model.MatchRange) []model.MatchRange {
	merged := make([]model.MatchRange, 0, len(ranges))
	if len(ranges) == 0 {
		return merged
	}

	sorted := make([]model.MatchRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	current := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= current.End {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}
