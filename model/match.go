// Package model defines the value types exchanged between the matcher and its callers.
package model

// MatchType classifies why a candidate matched a query.
type MatchType string

const (
	MatchTypeExact     MatchType = "exact"
	MatchTypePrefix    MatchType = "prefix" // also reported for word-start matches
	MatchTypeSubstring MatchType = "substring"
	MatchTypeFuzzy     MatchType = "fuzzy"
	MatchTypeNone      MatchType = "none"
)

// MatchRange is a half-open interval [Start, End) of rune offsets into the candidate text.
type MatchRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of runes covered by the range.
func (r MatchRange) Len() int {
	return r.End - r.Start
}

// MatchResult is the outcome of scoring one query against one candidate text.
// Score is 0 exactly when MatchType is MatchTypeNone and MatchRanges is empty.
type MatchResult struct {
	Score       float64      `json:"score"`
	MatchType   MatchType    `json:"match_type"`
	MatchRanges []MatchRange `json:"match_ranges"`
}

// NoMatch returns the zero-score result.
func NoMatch() MatchResult {
	return MatchResult{Score: 0, MatchType: MatchTypeNone, MatchRanges: []MatchRange{}}
}

// IsMatch reports whether the result carries a positive score.
func (r MatchResult) IsMatch() bool {
	return r.Score > 0
}

// Candidate is a caller-owned item eligible for matching. Only DisplayName is read.
type Candidate struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// SearchResult pairs a matching candidate with its score details.
type SearchResult struct {
	Candidate   Candidate    `json:"candidate"`
	Score       float64      `json:"score"`
	MatchType   MatchType    `json:"match_type"`
	MatchRanges []MatchRange `json:"match_ranges"`
}
