package services

import (
	"github.com/gcbaptista/go-label-matcher/model"
)

// LabelMatcher scores and ranks candidates against a query.
// *matcher.Matcher implements it.
type LabelMatcher interface {
	Score(query, candidate string) model.MatchResult
	Search(query string, candidates []model.Candidate) []model.SearchResult
	HasExactMatch(query string, candidates []model.Candidate) bool
}

// LabelCatalog manages the known labels. *store.LabelStore implements it.
type LabelCatalog interface {
	Add(displayName, color string) (model.Label, error)
	Get(id string) (model.Label, error)
	Delete(id string) error
	List() []model.Label
	Candidates() []model.Candidate
	Count() int
}

// SearchResponse is the body returned by the search endpoints.
type SearchResponse struct {
	Hits      []model.SearchResult `json:"hits"`
	Total     int                  `json:"total"`                // Matches before the limit was applied
	Took      int64                `json:"took"`                 // milliseconds
	QueryId   string               `json:"query_id"`             // unique UUID for this search query
	CanCreate *bool                `json:"can_create,omitempty"` // Catalog search only: query is non-blank and no label matches it exactly
}

// ScoreResponse is the body returned by the score endpoint.
type ScoreResponse struct {
	model.MatchResult
	MergedRanges []model.MatchRange `json:"merged_ranges"` // MatchRanges merged for highlighting
}
