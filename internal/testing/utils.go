// Package testing provides utilities and helpers for testing the label matcher.
package testing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-label-matcher/model"
	"github.com/gcbaptista/go-label-matcher/services"
	"github.com/gcbaptista/go-label-matcher/store"
)

// CandidatesOf builds candidates with ids c0, c1, ... in the given order
func CandidatesOf(names ...string) []model.Candidate {
	out := make([]model.Candidate, len(names))
	for i, n := range names {
		out[i] = model.Candidate{ID: fmt.Sprintf("c%d", i), DisplayName: n}
	}
	return out
}

// CreateTestLabelStore creates a label store preloaded with names
func CreateTestLabelStore(t *testing.T, names ...string) *store.LabelStore {
	t.Helper()
	labels := store.NewLabelStore()
	for _, n := range names {
		_, err := labels.Add(n, "")
		require.NoError(t, err, "Failed to add test label %q", n)
	}
	return labels
}

// DisplayNames returns the display names of results in order
func DisplayNames(results []model.SearchResult) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Candidate.DisplayName
	}
	return names
}

// AssertRanked verifies that every result has a positive score and that
// scores never increase along the slice
func AssertRanked(t *testing.T, results []model.SearchResult, msgAndArgs ...interface{}) {
	t.Helper()
	for i, r := range results {
		assert.Greater(t, r.Score, 0.0, msgAndArgs...)
		assert.NotEqual(t, model.MatchTypeNone, r.MatchType, msgAndArgs...)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score, r.Score, msgAndArgs...)
		}
	}
}

// SearchTestCase represents a test case for search operations
type SearchTestCase struct {
	Name          string
	Query         string
	ExpectedCount int
	ExpectedFirst string // Expected first result display name
	ExpectedType  model.MatchType
	ValidateFunc  func(t *testing.T, results []model.SearchResult)
}

// RunSearchTests runs a suite of search tests against a fixed candidate set
func RunSearchTests(t *testing.T, m services.LabelMatcher, candidates []model.Candidate, tests []SearchTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			results := m.Search(tt.Query, candidates)

			assert.Len(t, results, tt.ExpectedCount, "Result count should match")
			AssertRanked(t, results, tt.Query)

			if tt.ExpectedFirst != "" && len(results) > 0 {
				assert.Equal(t, tt.ExpectedFirst, results[0].Candidate.DisplayName, "First result should match expected")
				if tt.ExpectedType != "" {
					assert.Equal(t, tt.ExpectedType, results[0].MatchType, "First result match type should match expected")
				}
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, results)
			}
		})
	}
}
