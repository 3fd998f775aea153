package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcbaptista/go-label-matcher/model"
)

const scoreDelta = 1e-9

func TestScoreScenarios(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		candidate  string
		wantScore  float64
		wantType   model.MatchType
		wantRanges []model.MatchRange
	}{
		{"exact ignores case", "work", "Work", 1.0, model.MatchTypeExact, []model.MatchRange{{Start: 0, End: 4}}},
		{"exact with upper query", "WORK TRAVEL", "work travel", 1.0, model.MatchTypeExact, []model.MatchRange{{Start: 0, End: 11}}},
		{"query is trimmed", "  work  ", "Work", 1.0, model.MatchTypeExact, []model.MatchRange{{Start: 0, End: 4}}},
		{"prefix", "wo", "Work Travel", 0.9 + 0.1*2/11, model.MatchTypePrefix, []model.MatchRange{{Start: 0, End: 2}}},
		{"single rune prefix", "w", "Work", 0.925, model.MatchTypePrefix, []model.MatchRange{{Start: 0, End: 1}}},
		{"substring leftmost", "trav", "Work Travel", 0.7 + 0.1*4/11, model.MatchTypeSubstring, []model.MatchRange{{Start: 5, End: 9}}},
		{"single rune substring", "k", "Work", 0.7 + 0.1/4, model.MatchTypeSubstring, []model.MatchRange{{Start: 3, End: 4}}},
		{
			"fuzzy via edit distance with subsequence highlights", "wrk", "Work",
			0.4875, model.MatchTypeFuzzy, []model.MatchRange{{Start: 0, End: 1}, {Start: 2, End: 3}, {Start: 3, End: 4}},
		},
		{"fuzzy pure edit distance has no highlights", "tarvel", "Travel", (1 - 2.0/6) * 0.65, model.MatchTypeFuzzy, []model.MatchRange{}},
		{"short query fuzzy above threshold", "axc", "abc", (1 - 1.0/3) * 0.65, model.MatchTypeFuzzy, []model.MatchRange{}},
		{"short query fuzzy at threshold is rejected", "ax", "ab", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"no shared characters", "xy", "Work", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"single rune never fuzzy", "x", "y", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"empty query", "", "Work", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"blank query", "   ", "Work", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"blank candidate", "work", "  ", 0, model.MatchTypeNone, []model.MatchRange{}},
		{"unicode exact counts runes", "ÉTÉ", "été", 1.0, model.MatchTypeExact, []model.MatchRange{{Start: 0, End: 3}}},
		{"unicode substring offsets are runes", "ré", "Café résumé", 0.7 + 0.1*2/11, model.MatchTypeSubstring, []model.MatchRange{{Start: 5, End: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.query, tt.candidate)
			assert.InDelta(t, tt.wantScore, got.Score, scoreDelta)
			assert.Equal(t, tt.wantType, got.MatchType)
			assert.Equal(t, tt.wantRanges, got.MatchRanges)
		})
	}
}

func TestScoreFuzzyRangesMergeForHighlighting(t *testing.T) {
	got := Score("wrk", "Work")
	assert.Equal(t, []model.MatchRange{{Start: 0, End: 1}, {Start: 2, End: 4}}, MergeRanges(got.MatchRanges))
}

func TestScoreSelfIsExact(t *testing.T) {
	for _, s := range []string{"Work", "follow-up", "Clients/ACME", "a", "Ünïcode label"} {
		got := Score(s, s)
		assert.Equal(t, 1.0, got.Score, s)
		assert.Equal(t, model.MatchTypeExact, got.MatchType, s)
		assert.Equal(t, []model.MatchRange{{Start: 0, End: len([]rune(s))}}, got.MatchRanges, s)
	}
}

func TestScoreTruePrefixIsPrefix(t *testing.T) {
	candidate := "Quarterly Review"
	runes := []rune(candidate)
	for n := 1; n < len(runes); n++ {
		q := string(runes[:n])
		if isBlank(q) {
			continue
		}
		got := Score(q, candidate)
		assert.Equal(t, model.MatchTypePrefix, got.MatchType, q)
		assert.GreaterOrEqual(t, got.Score, 0.9, q)
		assert.Less(t, got.Score, 1.0, q)
	}
}

func TestScoreFuzzyStaysBelowSubstring(t *testing.T) {
	pairs := [][2]string{{"wrk", "Work"}, {"tarvel", "Travel"}, {"persnl", "Personal"}, {"axc", "abc"}}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		assert.Equal(t, model.MatchTypeFuzzy, got.MatchType, p)
		assert.Greater(t, got.Score, 0.0, p)
		assert.Less(t, got.Score, 0.7, p)
	}
}

// The word-start rule is kept for parity but the substring rule runs first and
// always finds the same or an earlier occurrence. These tests pin that down.
func TestWordStartStrategyIsNeverChosen(t *testing.T) {
	queries := []string{"w", "wo", "tr", "trav", "up", "follow", "acme", "q3", "ab", "do", "/a", "-u", "wrk", "x"}
	candidates := []string{"Work Travel", "follow-up", "clients/acme/q3", "to_do", "cab ab", "Travel", "a b c"}

	m := New(DefaultSettingsForTest())
	for _, q := range queries {
		for _, c := range candidates {
			_, chosen := m.score(q, c)
			assert.NotEqual(t, strategyWordStart, chosen, "query %q candidate %q", q, c)
		}
	}
}

func TestWordStartMatchInIsolation(t *testing.T) {
	r, ok := wordStartMatch(fold("ab"), fold("cab AB"))
	assert.True(t, ok)
	assert.Equal(t, model.MatchRange{Start: 4, End: 6}, r)

	// The substring rule claims the earlier, mid-word occurrence instead.
	got := Score("ab", "cab AB")
	assert.Equal(t, model.MatchTypeSubstring, got.MatchType)
	assert.Equal(t, []model.MatchRange{{Start: 1, End: 3}}, got.MatchRanges)

	_, ok = wordStartMatch(fold("zz"), fold("cab AB"))
	assert.False(t, ok)
}

func TestScoreResultInvariants(t *testing.T) {
	queries := []string{"", "w", "wo", "wrk", "xy", "trav", "TRAVEL", "tarvel", "é", "q3 ", "follow up"}
	candidates := []string{"Work", "Work Travel", "follow-up", "clients/acme/q3", "Café résumé", " padded "}

	for _, q := range queries {
		for _, c := range candidates {
			got := Score(q, c)
			assert.GreaterOrEqual(t, got.Score, 0.0)
			assert.LessOrEqual(t, got.Score, 1.0)
			assert.Equal(t, got.Score == 0, got.MatchType == model.MatchTypeNone, "query %q candidate %q", q, c)
			if got.MatchType == model.MatchTypeNone {
				assert.Empty(t, got.MatchRanges)
			}
			if got.MatchType != model.MatchTypeNone && got.MatchType != model.MatchTypeFuzzy {
				assert.NotEmpty(t, got.MatchRanges)
			}
			assert.NotNil(t, got.MatchRanges)
			n := len([]rune(c))
			for _, r := range got.MatchRanges {
				assert.True(t, 0 <= r.Start && r.Start < r.End && r.End <= n, "range %v out of bounds for %q", r, c)
			}
		}
	}
}

func TestLevenshteinWrapper(t *testing.T) {
	assert.Equal(t, 1, Levenshtein("wrk", "work"))
	assert.Equal(t, Levenshtein("abc", "yabd"), Levenshtein("yabd", "abc"))
	assert.Equal(t, 5, Levenshtein("", "inbox"))
	assert.Equal(t, 0, Levenshtein("same", "same"))
}
