// Package matcher ranks candidate labels against a short user-typed query.
//
// Scoring tries a fixed hierarchy of strategies and keeps the first that succeeds:
// exact, prefix, substring, word-start and finally fuzzy (edit distance and
// in-order subsequence). Every result carries a score in [0, 1], a match type and
// the rune ranges of the candidate text to highlight. All operations are pure and
// a Matcher is safe for concurrent use.
package matcher

import (
	"strings"
	"unicode"

	"github.com/gcbaptista/go-label-matcher/config"
	"github.com/gcbaptista/go-label-matcher/internal/typoutil"
	"github.com/gcbaptista/go-label-matcher/model"
)

// Matcher scores and ranks candidates using a fixed set of tuning constants.
type Matcher struct {
	settings config.MatcherSettings
}

// New creates a Matcher. Unset settings take their defaults.
func New(settings config.MatcherSettings) *Matcher {
	settings.ApplyDefaults()
	return &Matcher{settings: settings}
}

// Settings returns the effective settings of the matcher.
func (m *Matcher) Settings() config.MatcherSettings {
	return m.settings
}

var defaultMatcher = New(config.DefaultMatcherSettings())

// Score scores query against candidate with the default settings.
func Score(query, candidate string) model.MatchResult {
	return defaultMatcher.Score(query, candidate)
}

// Search ranks candidates against query with the default settings.
func Search(query string, candidates []model.Candidate) []model.SearchResult {
	return defaultMatcher.Search(query, candidates)
}

// HasExactMatch reports whether any candidate's display name equals query, ignoring case.
func HasExactMatch(query string, candidates []model.Candidate) bool {
	return defaultMatcher.HasExactMatch(query, candidates)
}

// Levenshtein returns the edit distance between a and b. Comparison is case-sensitive.
func Levenshtein(a, b string) int {
	return typoutil.CalculateLevenshteinDistance(a, b)
}

// fold lower-cases s rune by rune so that folded and original rune offsets coincide.
func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasRunePrefix(s, prefix []rune) bool {
	return len(prefix) <= len(s) && runesEqual(s[:len(prefix)], prefix)
}

// indexRunes returns the rune index of the leftmost occurrence of sub in s, or -1.
func indexRunes(s, sub []rune) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if runesEqual(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}
