package matcher

import (
	"strings"

	"github.com/gcbaptista/go-label-matcher/internal/tokenizer"
	"github.com/gcbaptista/go-label-matcher/internal/typoutil"
	"github.com/gcbaptista/go-label-matcher/model"
)

// strategy identifies which rule produced a result. Word-start results are
// reported to callers as MatchTypePrefix.
type strategy int

const (
	strategyNone strategy = iota
	strategyExact
	strategyPrefix
	strategySubstring
	strategyWordStart
	strategyFuzzy
)

// Score scores query against candidate.
//
// The query is trimmed; the candidate is used as given so that ranges index into
// the caller's text. A blank query or candidate yields the zero result.
func (m *Matcher) Score(query, candidate string) model.MatchResult {
	result, _ := m.score(query, candidate)
	return result
}

func (m *Matcher) score(query, candidate string) (model.MatchResult, strategy) {
	if isBlank(query) || isBlank(candidate) {
		return model.NoMatch(), strategyNone
	}

	q := fold(strings.TrimSpace(query))
	c := fold(candidate)
	ratio := float64(len(q)) / float64(len(c))

	if runesEqual(q, c) {
		return matchOf(1.0, model.MatchTypeExact, model.MatchRange{Start: 0, End: len(c)}), strategyExact
	}

	if hasRunePrefix(c, q) {
		return matchOf(0.9+0.1*ratio, model.MatchTypePrefix, model.MatchRange{Start: 0, End: len(q)}), strategyPrefix
	}

	if idx := indexRunes(c, q); idx >= 0 {
		return matchOf(0.7+0.1*ratio, model.MatchTypeSubstring, model.MatchRange{Start: idx, End: idx + len(q)}), strategySubstring
	}

	// Any word-start hit is also a substring hit, so the rule above always wins first.
	if r, ok := wordStartMatch(q, c); ok {
		return matchOf(0.8+0.1*ratio, model.MatchTypePrefix, r), strategyWordStart
	}

	if len(q) >= m.settings.MinFuzzyQueryLength {
		if result, ok := m.fuzzyMatch(q, c); ok {
			return result, strategyFuzzy
		}
	}

	return model.NoMatch(), strategyNone
}

// wordStartMatch finds the first delimiter-separated word of c that starts with q.
func wordStartMatch(q, c []rune) (model.MatchRange, bool) {
	query := string(q)
	for _, word := range tokenizer.SplitWords(string(c)) {
		if strings.HasPrefix(word.Text, query) {
			return model.MatchRange{Start: word.Offset, End: word.Offset + len(q)}, true
		}
	}
	return model.MatchRange{}, false
}

func (m *Matcher) fuzzyMatch(q, c []rune) (model.MatchResult, bool) {
	longest := len(q)
	if len(c) > longest {
		longest = len(c)
	}
	similarity := 1 - float64(typoutil.LevenshteinRunes(q, c))/float64(longest)

	subScore, ranges := subsequence(q, c)
	fuzzyScore := similarity
	if subScore > fuzzyScore {
		fuzzyScore = subScore
	}

	threshold := m.settings.LongQueryFuzzyThreshold
	if len(q) <= m.settings.ShortQueryMaxLength {
		threshold = m.settings.ShortQueryFuzzyThreshold
	}
	if fuzzyScore <= threshold {
		return model.MatchResult{}, false
	}

	// A pure edit-distance win has no subsequence ranges and is reported without highlights.
	return model.MatchResult{
		Score:       fuzzyScore * m.settings.FuzzyDamping,
		MatchType:   model.MatchTypeFuzzy,
		MatchRanges: ranges,
	}, true
}

func matchOf(score float64, matchType model.MatchType, r model.MatchRange) model.MatchResult {
	return model.MatchResult{
		Score:       score,
		MatchType:   matchType,
		MatchRanges: []model.MatchRange{r},
	}
}
