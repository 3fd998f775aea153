// Package config provides configuration structures for the label matcher and its server.
// It defines the matcher's tuning constants, server options, and how they are loaded.
package config

import (
	"runtime"
)

const (
	DefaultFuzzyDamping             = 0.65
	DefaultShortQueryFuzzyThreshold = 0.5
	DefaultLongQueryFuzzyThreshold  = 0.4
	DefaultShortQueryMaxLength      = 3
	DefaultMinFuzzyQueryLength      = 2
	DefaultParallelThreshold        = 1024
)

// MatcherSettings holds the tuning constants of the scorer and the batch ranker.
//
// The defaults are tuned heuristics and reproduce the reference ranking exactly:
// fuzzy scores are damped by 0.65 so they always rank below the weakest substring
// match (0.7), and queries of up to 3 runes need a fuzzy score above 0.5 while
// longer queries need one above 0.4.
type MatcherSettings struct {
	FuzzyDamping             float64 `json:"fuzzy_damping" mapstructure:"fuzzy_damping"`                             // Multiplier applied to fuzzy scores, must stay below 0.7
	ShortQueryFuzzyThreshold float64 `json:"short_query_fuzzy_threshold" mapstructure:"short_query_fuzzy_threshold"` // Fuzzy score a short query must exceed
	LongQueryFuzzyThreshold  float64 `json:"long_query_fuzzy_threshold" mapstructure:"long_query_fuzzy_threshold"`   // Fuzzy score a longer query must exceed
	ShortQueryMaxLength      int     `json:"short_query_max_length" mapstructure:"short_query_max_length"`           // Longest query (in runes) still treated as short
	MinFuzzyQueryLength      int     `json:"min_fuzzy_query_length" mapstructure:"min_fuzzy_query_length"`           // Shortest query (in runes) eligible for fuzzy matching
	ParallelThreshold        int     `json:"parallel_threshold" mapstructure:"parallel_threshold"`                   // Candidate count from which Search scores concurrently
	MaxWorkers               int     `json:"max_workers" mapstructure:"max_workers"`                                 // Upper bound on concurrent scoring goroutines
}

// DefaultMatcherSettings returns settings with every default applied.
func DefaultMatcherSettings() MatcherSettings {
	var s MatcherSettings
	s.ApplyDefaults()
	return s
}

// ApplyDefaults applies default values to unset (zero) settings.
// Zero is never a usable value: Validate rejects zero thresholds and damping.
func (s *MatcherSettings) ApplyDefaults() {
	if s.FuzzyDamping == 0 {
		s.FuzzyDamping = DefaultFuzzyDamping
	}
	if s.ShortQueryFuzzyThreshold == 0 {
		s.ShortQueryFuzzyThreshold = DefaultShortQueryFuzzyThreshold
	}
	if s.LongQueryFuzzyThreshold == 0 {
		s.LongQueryFuzzyThreshold = DefaultLongQueryFuzzyThreshold
	}
	if s.ShortQueryMaxLength == 0 {
		s.ShortQueryMaxLength = DefaultShortQueryMaxLength
	}
	if s.MinFuzzyQueryLength == 0 {
		s.MinFuzzyQueryLength = DefaultMinFuzzyQueryLength
	}
	if s.ParallelThreshold == 0 {
		s.ParallelThreshold = DefaultParallelThreshold
	}
	if s.MaxWorkers == 0 {
		s.MaxWorkers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks the settings and returns one message per problem found.
func (s *MatcherSettings) Validate() []string {
	var errors []string

	if s.FuzzyDamping <= 0 || s.FuzzyDamping >= 0.7 {
		errors = append(errors, "fuzzy_damping must be greater than 0 and less than 0.7")
	}
	if s.ShortQueryFuzzyThreshold <= 0 || s.ShortQueryFuzzyThreshold >= 1 {
		errors = append(errors, "short_query_fuzzy_threshold must be greater than 0 and less than 1")
	}
	if s.LongQueryFuzzyThreshold <= 0 || s.LongQueryFuzzyThreshold >= 1 {
		errors = append(errors, "long_query_fuzzy_threshold must be greater than 0 and less than 1")
	}
	if s.ShortQueryMaxLength < 1 {
		errors = append(errors, "short_query_max_length must be at least 1")
	}
	if s.MinFuzzyQueryLength < 1 {
		errors = append(errors, "min_fuzzy_query_length must be at least 1")
	}
	if s.ParallelThreshold < 1 {
		errors = append(errors, "parallel_threshold must be at least 1")
	}
	if s.MaxWorkers < 1 {
		errors = append(errors, "max_workers must be at least 1")
	}

	return errors
}
