package matcher

import "github.com/gcbaptista/go-label-matcher/config"

// DefaultSettingsForTest returns the default settings with sequential scoring.
func DefaultSettingsForTest() config.MatcherSettings {
	s := config.DefaultMatcherSettings()
	s.ParallelThreshold = 1 << 30
	return s
}
