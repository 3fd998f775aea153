package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/gcbaptista/go-label-matcher/matcher"
	"github.com/gcbaptista/go-label-matcher/model"
)

// painter renders search hits for the terminal. Without colors, highlighted
// ranges are wrapped in brackets.
type painter struct {
	colors bool
}

// newPainter resolves mode (auto, always or never) against the environment.
// auto only colors output written to a terminal stdout.
func newPainter(mode string, out io.Writer) (painter, error) {
	switch mode {
	case "always":
		return painter{colors: true}, nil
	case "never":
		return painter{}, nil
	case "", "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok || os.Getenv("TERM") == "dumb" {
			return painter{}, nil
		}
		return painter{colors: out == io.Writer(os.Stdout) && !color.NoColor}, nil
	default:
		return painter{}, fmt.Errorf("invalid color mode %q: must be auto, always, or never", mode)
	}
}

var matchTypeColors = map[model.MatchType]color.Attribute{
	model.MatchTypeExact:     color.FgGreen,
	model.MatchTypePrefix:    color.FgCyan,
	model.MatchTypeSubstring: color.FgBlue,
	model.MatchTypeFuzzy:     color.FgMagenta,
}

func (p painter) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// hit formats one search result as "score  type  highlighted-name".
func (p painter) hit(h model.SearchResult) string {
	matchType := fmt.Sprintf("%-9s", h.MatchType)
	if p.colors {
		matchType = p.paint(matchType, matchTypeColors[h.MatchType])
	}
	return fmt.Sprintf("%.4f  %s  %s", h.Score, matchType, p.highlight(h.Candidate.DisplayName, h.MatchRanges))
}

// highlight marks the merged ranges of text. Ranges past the end of text are ignored.
func (p painter) highlight(text string, ranges []model.MatchRange) string {
	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, r := range matcher.MergeRanges(ranges) {
		if r.End > len(runes) {
			break
		}
		b.WriteString(string(runes[pos:r.Start]))
		b.WriteString(p.mark(string(runes[r.Start:r.End])))
		pos = r.End
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}

func (p painter) mark(s string) string {
	if p.colors {
		return p.paint(s, color.FgYellow, color.Bold)
	}
	return "[" + s + "]"
}
