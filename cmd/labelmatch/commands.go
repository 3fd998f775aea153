package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/go-label-matcher/matcher"
	"github.com/gcbaptista/go-label-matcher/model"
	"github.com/gcbaptista/go-label-matcher/services"
)

func newScoreCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "score <query> <text>",
		Short: "Score one query against one label and print the result as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}

			result := matcher.New(cfg.Matcher).Score(args[0], args[1])
			return writeJSON(cmd.OutOrStdout(), services.ScoreResponse{
				MatchResult:  result,
				MergedRanges: matcher.MergeRanges(result.MatchRanges),
			})
		},
	}
}

func newSearchCmd(cfgFile *string) *cobra.Command {
	var (
		candidatesFile string
		limit          int
		asJSON         bool
		colorMode      string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Rank the labels of a YAML/JSON file against a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *cfgFile)
			if err != nil {
				return err
			}
			candidates, err := loadCandidates(candidatesFile)
			if err != nil {
				return err
			}

			m := matcher.New(cfg.Matcher)
			hits := m.Search(args[0], candidates)
			if limit > 0 && len(hits) > limit {
				hits = hits[:limit]
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, hits)
			}

			p, err := newPainter(colorMode, out)
			if err != nil {
				return err
			}
			for _, h := range hits {
				fmt.Fprintln(out, p.hit(h))
			}
			if strings.TrimSpace(args[0]) != "" && !m.HasExactMatch(args[0], candidates) {
				fmt.Fprintf(out, "no label named %q\n", strings.TrimSpace(args[0]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&candidatesFile, "candidates", "c", "", "YAML/JSON list of labels (required)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results to print (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "color output: auto, always, never")
	_ = cmd.MarkFlagRequired("candidates")

	return cmd
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <start:end>...",
		Short: "Merge highlight ranges into a sorted, non-overlapping set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := make([]model.MatchRange, 0, len(args))
			for _, arg := range args {
				r, err := parseRange(arg)
				if err != nil {
					return err
				}
				ranges = append(ranges, r)
			}

			merged := matcher.MergeRanges(ranges)
			parts := make([]string, len(merged))
			for i, r := range merged {
				parts[i] = fmt.Sprintf("%d:%d", r.Start, r.End)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			return nil
		},
	}
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Print the case-sensitive Levenshtein distance between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), matcher.Levenshtein(args[0], args[1]))
			return nil
		},
	}
}

func parseRange(s string) (model.MatchRange, error) {
	startStr, endStr, ok := strings.Cut(s, ":")
	if !ok {
		return model.MatchRange{}, fmt.Errorf("invalid range %q: expected start:end", s)
	}
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return model.MatchRange{}, fmt.Errorf("invalid range start %q: %w", startStr, err)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return model.MatchRange{}, fmt.Errorf("invalid range end %q: %w", endStr, err)
	}
	if start < 0 || end <= start {
		return model.MatchRange{}, fmt.Errorf("invalid range %q: need 0 <= start < end", s)
	}
	return model.MatchRange{Start: start, End: end}, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
