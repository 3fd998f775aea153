package matcher

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-label-matcher/model"
)

// Search scores every candidate against query and returns those with a positive
// score, best first. Candidates with equal scores keep their input order.
// A blank query yields an empty slice.
//
// Candidate sets of at least Settings().ParallelThreshold entries are scored
// concurrently; the output is identical to the sequential path.
func (m *Matcher) Search(query string, candidates []model.Candidate) []model.SearchResult {
	results := make([]model.SearchResult, 0) // Initialize as empty slice, not nil
	if isBlank(query) || len(candidates) == 0 {
		return results
	}

	scored := m.scoreAll(query, candidates)
	for i, r := range scored {
		if !r.IsMatch() {
			continue
		}
		results = append(results, model.SearchResult{
			Candidate:   candidates[i],
			Score:       r.Score,
			MatchType:   r.MatchType,
			MatchRanges: r.MatchRanges,
		})
	}

	// Stable sort keeps input order as the secondary key.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// scoreAll returns one result per candidate, indexed like candidates.
func (m *Matcher) scoreAll(query string, candidates []model.Candidate) []model.MatchResult {
	scored := make([]model.MatchResult, len(candidates))

	workers := m.settings.MaxWorkers
	if len(candidates) < m.settings.ParallelThreshold || workers <= 1 {
		for i, c := range candidates {
			scored[i] = m.Score(query, c.DisplayName)
		}
		return scored
	}

	chunk := chunkSize(len(candidates), workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(candidates); start += chunk {
		start := start // per-iteration copy for the goroutine (go < 1.22 loop semantics)
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				scored[i] = m.Score(query, candidates[i].DisplayName)
			}
			return nil
		})
	}
	_ = g.Wait() // scoring never fails

	return scored
}

// chunksPerWorker splits the candidates finer than one chunk per worker so that
// a worker finishing early picks up another chunk.
const chunksPerWorker = 4

// chunkSize returns how many candidates each scoring goroutine handles.
func chunkSize(n, workers int) int {
	chunks := workers * chunksPerWorker
	size := (n + chunks - 1) / chunks
	if size < 1 {
		size = 1
	}
	return size
}

// HasExactMatch reports whether the trimmed query equals any candidate's display
// name, ignoring case. It agrees with the exact rule of Score.
func (m *Matcher) HasExactMatch(query string, candidates []model.Candidate) bool {
	if isBlank(query) {
		return false
	}
	q := fold(strings.TrimSpace(query))
	for _, c := range candidates {
		if runesEqual(q, fold(c.DisplayName)) {
			return true
		}
	}
	return false
}
