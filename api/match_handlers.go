package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gcbaptista/go-label-matcher/internal/metrics"
	"github.com/gcbaptista/go-label-matcher/matcher"
	"github.com/gcbaptista/go-label-matcher/model"
	"github.com/gcbaptista/go-label-matcher/services"
)

// ScoreRequest scores one query against one candidate text.
type ScoreRequest struct {
	Query string `json:"query"`
	Text  string `json:"text"`
}

// SearchRequest ranks caller-supplied candidates against a query.
type SearchRequest struct {
	Query      string            `json:"query"`
	Candidates []model.Candidate `json:"candidates"`
	Limit      int               `json:"limit"` // 0 means the server default
}

// ExactMatchRequest asks whether any candidate's display name equals the query.
type ExactMatchRequest struct {
	Query      string            `json:"query"`
	Candidates []model.Candidate `json:"candidates"`
}

// MergeRangesRequest carries highlight ranges to normalize.
type MergeRangesRequest struct {
	Ranges []model.MatchRange `json:"ranges"`
}

// DistanceRequest carries the two strings to compare.
type DistanceRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// ScoreHandler handles POST /match/_score.
// Blank input is not an error: it scores 0 with match type "none".
func (api *API) ScoreHandler(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result := api.matcher.Score(req.Query, req.Text)
	metrics.ObserveMatch(result)

	c.JSON(http.StatusOK, services.ScoreResponse{
		MatchResult:  result,
		MergedRanges: matcher.MergeRanges(result.MatchRanges),
	})
}

// SearchHandler handles POST /match/_search.
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	result := ValidateCandidates(req.Candidates)
	limit, limitResult := ValidateLimit(req.Limit, api.defaultLimit, api.maxLimit)
	result.Errors = append(result.Errors, limitResult.Errors...)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, api.runSearch(req.Query, req.Candidates, limit, startTime))
}

// runSearch ranks candidates, records metrics and truncates to limit.
func (api *API) runSearch(query string, candidates []model.Candidate, limit int, startTime time.Time) services.SearchResponse {
	hits := api.matcher.Search(query, candidates)
	metrics.ObserveSearch(len(candidates), hits)

	total := len(hits)
	if len(hits) > limit {
		hits = hits[:limit]
	}

	return services.SearchResponse{
		Hits:    hits,
		Total:   total,
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}
}

// ExactMatchHandler handles POST /match/_exact.
func (api *API) ExactMatchHandler(c *gin.Context) {
	var req ExactMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exact_match": api.matcher.HasExactMatch(req.Query, req.Candidates)})
}

// MergeRangesHandler handles POST /match/_merge_ranges.
func (api *API) MergeRangesHandler(c *gin.Context) {
	var req MergeRangesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	if result := ValidateRanges(req.Ranges); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ranges": matcher.MergeRanges(req.Ranges)})
}

// DistanceHandler handles POST /match/_distance. The comparison is case-sensitive.
func (api *API) DistanceHandler(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"distance": matcher.Levenshtein(req.A, req.B)})
}
