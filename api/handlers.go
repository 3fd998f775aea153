package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-label-matcher/config"
	"github.com/gcbaptista/go-label-matcher/internal/metrics"
	"github.com/gcbaptista/go-label-matcher/services"
)

// API holds dependencies for API handlers: the matcher and the label catalog.
type API struct {
	matcher      services.LabelMatcher
	catalog      services.LabelCatalog
	logger       *zap.Logger
	defaultLimit int
	maxLimit     int
}

// NewAPI creates a new API handler structure.
func NewAPI(m services.LabelMatcher, catalog services.LabelCatalog, logger *zap.Logger, cfg config.ServerConfig) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultLimit, maxLimit := cfg.DefaultSearchLimit, cfg.MaxSearchLimit
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}

	return &API{
		matcher:      m,
		catalog:      catalog,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// SetupRoutes installs middleware and defines all the API routes.
func SetupRoutes(router *gin.Engine, apiHandler *API, maxBodyBytes int64) {
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(apiHandler.logger))
	router.Use(metrics.Middleware())
	router.Use(CORSMiddleware())
	if maxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(maxBodyBytes))
	}

	router.NoRoute(func(c *gin.Context) {
		SendError(c, http.StatusNotFound, ErrorCodeRouteNotFound, "Route '"+c.Request.URL.Path+"' not found")
	})

	// Health check and metrics routes
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Stateless matching routes over caller-supplied text
	matchRoutes := router.Group("/match")
	{
		matchRoutes.POST("/_score", apiHandler.ScoreHandler)
		matchRoutes.POST("/_search", apiHandler.SearchHandler)
		matchRoutes.POST("/_exact", apiHandler.ExactMatchHandler)
		matchRoutes.POST("/_merge_ranges", apiHandler.MergeRangesHandler)
		matchRoutes.POST("/_distance", apiHandler.DistanceHandler)
	}

	// Known-label catalog routes
	labelRoutes := router.Group("/labels")
	{
		labelRoutes.POST("", apiHandler.CreateLabelHandler)
		labelRoutes.GET("", apiHandler.ListLabelsHandler)
		labelRoutes.POST("/_search", apiHandler.SearchLabelsHandler)
		labelRoutes.GET("/:labelId", apiHandler.GetLabelHandler)
		labelRoutes.DELETE("/:labelId", apiHandler.DeleteLabelHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-label-matcher",
		"labels":    api.catalog.Count(),
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}
