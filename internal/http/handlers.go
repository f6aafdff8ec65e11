package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/numericore/mathsvc/internal/logging"
	"github.com/numericore/mathsvc/internal/middleware"
	"github.com/numericore/mathsvc/internal/monitoring"
	"github.com/numericore/mathsvc/internal/service"
	"github.com/numericore/mathsvc/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// DiscoverRequest is the body of POST /services/discover
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// ExecuteRequest is the body of POST /services/execute
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Math Service (Go)",
		"version": "0.1.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// Stats reports aggregate request metrics
func (h *Handlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 5
	}

	services := h.registry.Discover(req.Query, limit)

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !strings.Contains(req.ToolID, ".") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id must be of the form service.tool"})
		return
	}

	appCtx := &types.Context{}
	if id, ok := c.Get(middleware.RequestIDKey); ok {
		if s, ok := id.(string); ok {
			appCtx.RequestID = &s
		}
	}

	timer := monitoring.NewTimer(h.metrics, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordToolError(req.ToolID, "registry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.Success {
		timer.Stop("success")
	} else {
		timer.Stop("failure")
		errMsg := ""
		if result.Error != nil {
			errMsg = *result.Error
		}
		h.logger.Debug("tool returned failure",
			zap.String("tool", req.ToolID),
			zap.String("error", errMsg),
		)
	}

	c.JSON(http.StatusOK, result)
}
