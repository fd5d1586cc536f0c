package tier

import (
	"errors"
	"net/http"

	"creatorhub/internal/pkg/response"
	"creatorhub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers metrics routes under the creator group (JWT
// required, role creator).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	metrics := rg.Group("/creator/metrics")
	{
		metrics.GET("", h.GetMetrics)
		metrics.POST("/refresh", h.RefreshMetrics)
	}
}

func (h *Handler) GetMetrics(c *gin.Context) {
	userID := c.GetInt64("user_id")

	m, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load metrics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"metrics": m})
}

func (h *Handler) RefreshMetrics(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_METRIC", "Metric value out of range", fields)
		return
	}

	m, err := h.service.Refresh(c.Request.Context(), userID, RefreshInput{
		Followers:         req.Followers,
		TotalEarnings:     req.TotalEarnings,
		CompletedProjects: req.CompletedProjects,
		ResponseRate:      req.ResponseRate,
		PerformanceSeries: req.PerformanceSeries,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidMetric) {
			response.Error(c, http.StatusBadRequest, "INVALID_METRIC", "Metric value out of range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to refresh metrics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"metrics": m})
}
