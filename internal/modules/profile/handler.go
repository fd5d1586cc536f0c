package profile

import (
	"errors"
	"net/http"
	"strconv"

	"creatorhub/internal/domain"
	"creatorhub/internal/pkg/response"
	"creatorhub/internal/pkg/validator"
	"creatorhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the creator-facing lifecycle routes. Base path
// is /api/v1/creator (JWT required, role creator).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	creator := rg.Group("/creator")
	{
		creator.GET("/profile", h.GetOrCreateProfile)
		creator.PUT("/profile/:section", h.ApplySection)
		creator.POST("/profile/gallery", h.SaveGallery)
		creator.POST("/profile/publish", h.Publish)
		creator.POST("/profile/recompute", h.Recompute)
		creator.DELETE("/profile", h.DeleteProfile)
	}
}

// RegisterPublicRoutes registers the published-only public lookup.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/creators/:identifier", h.GetPublicProfile)
}

// RegisterInternalRoutes registers the moderation hooks exposed to other
// services (internal token required).
func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.POST("/creators/:userId/suspend", h.SuspendProfile)
}

func (h *Handler) GetOrCreateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	p, created, err := h.service.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, ProfileResponse{
		Profile:    p,
		Completion: summaryOf(p),
		Created:    created,
	})
}

func (h *Handler) ApplySection(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, summary, err := h.service.ApplySection(c.Request.Context(), userID, c.Param("section"), raw)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ProfileResponse{Profile: p, Completion: summary})
}

func (h *Handler) SaveGallery(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, summary, err := h.service.SaveGallery(c.Request.Context(), userID, req.payload())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ProfileResponse{Profile: p, Completion: summary})
}

func (h *Handler) Publish(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid publish options", fields)
		return
	}

	p, err := h.service.Publish(c.Request.Context(), userID, PublishOptions{
		Username: req.Username,
		Bypass:   req.Bypass,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ProfileResponse{Profile: p, Completion: summaryOf(p)})
}

func (h *Handler) Recompute(c *gin.Context) {
	userID := c.GetInt64("user_id")

	p, summary, err := h.service.Recompute(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ProfileResponse{Profile: p, Completion: summary})
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SuspendProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	p, suspendErr := h.service.Suspend(c.Request.Context(), userID)
	if suspendErr != nil {
		h.respondError(c, suspendErr)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user_id": p.UserID, "status": p.Status})
}

func (h *Handler) GetPublicProfile(c *gin.Context) {
	p, err := h.service.GetByIdentifier(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var incomplete *IncompleteProfileError
	var rejected *PersistenceRejectedError
	var validation *repository.ValidationError

	switch {
	case errors.Is(err, ErrProfileNotFound):
		response.Error(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile not found")
	case errors.Is(err, ErrUnknownSection):
		response.Error(c, http.StatusBadRequest, "UNKNOWN_SECTION", "Unknown profile section")
	case errors.Is(err, ErrEmptyGalleryPayload):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Gallery payload must include images, videos or portfolio items",
			gin.H{"reason": "EmptyGalleryPayload"})
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
	case errors.Is(err, ErrProfileSuspended):
		response.Error(c, http.StatusForbidden, "PROFILE_SUSPENDED", "Suspended profiles cannot be published")
	case errors.As(err, &incomplete):
		response.ErrorWithDetails(c, http.StatusConflict, "INCOMPLETE_PROFILE",
			"Profile is missing required sections",
			gin.H{"missingSections": incomplete.MissingSections})
	case errors.As(err, &rejected):
		response.ErrorWithDetails(c, http.StatusInternalServerError, "PERSISTENCE_REJECTED",
			"Store rejected the document after recovery",
			gin.H{"offendingPaths": rejected.Paths})
	case errors.As(err, &validation):
		response.ErrorWithDetails(c, http.StatusInternalServerError, "PERSISTENCE_REJECTED",
			"Store rejected the document",
			gin.H{"offendingPaths": validation.Paths})
	case errors.Is(err, repository.ErrTimeout):
		response.Error(c, http.StatusGatewayTimeout, "PERSISTENCE_TIMEOUT", "Store did not answer in time")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process profile request")
	}
}

// summaryOf derives the completion view without mutating persisted state
// beyond what recompute already guarantees to be stable.
func summaryOf(p *domain.CreatorProfile) CompletionSummary {
	return CompletionSummary{
		Sections:          p.Completion,
		OverallPercentage: p.Metrics.ProfileCompleteness,
		NextStep:          p.OnboardingStep,
	}
}
