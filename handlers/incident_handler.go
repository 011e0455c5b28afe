package handlers

import (
	"errors"
	"net/http"

	"nyaysetu-backend/models"
	"nyaysetu-backend/service"

	"github.com/gin-gonic/gin"
)

// IncidentHandler handles HTTP requests for incidents
type IncidentHandler struct {
	incidentService *service.IncidentService
	draftService    *service.DraftService
}

// NewIncidentHandler creates a new incident handler
func NewIncidentHandler(incidentService *service.IncidentService, draftService *service.DraftService) *IncidentHandler {
	return &IncidentHandler{
		incidentService: incidentService,
		draftService:    draftService,
	}
}

// SubmitIncidentRequest represents the request body for a public submission
type SubmitIncidentRequest struct {
	Description string                  `json:"description" binding:"required"`
	Metadata    models.IncidentMetadata `json:"metadata"`
}

// SubmitIncident handles POST /api/incidents
func (h *IncidentHandler) SubmitIncident(c *gin.Context) {
	var req SubmitIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Description is required")
		return
	}

	result, err := h.incidentService.SubmitIncident(c.Request.Context(), service.SubmitIncidentRequest{
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"incident": result.Incident,
	})
}

// ManualEntryRequest represents the request body for an officer entry
type ManualEntryRequest struct {
	Description string                  `json:"description" binding:"required"`
	Metadata    models.IncidentMetadata `json:"metadata"`
	Status      models.IncidentStatus   `json:"status"`
}

// RegisterManualEntry handles POST /api/incidents/manual
func (h *IncidentHandler) RegisterManualEntry(c *gin.Context) {
	var req ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", "Description is required")
		return
	}

	result, err := h.incidentService.RegisterManualEntry(c.Request.Context(), service.RegisterManualEntryRequest{
		Description: req.Description,
		Metadata:    req.Metadata,
		Status:      req.Status,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"incident": result.Incident,
	})
}

// ListIncidents handles GET /api/incidents. The default view excludes
// hidden records; ?view=history shows only hidden records.
func (h *IncidentHandler) ListIncidents(c *gin.Context) {
	includeHidden := c.Query("view") == "history" || c.Query("includeHidden") == "true"

	result, err := h.incidentService.ListIncidents(c.Request.Context(), service.ListIncidentsRequest{
		IncludeHidden: includeHidden,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"incidents": result.Incidents,
		"stats":     result.Stats,
	})
}

// GetIncident handles GET /api/incidents/:id
func (h *IncidentHandler) GetIncident(c *gin.Context) {
	result, err := h.incidentService.GetIncident(c.Request.Context(), service.GetIncidentRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"incident": result.Incident,
	})
}

// UpdateIncident handles PUT /api/incidents/:id with a partial update
func (h *IncidentHandler) UpdateIncident(c *gin.Context) {
	var update models.IncidentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.incidentService.UpdateIncident(c.Request.Context(), service.UpdateIncidentRequest{
		ID:     c.Param("id"),
		Update: update,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"incident": result.Incident,
	})
}

// FIRDraftRequest carries optional form overrides for draft generation
type FIRDraftRequest struct {
	Form models.FIRForm `json:"form"`
}

// GenerateFIRDraft handles POST /api/incidents/:id/fir-draft. No state is
// written; the officer saves the draft through UpdateIncident.
func (h *IncidentHandler) GenerateFIRDraft(c *gin.Context) {
	var req FIRDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
			return
		}
	}

	result, err := h.draftService.GenerateFIRDraft(c.Request.Context(), service.GenerateFIRDraftRequest{
		ID:   c.Param("id"),
		Form: req.Form,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"narrative": result.Narrative,
		"form":      result.Form,
	})
}

// RefineDraftRequest carries the draft and officer instructions
type RefineDraftRequest struct {
	Narrative    string `json:"narrative" binding:"required"`
	Instructions string `json:"instructions"`
}

// RefineFIRDraft handles POST /api/incidents/:id/fir-draft/refine
func (h *IncidentHandler) RefineFIRDraft(c *gin.Context) {
	var req RefineDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.draftService.RefineDraft(c.Request.Context(), service.RefineDraftRequest{
		Narrative:    req.Narrative,
		Instructions: req.Instructions,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"narrative": result.Narrative,
	})
}

// ArchiveFIR handles POST /api/incidents/:id/archive
func (h *IncidentHandler) ArchiveFIR(c *gin.Context) {
	result, err := h.draftService.ArchiveFIR(c.Request.Context(), service.ArchiveFIRRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"storage_path": result.StoragePath,
	})
}

func errorResponse(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// serviceError maps service-layer sentinel errors to HTTP responses
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDescriptionRequired):
		errorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, service.ErrUnknownStatus), errors.Is(err, service.ErrInvalidInitialStatus):
		errorResponse(c, http.StatusBadRequest, "INVALID_STATUS", err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		errorResponse(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, service.ErrIncidentNotFound):
		errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Incident not found")
	case errors.Is(err, service.ErrFIRNotFiled):
		errorResponse(c, http.StatusConflict, "FIR_NOT_FILED", err.Error())
	case errors.Is(err, service.ErrRefineUnavailable), errors.Is(err, service.ErrArchiveUnavailable):
		errorResponse(c, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
	case errors.Is(err, service.ErrStoreUnavailable):
		errorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Incident store unavailable")
	default:
		errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
