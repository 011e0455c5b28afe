package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"nyaysetu-backend/models"
	"nyaysetu-backend/repository"
	"nyaysetu-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EvidenceHandler handles HTTP requests for evidence attachments
type EvidenceHandler struct {
	evidenceRepo     repository.EvidenceRepository
	incidentRepo     repository.IncidentRepository
	storage          storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewEvidenceHandler creates a new evidence handler
func NewEvidenceHandler(evidenceRepo repository.EvidenceRepository, incidentRepo repository.IncidentRepository, storage storage.Storage) *EvidenceHandler {
	return &EvidenceHandler{
		evidenceRepo: evidenceRepo,
		incidentRepo: incidentRepo,
		storage:      storage,
		maxFileSize:  10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"image/jpeg":      true,
			"image/png":       true,
			"application/pdf": true,
			"video/mp4":       true,
			"audio/mpeg":      true,
			"text/plain":      true,
		},
	}
}

// UploadEvidence handles POST /api/incidents/:id/evidence
func (h *EvidenceHandler) UploadEvidence(c *gin.Context) {
	incidentID := c.Param("id")

	if _, err := h.incidentRepo.GetByID(c.Request.Context(), incidentID); err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Incident not found")
		} else {
			errorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Incident store unavailable")
		}
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if fileHeader.Size > h.maxFileSize {
		errorResponse(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File exceeds maximum size of %d bytes", h.maxFileSize))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !h.allowedMimeTypes[mimeType] {
		errorResponse(c, http.StatusBadRequest, "UNSUPPORTED_TYPE",
			fmt.Sprintf("File type %s is not accepted as evidence", mimeType))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read uploaded file")
		return
	}
	defer src.Close()

	evidence := &models.EvidenceFile{
		ID:         uuid.New(),
		IncidentID: incidentID,
		Filename:   fileHeader.Filename,
		MimeType:   mimeType,
		Size:       fileHeader.Size,
	}

	storagePath, err := h.storage.Upload(c.Request.Context(), evidence.ID.String(), fileHeader.Filename, src)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store evidence file")
		return
	}
	evidence.StoragePath = storagePath

	if err := h.evidenceRepo.Create(c.Request.Context(), evidence); err != nil {
		// Don't leave an orphaned blob behind a failed metadata write
		_ = h.storage.Delete(c.Request.Context(), storagePath)
		errorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Failed to record evidence metadata")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"evidence": evidence,
	})
}

// ListEvidence handles GET /api/incidents/:id/evidence
func (h *EvidenceHandler) ListEvidence(c *gin.Context) {
	files, err := h.evidenceRepo.ListByIncidentID(c.Request.Context(), c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Incident store unavailable")
		return
	}
	if files == nil {
		files = []*models.EvidenceFile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"evidence": files,
	})
}

// DownloadEvidence handles GET /api/evidence/:id
func (h *EvidenceHandler) DownloadEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "INVALID_EVIDENCE_ID", "Invalid evidence id format")
		return
	}

	evidence, err := h.evidenceRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEvidenceNotFound) {
			errorResponse(c, http.StatusNotFound, "NOT_FOUND", "Evidence file not found")
		} else {
			errorResponse(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Incident store unavailable")
		}
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), evidence.StoragePath)
	if err != nil {
		errorResponse(c, http.StatusNotFound, "BLOB_MISSING", "Evidence content is missing from storage")
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", evidence.Filename))
	c.Header("Content-Type", evidence.MimeType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
