package repository

import (
	"context"
	"sync"
	"time"

	"nyaysetu-backend/models"

	"github.com/google/uuid"
)

// MemoryEvidenceRepository is a mutex-guarded in-memory evidence store,
// used when the service runs without a database.
type MemoryEvidenceRepository struct {
	mu    sync.RWMutex
	files []*models.EvidenceFile
}

// NewMemoryEvidenceRepository creates an empty in-memory evidence store
func NewMemoryEvidenceRepository() *MemoryEvidenceRepository {
	return &MemoryEvidenceRepository{}
}

// Create stores the record under its pre-assigned id
func (r *MemoryEvidenceRepository) Create(ctx context.Context, file *models.EvidenceFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now()
	}
	stored := *file
	r.files = append([]*models.EvidenceFile{&stored}, r.files...)
	return nil
}

// GetByID returns a snapshot of one record
func (r *MemoryEvidenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EvidenceFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.files {
		if f.ID == id {
			out := *f
			return &out, nil
		}
	}
	return nil, ErrEvidenceNotFound
}

// ListByIncidentID returns all evidence attached to an incident, newest first
func (r *MemoryEvidenceRepository) ListByIncidentID(ctx context.Context, incidentID string) ([]*models.EvidenceFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.EvidenceFile
	for _, f := range r.files {
		if f.IncidentID == incidentID {
			copied := *f
			out = append(out, &copied)
		}
	}
	return out, nil
}
