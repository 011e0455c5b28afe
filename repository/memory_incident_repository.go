package repository

import (
	"context"
	"sync"
	"time"

	"nyaysetu-backend/models"
)

// MemoryIncidentRepository is a mutex-guarded in-memory store. The newest
// record sits at the front of the slice. All mutation happens inside a
// single bounded critical section, so concurrent inserts cannot mint the
// same id and concurrent merges cannot lose writes.
type MemoryIncidentRepository struct {
	mu      sync.RWMutex
	records []*models.IncidentRecord
}

// NewMemoryIncidentRepository creates an empty in-memory store
func NewMemoryIncidentRepository() *MemoryIncidentRepository {
	return &MemoryIncidentRepository{}
}

// Insert assigns an id and prepends the record
func (r *MemoryIncidentRepository) Insert(ctx context.Context, record *models.IncidentRecord) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	record.ID = FormatIncidentID(now.Year(), len(r.records)+1)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}

	stored := cloneRecord(record)
	r.records = append([]*models.IncidentRecord{stored}, r.records...)
	return record.ID, nil
}

// ListAll returns a snapshot of every record, newest first
func (r *MemoryIncidentRepository) ListAll(ctx context.Context) ([]*models.IncidentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.IncidentRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

// GetByID returns a snapshot of one record
func (r *MemoryIncidentRepository) GetByID(ctx context.Context, id string) (*models.IncidentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			return cloneRecord(rec), nil
		}
	}
	return nil, ErrIncidentNotFound
}

// MergeUpdate applies the non-nil update fields under the write lock. The
// guard sees the record as it stands under that same lock, so no concurrent
// merge can slip in between the precondition check and the write.
func (r *MemoryIncidentRepository) MergeUpdate(ctx context.Context, id string, update models.IncidentUpdate, guard UpdateGuard) (*models.IncidentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.ID == id {
			if guard != nil {
				if err := guard(cloneRecord(rec)); err != nil {
					return nil, err
				}
			}
			applyUpdate(rec, update)
			return cloneRecord(rec), nil
		}
	}
	return nil, ErrIncidentNotFound
}

func applyUpdate(rec *models.IncidentRecord, update models.IncidentUpdate) {
	if update.Status != nil {
		rec.Status = *update.Status
	}
	if update.Hidden != nil {
		rec.Hidden = *update.Hidden
	}
	if update.FIRData != nil {
		form := *update.FIRData
		rec.FIRData = &form
	}
	if update.Metadata != nil {
		rec.Metadata = *update.Metadata
	}
}

// cloneRecord copies a record so readers never alias store-internal state
func cloneRecord(rec *models.IncidentRecord) *models.IncidentRecord {
	out := *rec
	if rec.FIRData != nil {
		form := *rec.FIRData
		out.FIRData = &form
	}
	out.Analysis.Sections = append([]models.LegalSection(nil), rec.Analysis.Sections...)
	out.Analysis.Constitution = append([]models.ConstitutionalArticle(nil), rec.Analysis.Constitution...)
	out.Analysis.Guidance = append([]string(nil), rec.Analysis.Guidance...)
	return &out
}
