package repository

import (
	"context"
	"errors"
	"fmt"

	"nyaysetu-backend/models"
)

var (
	// ErrIncidentNotFound is returned for lookups and merges on unknown ids
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrStoreUnavailable is returned when the backing store cannot be read
	// or written. It is never masked by returning partial data.
	ErrStoreUnavailable = errors.New("incident store unavailable")
)

// UpdateGuard inspects the current record inside the store's critical
// section, before a merge is applied. A non-nil error aborts the merge
// without writing and is returned to the caller unchanged, so callers can
// enforce preconditions like status transitions atomically with the write.
type UpdateGuard func(current *models.IncidentRecord) error

// IncidentRepository is the record-store contract. Implementations must
// serialize Insert and MergeUpdate against each other so sequential id
// generation and field merges cannot race, and reads must observe a
// consistent snapshot.
type IncidentRepository interface {
	// Insert assigns the record an INC-<year>-<seq> id, places it at the
	// front of iteration order, and returns the id.
	Insert(ctx context.Context, record *models.IncidentRecord) (string, error)

	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]*models.IncidentRecord, error)

	// GetByID returns the record or ErrIncidentNotFound.
	GetByID(ctx context.Context, id string) (*models.IncidentRecord, error)

	// MergeUpdate shallow-merges the non-nil fields of update into the
	// record and returns the result. Unspecified fields are untouched; no
	// field is ever removed. A non-nil guard runs against the record's
	// current state inside the same critical section as the write.
	MergeUpdate(ctx context.Context, id string, update models.IncidentUpdate, guard UpdateGuard) (*models.IncidentRecord, error)
}

// FormatIncidentID builds the public incident id. The sequence is one
// greater than the store's record count at insertion time.
func FormatIncidentID(year, seq int) string {
	return fmt.Sprintf("INC-%d-%03d", year, seq)
}
