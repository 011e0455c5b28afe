package repository

import (
	"context"
	"errors"
	"fmt"

	"nyaysetu-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEvidenceNotFound is returned for lookups on unknown evidence ids
var ErrEvidenceNotFound = errors.New("evidence file not found")

// EvidenceRepository is the evidence-metadata store contract. The record's
// id is minted by the caller before the blob upload, so the stored id and
// the blob's storage key always agree.
type EvidenceRepository interface {
	// Create stores the record under its pre-assigned id.
	Create(ctx context.Context, file *models.EvidenceFile) error

	// GetByID returns the record or ErrEvidenceNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.EvidenceFile, error)

	// ListByIncidentID returns all evidence attached to an incident,
	// newest first.
	ListByIncidentID(ctx context.Context, incidentID string) ([]*models.EvidenceFile, error)
}

// PostgresEvidenceRepository handles database operations for evidence attachments
type PostgresEvidenceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresEvidenceRepository creates a new Postgres-backed evidence repository
func NewPostgresEvidenceRepository(db *pgxpool.Pool) *PostgresEvidenceRepository {
	return &PostgresEvidenceRepository{db: db}
}

// Create inserts a new evidence row under the caller's id
func (r *PostgresEvidenceRepository) Create(ctx context.Context, file *models.EvidenceFile) error {
	query := `
		INSERT INTO evidence_files (
			id, incident_id, filename, mime_type, size, storage_path
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRow(
		ctx, query,
		file.ID,
		file.IncidentID,
		file.Filename,
		file.MimeType,
		file.Size,
		file.StoragePath,
	).Scan(&file.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// GetByID retrieves an evidence record by id
func (r *PostgresEvidenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.EvidenceFile, error) {
	file := &models.EvidenceFile{}
	query := `
		SELECT id, incident_id, filename, mime_type, size, storage_path, created_at
		FROM evidence_files
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.IncidentID,
		&file.Filename,
		&file.MimeType,
		&file.Size,
		&file.StoragePath,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEvidenceNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return file, nil
}

// ListByIncidentID retrieves all evidence attached to an incident
func (r *PostgresEvidenceRepository) ListByIncidentID(ctx context.Context, incidentID string) ([]*models.EvidenceFile, error) {
	query := `
		SELECT id, incident_id, filename, mime_type, size, storage_path, created_at
		FROM evidence_files
		WHERE incident_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var files []*models.EvidenceFile
	for rows.Next() {
		file := &models.EvidenceFile{}
		err := rows.Scan(
			&file.ID,
			&file.IncidentID,
			&file.Filename,
			&file.MimeType,
			&file.Size,
			&file.StoragePath,
			&file.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		files = append(files, file)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, rows.Err())
	}
	return files, nil
}
