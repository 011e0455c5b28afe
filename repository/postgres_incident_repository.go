package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nyaysetu-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// incidentIDLock keys the advisory lock serializing id generation
const incidentIDLock = 814702

// PostgresIncidentRepository handles database operations for incidents
type PostgresIncidentRepository struct {
	db *pgxpool.Pool
}

// NewPostgresIncidentRepository creates a new Postgres-backed incident repository
func NewPostgresIncidentRepository(db *pgxpool.Pool) *PostgresIncidentRepository {
	return &PostgresIncidentRepository{db: db}
}

// Insert creates a new incident row. Id generation and the insert run in one
// transaction under an advisory lock, so concurrent submissions cannot mint
// the same sequence number.
func (r *PostgresIncidentRepository) Insert(ctx context.Context, record *models.IncidentRecord) (string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", incidentIDLock); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var count int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM incidents").Scan(&count); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	now := time.Now()
	record.ID = FormatIncidentID(now.Year(), count+1)

	query := `
		INSERT INTO incidents (
			id, description, analysis, type, location, time, date,
			metadata, status, hidden, fir_data
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at`

	err = tx.QueryRow(
		ctx, query,
		record.ID,
		record.Description,
		record.Analysis,
		record.Type,
		record.Location,
		record.Time,
		record.Date,
		record.Metadata,
		record.Status,
		record.Hidden,
		record.FIRData,
	).Scan(&record.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return record.ID, nil
}

// ListAll retrieves every incident, newest first
func (r *PostgresIncidentRepository) ListAll(ctx context.Context) ([]*models.IncidentRecord, error) {
	query := `
		SELECT id, description, analysis, type, location, time, date,
			metadata, status, hidden, fir_data, created_at
		FROM incidents
		ORDER BY created_order DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []*models.IncidentRecord
	for rows.Next() {
		record, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, rows.Err())
	}
	return records, nil
}

// GetByID retrieves an incident by id
func (r *PostgresIncidentRepository) GetByID(ctx context.Context, id string) (*models.IncidentRecord, error) {
	query := `
		SELECT id, description, analysis, type, location, time, date,
			metadata, status, hidden, fir_data, created_at
		FROM incidents
		WHERE id = $1`

	record, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return record, nil
}

// MergeUpdate applies the non-nil update fields inside a row-locked
// transaction, so two near-simultaneous merges cannot lose a write. The
// guard runs against the row read under FOR UPDATE, inside the same
// transaction as the write.
func (r *PostgresIncidentRepository) MergeUpdate(ctx context.Context, id string, update models.IncidentUpdate, guard UpdateGuard) (*models.IncidentRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT id, description, analysis, type, location, time, date,
			metadata, status, hidden, fir_data, created_at
		FROM incidents
		WHERE id = $1
		FOR UPDATE`

	record, err := scanIncident(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if guard != nil {
		if err := guard(record); err != nil {
			return nil, err
		}
	}

	applyUpdate(record, update)

	_, err = tx.Exec(ctx, `
		UPDATE incidents SET
			status = $2,
			hidden = $3,
			fir_data = $4,
			metadata = $5,
			updated_at = NOW()
		WHERE id = $1`,
		record.ID,
		record.Status,
		record.Hidden,
		record.FIRData,
		record.Metadata,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return record, nil
}

func scanIncident(row pgx.Row) (*models.IncidentRecord, error) {
	record := &models.IncidentRecord{}
	err := row.Scan(
		&record.ID,
		&record.Description,
		&record.Analysis,
		&record.Type,
		&record.Location,
		&record.Time,
		&record.Date,
		&record.Metadata,
		&record.Status,
		&record.Hidden,
		&record.FIRData,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}
