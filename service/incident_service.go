package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"nyaysetu-backend/analysis"
	"nyaysetu-backend/models"
	"nyaysetu-backend/repository"
)

var (
	ErrDescriptionRequired  = errors.New("incident description is required")
	ErrUnknownStatus        = errors.New("unknown incident status")
	ErrInvalidTransition    = errors.New("status transition not permitted")
	ErrInvalidInitialStatus = errors.New("initial status not permitted for manual entry")
	ErrIncidentNotFound     = repository.ErrIncidentNotFound
	ErrStoreUnavailable     = repository.ErrStoreUnavailable
)

// IncidentService handles business logic for incident records
type IncidentService struct {
	incidentRepo repository.IncidentRepository
}

// IncidentServiceOption is a functional option for IncidentService
type IncidentServiceOption func(*IncidentService)

// WithIncidentRepository sets the incident repository
func WithIncidentRepository(repo repository.IncidentRepository) IncidentServiceOption {
	return func(s *IncidentService) {
		s.incidentRepo = repo
	}
}

// NewIncidentService creates a new incident service
func NewIncidentService(opts ...IncidentServiceOption) *IncidentService {
	s := &IncidentService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitIncidentRequest represents a public submission
type SubmitIncidentRequest struct {
	Description string
	Metadata    models.IncidentMetadata
}

// SubmitIncidentResult represents the result of a submission
type SubmitIncidentResult struct {
	Incident *models.IncidentRecord
}

// SubmitIncident classifies the description and inserts a new record with
// status New. The public path is the only way a record gets that status.
func (s *IncidentService) SubmitIncident(ctx context.Context, req SubmitIncidentRequest) (*SubmitIncidentResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	record, err := s.buildRecord(req.Description, req.Metadata, models.StatusNew)
	if err != nil {
		return nil, err
	}

	if _, err := s.incidentRepo.Insert(ctx, record); err != nil {
		return nil, err
	}
	return &SubmitIncidentResult{Incident: record}, nil
}

// RegisterManualEntryRequest represents an officer-entered incident
type RegisterManualEntryRequest struct {
	Description string
	Metadata    models.IncidentMetadata
	Status      models.IncidentStatus
}

// RegisterManualEntryResult represents the result of a manual entry
type RegisterManualEntryResult struct {
	Incident *models.IncidentRecord
}

// RegisterManualEntry runs the same classification pipeline as a public
// submission but with an explicit officer-chosen initial status.
func (s *IncidentService) RegisterManualEntry(ctx context.Context, req RegisterManualEntryRequest) (*RegisterManualEntryResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPendingReview
	}
	if !ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	if status == models.StatusNew {
		return nil, ErrInvalidInitialStatus
	}

	record, err := s.buildRecord(req.Description, req.Metadata, status)
	if err != nil {
		return nil, err
	}

	if _, err := s.incidentRepo.Insert(ctx, record); err != nil {
		return nil, err
	}
	return &RegisterManualEntryResult{Incident: record}, nil
}

func (s *IncidentService) buildRecord(description string, metadata models.IncidentMetadata, status models.IncidentStatus) (*models.IncidentRecord, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	result := analysis.Analyze(description)

	recordType := models.TypeGeneralReport
	if result.HasSections() {
		recordType = models.TypeIdentifiedOffence
	}

	now := time.Now()
	location := metadata.Location
	if location == "" {
		location = "Reported Online"
	}
	incidentTime := metadata.IncidentTime
	if incidentTime == "" {
		incidentTime = now.Format("03:04 PM")
	}
	incidentDate := metadata.IncidentDate
	if incidentDate == "" {
		incidentDate = now.Format("02/01/2006")
	}

	return &models.IncidentRecord{
		Description: description,
		Analysis:    result,
		Type:        recordType,
		Location:    location,
		Time:        incidentTime,
		Date:        incidentDate,
		Metadata:    metadata,
		Status:      status,
		Hidden:      false,
	}, nil
}

// ListIncidentsRequest selects the active or the history view
type ListIncidentsRequest struct {
	IncludeHidden bool
}

// DashboardStats are the officer dashboard counters, always computed over
// non-hidden records
type DashboardStats struct {
	PendingCount int `json:"pendingCount"`
	FIRCount     int `json:"firCount"`
	TotalActive  int `json:"totalActive"`
}

// ListIncidentsResult holds the selected view plus dashboard counters
type ListIncidentsResult struct {
	Incidents []*models.IncidentRecord
	Stats     DashboardStats
}

// ListIncidents returns the newest-first record list. The default view
// excludes hidden records; the history view shows only hidden records.
func (s *IncidentService) ListIncidents(ctx context.Context, req ListIncidentsRequest) (*ListIncidentsResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	all, err := s.incidentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListIncidentsResult{Incidents: []*models.IncidentRecord{}}
	for _, rec := range all {
		if !rec.Hidden {
			result.Stats.TotalActive++
			switch rec.Status {
			case models.StatusNew, models.StatusPendingReview:
				result.Stats.PendingCount++
			case models.StatusFIRDrafted, models.StatusFIRFiled:
				result.Stats.FIRCount++
			}
		}
		if rec.Hidden == req.IncludeHidden {
			result.Incidents = append(result.Incidents, rec)
		}
	}
	return result, nil
}

// GetIncidentRequest identifies one record
type GetIncidentRequest struct {
	ID string
}

// GetIncidentResult holds one record
type GetIncidentResult struct {
	Incident *models.IncidentRecord
}

// GetIncident retrieves a record by id. A record persisted without an
// analysis is re-classified from its description as a read-time fallback.
func (s *IncidentService) GetIncident(ctx context.Context, req GetIncidentRequest) (*GetIncidentResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	rec, err := s.incidentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if rec.Analysis.Summary == "" {
		rec.Analysis = analysis.Analyze(rec.Description)
	}
	return &GetIncidentResult{Incident: rec}, nil
}

// UpdateIncidentRequest is a partial-field update against one record
type UpdateIncidentRequest struct {
	ID     string
	Update models.IncidentUpdate
}

// UpdateIncidentResult holds the updated record
type UpdateIncidentResult struct {
	Incident *models.IncidentRecord
}

// UpdateIncident merges the supplied fields into the record. Status changes
// are validated against the state table inside the store's critical section,
// so a near-simultaneous update cannot slip a forbidden transition through
// between the check and the write. The hidden flag toggles independently of
// status. Moving to FIR Filed initializes the FIR form with a generated
// narrative when none exists yet.
func (s *IncidentService) UpdateIncident(ctx context.Context, req UpdateIncidentRequest) (*UpdateIncidentResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	update := req.Update
	var guard repository.UpdateGuard
	if update.Status != nil {
		next := *update.Status
		if !ValidStatus(next) {
			return nil, ErrUnknownStatus
		}
		guard = func(current *models.IncidentRecord) error {
			if !CanTransition(current.Status, next) {
				return ErrInvalidTransition
			}
			return nil
		}

		if next == models.StatusFIRFiled && update.FIRData == nil {
			current, err := s.incidentRepo.GetByID(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			if current.FIRData == nil {
				update.FIRData = s.initialFIRForm(current)
			}
		}
	}

	rec, err := s.incidentRepo.MergeUpdate(ctx, req.ID, update, guard)
	if err != nil {
		return nil, err
	}
	return &UpdateIncidentResult{Incident: rec}, nil
}

// initialFIRForm seeds the filing form from submission metadata and a
// generated narrative
func (s *IncidentService) initialFIRForm(rec *models.IncidentRecord) *models.FIRForm {
	form := models.FIRForm{
		ComplainantName:    rec.Metadata.ComplainantName,
		ComplainantPhone:   rec.Metadata.ContactNumber,
		ComplainantAddress: rec.Metadata.Address,
		PlaceOfOccurrence:  rec.Metadata.Location,
	}
	sections := rec.Analysis.Sections
	if !rec.Analysis.HasSections() {
		sections, _ = analysis.Classify(rec.Description)
	}
	form.Narrative = analysis.Formalize(rec.Description, sections, form)
	return &form
}
