package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nyaysetu-backend/analysis"
	"nyaysetu-backend/models"
	"nyaysetu-backend/repository"
	"nyaysetu-backend/storage"

	"github.com/google/generative-ai-go/genai"
)

var (
	ErrFIRNotFiled        = errors.New("incident has no filed FIR to archive")
	ErrRefineUnavailable  = errors.New("draft refinement is not configured")
	ErrRefineFailed       = errors.New("failed to refine draft")
	ErrArchiveUnavailable = errors.New("document storage is not configured")
)

// refineModel is the Gemini model used for optional draft polish
const refineModel = "gemini-2.5-flash"

// DraftService handles FIR document generation, optional refinement and
// archival. Generation itself is deterministic and never touches the
// network; the Gemini client is only used by the explicit refine operation.
type DraftService struct {
	incidentRepo repository.IncidentRepository
	docStorage   storage.Storage
	geminiClient *genai.Client
}

// DraftServiceOption is a functional option for DraftService
type DraftServiceOption func(*DraftService)

// DraftWithIncidentRepository sets the incident repository
func DraftWithIncidentRepository(repo repository.IncidentRepository) DraftServiceOption {
	return func(s *DraftService) {
		s.incidentRepo = repo
	}
}

// DraftWithStorage sets the blob storage used for archived documents
func DraftWithStorage(st storage.Storage) DraftServiceOption {
	return func(s *DraftService) {
		s.docStorage = st
	}
}

// DraftWithGeminiClient sets the Gemini client
func DraftWithGeminiClient(client *genai.Client) DraftServiceOption {
	return func(s *DraftService) {
		s.geminiClient = client
	}
}

// NewDraftService creates a new draft service
func NewDraftService(opts ...DraftServiceOption) *DraftService {
	s := &DraftService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateFIRDraftRequest represents a request to render an FIR narrative
type GenerateFIRDraftRequest struct {
	ID   string
	Form models.FIRForm
}

// GenerateFIRDraftResult holds the rendered narrative and the form it was
// rendered from (with complainant fields defaulted from the record)
type GenerateFIRDraftResult struct {
	Narrative string
	Form      models.FIRForm
}

// GenerateFIRDraft renders the formalized document for an incident. It is
// side-effect-free; the caller persists the result through UpdateIncident
// when the officer saves it.
func (s *DraftService) GenerateFIRDraft(ctx context.Context, req GenerateFIRDraftRequest) (*GenerateFIRDraftResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}

	rec, err := s.incidentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	form := req.Form
	if form.ComplainantName == "" {
		form.ComplainantName = rec.Metadata.ComplainantName
	}
	if form.ComplainantPhone == "" {
		form.ComplainantPhone = rec.Metadata.ContactNumber
	}
	if form.ComplainantAddress == "" {
		form.ComplainantAddress = rec.Metadata.Address
	}
	if form.PlaceOfOccurrence == "" {
		form.PlaceOfOccurrence = rec.Metadata.Location
	}

	sections := rec.Analysis.Sections
	if !rec.Analysis.HasSections() {
		sections, _ = analysis.Classify(rec.Description)
	}

	form.Narrative = analysis.Formalize(rec.Description, sections, form)
	return &GenerateFIRDraftResult{Narrative: form.Narrative, Form: form}, nil
}

// RefineDraftRequest carries a generated narrative plus officer instructions
type RefineDraftRequest struct {
	Narrative    string
	Instructions string
}

// RefineDraftResult holds the refined narrative
type RefineDraftResult struct {
	Narrative string
}

// RefineDraft passes a generated draft through Gemini with the officer's
// instructions. Available only when a client is configured; the generated
// draft is the fallback either way.
func (s *DraftService) RefineDraft(ctx context.Context, req RefineDraftRequest) (*RefineDraftResult, error) {
	if s.geminiClient == nil {
		return nil, ErrRefineUnavailable
	}
	if strings.TrimSpace(req.Narrative) == "" {
		return nil, ErrRefineFailed
	}

	prompt := fmt.Sprintf(
		"You are assisting a police officer. Rewrite the following First Information Report draft for clarity and formal register. Preserve every factual detail, section citation and the closing disclaimer exactly. Officer instructions: %s\n\n%s",
		req.Instructions, req.Narrative,
	)

	model := s.geminiClient.GenerativeModel(refineModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRefineFailed, err)
	}

	var out strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				out.WriteString(string(text))
			}
		}
	}
	if out.Len() == 0 {
		return nil, ErrRefineFailed
	}
	return &RefineDraftResult{Narrative: out.String()}, nil
}

// ArchiveFIRRequest identifies a filed incident to archive
type ArchiveFIRRequest struct {
	ID string
}

// ArchiveFIRResult holds the storage path of the archived document
type ArchiveFIRResult struct {
	StoragePath string
}

// ArchiveFIR writes the filed FIR document to blob storage under the
// incident id
func (s *DraftService) ArchiveFIR(ctx context.Context, req ArchiveFIRRequest) (*ArchiveFIRResult, error) {
	if s.incidentRepo == nil {
		return nil, errors.New("incident repository not set")
	}
	if s.docStorage == nil {
		return nil, ErrArchiveUnavailable
	}

	rec, err := s.incidentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if rec.Status != models.StatusFIRFiled || rec.FIRData == nil || rec.FIRData.Narrative == "" {
		return nil, ErrFIRNotFiled
	}

	filename := fmt.Sprintf("%s_FIR.txt", rec.ID)
	path, err := s.docStorage.Upload(ctx, rec.ID, filename, strings.NewReader(rec.FIRData.Narrative))
	if err != nil {
		return nil, err
	}
	return &ArchiveFIRResult{StoragePath: path}, nil
}
