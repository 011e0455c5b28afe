package models

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceFile represents a media or document attachment on an incident
type EvidenceFile struct {
	ID          uuid.UUID `json:"id"`
	IncidentID  string    `json:"incident_id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}
