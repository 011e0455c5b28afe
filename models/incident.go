package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// IncidentStatus represents the review status of an incident
type IncidentStatus string

const (
	StatusNew           IncidentStatus = "New"
	StatusPendingReview IncidentStatus = "Pending Review"
	StatusAccepted      IncidentStatus = "Accepted"
	StatusRejected      IncidentStatus = "Rejected"
	StatusFIRDrafted    IncidentStatus = "FIR Drafted"
	StatusFIRFiled      IncidentStatus = "FIR Filed"
)

// IncidentType is derived at creation from the analysis outcome
const (
	TypeIdentifiedOffence = "Identified Offence"
	TypeGeneralReport     = "General Report"
)

// IncidentMetadata holds the complainant and occurrence details supplied
// at submission time
type IncidentMetadata struct {
	ComplainantName string `json:"complainantName,omitempty"`
	ContactNumber   string `json:"contactNumber,omitempty"`
	Address         string `json:"address,omitempty"`
	IncidentDate    string `json:"incidentDate,omitempty"`
	IncidentTime    string `json:"incidentTime,omitempty"`
	Location        string `json:"location,omitempty"`
	CustomSections  string `json:"customSections,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (m IncidentMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *IncidentMetadata) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// FIRForm is the draft first-information metadata attached to an incident
// once the filing workflow begins. The narrative remains editable after
// generation.
type FIRForm struct {
	ComplainantName     string `json:"complainantName"`
	ComplainantPhone    string `json:"complainantPhone"`
	ComplainantAddress  string `json:"complainantAddress"`
	PlaceOfOccurrence   string `json:"placeOfOccurrence"`
	DistanceFromStation string `json:"distanceFromStation"`
	Narrative           string `json:"narrative"`
}

// Value implements driver.Valuer for JSONB
func (f FIRForm) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner for JSONB
func (f *FIRForm) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, f)
}

// IncidentRecord is the persisted unit of work. The description is
// immutable after creation; everything else changes only through the
// declared partial-update operations.
type IncidentRecord struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Analysis    AnalysisResult   `json:"analysis"`
	Type        string           `json:"type"`
	Location    string           `json:"location"`
	Time        string           `json:"time"`
	Date        string           `json:"date"`
	Metadata    IncidentMetadata `json:"metadata"`
	Status      IncidentStatus   `json:"status"`
	Hidden      bool             `json:"hidden"`
	FIRData     *FIRForm         `json:"firData,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// IncidentUpdate is a partial-field merge against an existing record.
// Nil fields are left untouched; no field is ever removed.
type IncidentUpdate struct {
	Status   *IncidentStatus   `json:"status,omitempty"`
	Hidden   *bool             `json:"hidden,omitempty"`
	FIRData  *FIRForm          `json:"firData,omitempty"`
	Metadata *IncidentMetadata `json:"metadata,omitempty"`
}
