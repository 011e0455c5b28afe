package models

import (
	"database/sql/driver"
	"encoding/json"
)

// RiskLevel represents the derived severity tier of an incident
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ArticleCategory represents the constitutional category of an article
type ArticleCategory string

const (
	CategoryFundamentalRight   ArticleCategory = "FundamentalRight"
	CategoryDirectivePrinciple ArticleCategory = "DirectivePrinciple"
	CategoryDuty               ArticleCategory = "Duty"
	CategoryJurisdictional     ArticleCategory = "Jurisdictional"
)

// LegalSection is a catalogue entry for a penal provision. Entries are
// loaded once at startup and never mutated.
type LegalSection struct {
	Section     string `json:"section"`     // current BNS citation
	IPCSection  string `json:"ipc_section"` // superseded IPC reference, may be empty
	Description string `json:"description"`
	Punishment  string `json:"punishment"`
	Bailable    bool   `json:"bailable"`
	Cognizable  bool   `json:"cognizable"`
}

// ConstitutionalArticle is a catalogue entry for a constitutional reference
type ConstitutionalArticle struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    ArticleCategory `json:"category"`
}

// AnalysisResult is the classification derived from an incident description.
// It is embedded in the incident record at creation time.
type AnalysisResult struct {
	Summary      string                  `json:"summary"`
	Sections     []LegalSection          `json:"sections"`
	Constitution []ConstitutionalArticle `json:"constitution"`
	Guidance     []string                `json:"guidance"`
	RiskLevel    RiskLevel               `json:"riskLevel"`
}

// Value implements driver.Valuer for JSONB
func (a AnalysisResult) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB
func (a *AnalysisResult) Scan(value interface{}) error {
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
	return json.Unmarshal(bytes, a)
}

// HasSections reports whether the analysis identified any penal sections.
// A missing or empty analysis triggers re-classification on read.
func (a *AnalysisResult) HasSections() bool {
	return a != nil && len(a.Sections) > 0
}
