package analysis

import (
	"fmt"
	"strings"

	"nyaysetu-backend/models"
)

const (
	noMatchSummary  = "The incident description is insufficient to determine specific legal sections. Please provide more details."
	noMatchGuidance = "Please visit the nearest police station for manual assistance."

	singleOffenceGuidance   = "This incident appears to involve a single identifiable offence and is legally actionable."
	multipleOffenceGuidance = "This incident appears to involve multiple distinct offences and is legally actionable."
	cognizableGuidance      = "Since this is a cognizable offence, police are duty-bound to register an FIR."
	nonCognizableGuidance   = "This may be a non-cognizable offence; police may record an NCR."
	evidenceGuidance        = "Preserve any digital or physical evidence immediately."
	statementGuidance       = "Visit your nearest police station to record a statement for each identified offence."
)

// Synthesize derives the risk tier, summary and procedural guidance from the
// matched sections. Articles pass through unchanged, except that the no-match
// case forces them empty: there is no constitutional basis to cite without an
// identified offence.
func Synthesize(sections []models.LegalSection, articles []models.ConstitutionalArticle) models.AnalysisResult {
	if len(sections) == 0 {
		return models.AnalysisResult{
			Summary:      noMatchSummary,
			Sections:     []models.LegalSection{},
			Constitution: []models.ConstitutionalArticle{},
			Guidance:     []string{noMatchGuidance},
			RiskLevel:    models.RiskLow,
		}
	}

	headwords := distinctHeadwords(sections)
	multiple := len(headwords) > 1

	risk := models.RiskMedium
	if hasSeverePunishment(sections) || countDistinct(sections) > 2 {
		risk = models.RiskHigh
	}

	var summary string
	if multiple {
		summary = fmt.Sprintf("The incident involves elements of multiple offences: %s.", strings.Join(headwords, ", "))
	} else {
		summary = fmt.Sprintf("The incident involves elements of %s.", headwords[0])
	}

	framing := singleOffenceGuidance
	if multiple {
		framing = multipleOffenceGuidance
	}
	procedural := nonCognizableGuidance
	if anyCognizable(sections) {
		procedural = cognizableGuidance
	}

	if articles == nil {
		articles = []models.ConstitutionalArticle{}
	}

	return models.AnalysisResult{
		Summary:      summary,
		Sections:     sections,
		Constitution: articles,
		Guidance:     []string{framing, procedural, evidenceGuidance, statementGuidance},
		RiskLevel:    risk,
	}
}

// Analyze runs classification and synthesis over a raw description. Total
// over any input, including empty text.
func Analyze(text string) models.AnalysisResult {
	sections, articles := Classify(text)
	return Synthesize(sections, articles)
}

// distinctHeadwords collects the de-duplicated description headwords, in
// first-match order. The headword is the description text before its first
// " - " separator.
func distinctHeadwords(sections []models.LegalSection) []string {
	seen := make(map[string]bool)
	var heads []string
	for _, s := range sections {
		head := strings.SplitN(s.Description, " - ", 2)[0]
		if !seen[head] {
			seen[head] = true
			heads = append(heads, head)
		}
	}
	return heads
}

func countDistinct(sections []models.LegalSection) int {
	seen := make(map[string]bool)
	for _, s := range sections {
		seen[s.Section] = true
	}
	return len(seen)
}

func anyCognizable(sections []models.LegalSection) bool {
	for _, s := range sections {
		if s.Cognizable {
			return true
		}
	}
	return false
}
