package analysis

import (
	"strings"

	"nyaysetu-backend/models"
)

// Classify scans text against the rule catalogues and returns every penal
// section and constitutional article whose keyword set matches. Matching is
// lowercase substring containment; all matching entries fire in catalogue
// order. Sections are not de-duplicated. Empty text yields empty results.
func Classify(text string) ([]models.LegalSection, []models.ConstitutionalArticle) {
	lower := strings.ToLower(text)

	var sections []models.LegalSection
	for _, rule := range offenceRules {
		if matchesAny(lower, rule.Keywords) {
			sections = append(sections, rule.Section)
		}
	}

	var articles []models.ConstitutionalArticle
	for _, rule := range articleRules {
		if matchesAny(lower, rule.Keywords) {
			articles = append(articles, rule.Article)
		}
	}

	// Severe punishments attract the free-legal-aid guarantee even when no
	// keyword referenced it directly.
	if hasSeverePunishment(sections) && !containsArticle(articles, articleLegalAid.ID) {
		articles = append(articles, articleLegalAid)
	}

	return sections, articles
}

func matchesAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func containsArticle(articles []models.ConstitutionalArticle, id string) bool {
	for _, a := range articles {
		if a.ID == id {
			return true
		}
	}
	return false
}

// severePunishment reports whether a punishment text denotes a maximum of
// seven years or more, including life imprisonment
func severePunishment(punishment string) bool {
	p := strings.ToLower(punishment)
	return strings.Contains(p, "7 years") ||
		strings.Contains(p, "10 years") ||
		strings.Contains(p, "life")
}

func hasSeverePunishment(sections []models.LegalSection) bool {
	for _, s := range sections {
		if severePunishment(s.Punishment) {
			return true
		}
	}
	return false
}
