package analysis

import (
	"testing"

	"nyaysetu-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionCodes(sections []models.LegalSection) []string {
	codes := make([]string, 0, len(sections))
	for _, s := range sections {
		codes = append(codes, s.Section)
	}
	return codes
}

func TestClassifyTheftOnly(t *testing.T) {
	sections, articles := Classify("someone snatched my phone in the market")

	require.Len(t, sections, 1)
	assert.Equal(t, "BNS 303(2)", sections[0].Section)
	assert.Equal(t, "IPC 379", sections[0].IPCSection)
	assert.True(t, sections[0].Cognizable)
	assert.Empty(t, articles)
}

func TestClassifyEmptyText(t *testing.T) {
	sections, articles := Classify("")
	assert.Empty(t, sections)
	assert.Empty(t, articles)
}

func TestClassifyNoMatch(t *testing.T) {
	sections, articles := Classify("a quiet sunny afternoon in the park")
	assert.Empty(t, sections)
	assert.Empty(t, articles)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	sections, _ := Classify("MY WALLET WAS STOLEN")
	require.Len(t, sections, 1)
	assert.Equal(t, "BNS 303(2)", sections[0].Section)
}

func TestClassifyViolentAssault(t *testing.T) {
	sections, articles := Classify("he tried to kill me with a knife and I broke my arm")

	codes := sectionCodes(sections)
	assert.Contains(t, codes, "BNS 109")    // attempt to murder
	assert.Contains(t, codes, "BNS 118(1)") // hurt by dangerous weapons
	assert.Contains(t, codes, "BNS 117(2)") // grievous hurt

	// severe punishments attract the free-legal-aid article
	ids := make([]string, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	assert.Contains(t, ids, "Article 39A")
}

func TestClassifyLegalAidNotDuplicated(t *testing.T) {
	// "cannot afford" matches the Article 39A keyword set directly and the
	// murder section is severe; the article must appear once, not twice.
	_, articles := Classify("my brother was murdered and I cannot afford a lawyer")

	count := 0
	for _, a := range articles {
		if a.ID == "Article 39A" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClassifyMatchOrderFollowsCatalogue(t *testing.T) {
	// theft precedes murder in the catalogue regardless of word order
	sections, _ := Classify("after the murder my bag was stolen")
	codes := sectionCodes(sections)
	require.Contains(t, codes, "BNS 303(2)")
	require.Contains(t, codes, "BNS 103(1)")
	assert.Less(t, indexOf(codes, "BNS 303(2)"), indexOf(codes, "BNS 103(1)"))
}

func TestClassifyConstitutionalArticles(t *testing.T) {
	_, articles := Classify("I was arrested and detained in the lockup without reason")

	require.NotEmpty(t, articles)
	assert.Equal(t, "Article 22", articles[0].ID)
	assert.Equal(t, models.CategoryFundamentalRight, articles[0].Category)
}

func TestSeverePunishment(t *testing.T) {
	cases := []struct {
		punishment string
		severe     bool
	}{
		{"Up to 7 years imprisonment and fine", true},
		{"Rigorous imprisonment up to 10 years and fine", true},
		{"Death or life imprisonment", true},
		{"Up to 10 years imprisonment (Life if hurt caused)", true},
		{"Up to 3 years imprisonment or fine or both", false},
		{"Up to 1 year imprisonment or fine", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.severe, severePunishment(tc.punishment), tc.punishment)
	}
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
