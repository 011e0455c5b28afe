package analysis

import (
	"fmt"
	"testing"
	"time"

	"nyaysetu-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePronouns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"I was walking home and someone snatched my phone",
			"The Informant was walking home and someone snatched their phone",
		},
		{
			"he hit me with a rod",
			"he hit the Informant with a rod",
		},
		{
			"nothing to rewrite here",
			"nothing to rewrite here",
		},
		{
			// blind substitution also rewrites quoted speech; kept as-is
			`he shouted "I will find you" at me before running`,
			`he shouted "The Informant will find you" at the Informant before running`,
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizePronouns(tc.in))
	}
}

func TestFormalizeTheftComplaint(t *testing.T) {
	sections, _ := Classify("someone snatched my phone in the market")
	now := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	form := models.FIRForm{
		ComplainantName:     "Ravi Kumar",
		ComplainantPhone:    "9876543210",
		ComplainantAddress:  "12 MG Road",
		PlaceOfOccurrence:   "City Market",
		DistanceFromStation: "2 km",
	}
	doc := FormalizeAt(now, "someone snatched my phone in the market", sections, form)

	assert.Contains(t, doc, "FIRST INFORMATION REPORT")
	assert.Contains(t, doc, "Year: 2026")
	assert.Contains(t, doc, "Date: 14/03/2026")
	assert.Contains(t, doc, "Acts & Sections: BNS 303(2) (IPC 379)")
	assert.Contains(t, doc, "Name: Ravi Kumar")
	assert.Contains(t, doc, "Contact: 9876543210")
	assert.Contains(t, doc, "Place of Occurrence: City Market")
	assert.Contains(t, doc, "Distance from P.S.: 2 km")
	assert.Contains(t, doc, accusedUnknown)
	assert.Contains(t, doc, `"someone snatched their phone in the market"`)
	assert.Contains(t, doc, "cognizable in nature")
	assert.Contains(t, doc, "BNS 303(2): Theft - Dishonest taking of movable property")
	assert.Contains(t, doc, "verified by the officer in charge")
}

func TestFormalizePronounNormalizationInNarrative(t *testing.T) {
	sections, _ := Classify("someone snatched my phone and I chased him")
	doc := Formalize("someone snatched my phone and I chased him", sections, models.FIRForm{})

	assert.Contains(t, doc, "The Informant")
	assert.Contains(t, doc, "their phone")
}

func TestFormalizeEmptyFormUsesPlaceholders(t *testing.T) {
	doc := Formalize("someone snatched my phone", nil, models.FIRForm{})

	assert.Contains(t, doc, "Name: [Name of complainant]")
	assert.Contains(t, doc, "Contact: [Contact number]")
	assert.Contains(t, doc, "Address: [Address of complainant]")
	assert.Contains(t, doc, "Place of Occurrence: [Place of occurrence]")
	assert.Contains(t, doc, "Distance from P.S.: [Distance from police station]")
}

func TestFormalizeNoSections(t *testing.T) {
	doc := Formalize("a quiet sunny afternoon", nil, models.FIRForm{})

	assert.Contains(t, doc, "Acts & Sections: [To be determined upon investigation]")
	assert.NotContains(t, doc, "Legal Evaluation")
}

func TestFormalizeNonCognizable(t *testing.T) {
	sections, _ := Classify("he keeps spreading slander about my family")
	require.NotEmpty(t, sections)

	doc := Formalize("he keeps spreading slander about my family", sections, models.FIRForm{})
	assert.Contains(t, doc, "non-cognizable")
	assert.Contains(t, doc, "NCR")
}

func TestFormalizeListsEverySection(t *testing.T) {
	sections, _ := Classify("he tried to kill me with a knife and I broke my arm")
	doc := Formalize("he tried to kill me with a knife and I broke my arm", sections, models.FIRForm{})

	for _, s := range sections {
		assert.Contains(t, doc, fmt.Sprintf("%s: %s", s.Section, s.Description))
	}
}
