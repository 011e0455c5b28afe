package analysis

import (
	"fmt"
	"strings"
	"time"

	"nyaysetu-backend/models"
)

const accusedUnknown = "Unknown. Identity to be established during the course of investigation."

// Formalize renders a raw complaint into a first-information document draft.
// Pure over its inputs apart from the wall-clock date used in the header.
func Formalize(rawText string, sections []models.LegalSection, form models.FIRForm) string {
	return FormalizeAt(time.Now(), rawText, sections, form)
}

// FormalizeAt is Formalize with an explicit clock
func FormalizeAt(now time.Time, rawText string, sections []models.LegalSection, form models.FIRForm) string {
	var b strings.Builder

	b.WriteString("FIRST INFORMATION REPORT\n")
	b.WriteString("(Under Section 173 Bharatiya Nagarik Suraksha Sanhita, 2023)\n\n")

	fmt.Fprintf(&b, "1. District: [District]    P.S.: [Police Station]    Year: %d\n", now.Year())
	fmt.Fprintf(&b, "   FIR No.: [To be allotted]    Date: %s\n\n", now.Format("02/01/2006"))

	fmt.Fprintf(&b, "2. Acts & Sections: %s\n\n", actsAndSections(sections))

	b.WriteString("3. Occurrence of Offence:\n")
	b.WriteString("   Day/Date/Time: As stated by the Informant below.\n\n")

	fmt.Fprintf(&b, "4. Place of Occurrence: %s\n", orPlaceholder(form.PlaceOfOccurrence, "[Place of occurrence]"))
	fmt.Fprintf(&b, "   Distance from P.S.: %s\n\n", orPlaceholder(form.DistanceFromStation, "[Distance from police station]"))

	b.WriteString("5. Complainant / Informant:\n")
	fmt.Fprintf(&b, "   Name: %s\n", orPlaceholder(form.ComplainantName, "[Name of complainant]"))
	fmt.Fprintf(&b, "   Contact: %s\n", orPlaceholder(form.ComplainantPhone, "[Contact number]"))
	fmt.Fprintf(&b, "   Address: %s\n\n", orPlaceholder(form.ComplainantAddress, "[Address of complainant]"))

	fmt.Fprintf(&b, "6. Details of Accused: %s\n\n", accusedUnknown)

	b.WriteString("7. Statement of the Informant:\n")
	fmt.Fprintf(&b, "   \"%s\"\n\n", normalizePronouns(rawText))

	if len(sections) > 0 {
		b.WriteString("8. Legal Evaluation:\n")
		if anyCognizable(sections) {
			b.WriteString("   The offence(s) disclosed are cognizable in nature and registration of this report is mandated.\n")
		} else {
			b.WriteString("   The offence(s) disclosed appear non-cognizable; this report may be recorded as an NCR.\n")
		}
		for _, s := range sections {
			fmt.Fprintf(&b, "   - %s: %s\n", s.Section, s.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("9. Action Taken: The above report has been registered, investigation has been taken up, and a copy of this report has been given to the complainant free of cost.\n\n")
	b.WriteString("-- This draft was generated with automated assistance and must be verified by the officer in charge before filing. --\n")

	return b.String()
}

func actsAndSections(sections []models.LegalSection) string {
	if len(sections) == 0 {
		return "[To be determined upon investigation]"
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.IPCSection != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", s.Section, s.IPCSection))
		} else {
			parts = append(parts, s.Section)
		}
	}
	return strings.Join(parts, ", ")
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// normalizePronouns rewrites first-person references into third person for
// the formal narrative. This is an ordered literal substitution, not
// grammatical analysis: it tolerates zero matches and can rewrite quoted
// speech inside the account. Not idempotent.
func normalizePronouns(text string) string {
	out := strings.ReplaceAll(text, "I ", "The Informant ")
	out = strings.ReplaceAll(out, " my ", " their ")
	out = strings.ReplaceAll(out, " me ", " the Informant ")
	return out
}
