package resumes

import (
	"strings"
	"unicode/utf8"

	"jumysal-backend/internal/profiles"
)

// Example values from the worked example in the generation prompt. Models
// occasionally copy them into the output instead of the candidate's data, so
// every generated resume is passed through CleanupGeneratedResume first.
const (
	placeholderName  = "Иван Иванов"
	placeholderEmail = "ivan.ivanov@example.com"
)

var placeholderInstitutions = []string{
	"Казахстанско-Британский технический университет",
	"Nazarbayev University",
}

var placeholderSkillHeaders = []string{
	"Технические навыки:",
	"Гибкие навыки:",
}

// Minimum size of a plausible resume; anything shorter is a truncated or
// partial generation.
const minGeneratedLength = 500

// CleanupGeneratedResume substitutes leaked prompt-example values with the
// candidate's real data. Purely textual; no error conditions.
func CleanupGeneratedResume(html string, snap profiles.Snapshot) string {
	fixed := strings.ReplaceAll(html, placeholderEmail, snap.Email)
	fixed = strings.ReplaceAll(fixed, placeholderName, snap.DisplayName)
	for _, inst := range placeholderInstitutions {
		fixed = strings.ReplaceAll(fixed, inst, snap.Institution)
	}
	for _, header := range placeholderSkillHeaders {
		fixed = strings.ReplaceAll(fixed, header, "")
	}
	return fixed
}

// ValidateGeneratedResume applies the quality gate: the output must mention
// the candidate by name, carry at least one markup attribute, and be at least
// minGeneratedLength characters long.
func ValidateGeneratedResume(html string, snap profiles.Snapshot) bool {
	if utf8.RuneCountInString(html) < minGeneratedLength {
		return false
	}
	if snap.DisplayName == "" || !strings.Contains(html, snap.DisplayName) {
		return false
	}
	if !strings.Contains(html, "style=") && !strings.Contains(html, "class=") {
		return false
	}
	return true
}

// SanitizeGeneratedResume cleans up placeholder leakage and reports whether
// the result passes the quality gate.
func SanitizeGeneratedResume(html string, snap profiles.Snapshot) (string, bool) {
	fixed := CleanupGeneratedResume(html, snap)
	return fixed, ValidateGeneratedResume(fixed, snap)
}
