package profiles

import "strings"

// Snapshot is a normalized, read-only view of a profile. Every field is
// populated: strings fall back to fixed defaults, lists are never nil.
// Downstream consumers (prompt builder, template renderer) rely on that.
type Snapshot struct {
	DisplayName    string
	Email          string
	PhotoURL       string
	Location       string
	Bio            string
	Position       string
	Institution    string
	GraduationYear string
	LinkedInURL    string
	Skills         []string
	Experience     []string
	Education      []string
	Languages      []string
	Interests      []string
}

// Defaults used when a profile field was never filled in. The skill and
// language lists mirror what the profile editor pre-selects for new users.
var (
	DefaultSkills    = []string{"Коммуникабельность", "Работа в команде", "Ответственность"}
	DefaultLanguages = []string{"Казахский", "Русский", "Английский"}
)

const (
	defaultPosition = "Студент"
	defaultLocation = "Казахстан"
)

// Normalize maps a possibly-partial profile into a total Snapshot. It has no
// error conditions and never emits nil collections.
func Normalize(p Profile) Snapshot {
	return Snapshot{
		DisplayName:    orDefault(p.DisplayName, ""),
		Email:          orDefault(p.Email, ""),
		PhotoURL:       orDefault(p.PhotoURL, ""),
		Location:       orDefault(p.Location, defaultLocation),
		Bio:            orDefault(p.Bio, ""),
		Position:       orDefault(p.Position, defaultPosition),
		Institution:    orDefault(p.Institution, ""),
		GraduationYear: orDefault(p.GraduationYear, ""),
		LinkedInURL:    orDefault(p.LinkedInURL, ""),
		Skills:         orDefaultList(p.Skills, DefaultSkills),
		Experience:     cleanList(p.Experience),
		Education:      cleanList(p.Education),
		Languages:      orDefaultList(p.Languages, DefaultLanguages),
		Interests:      cleanList(p.Interests),
	}
}

func orDefault(val, def string) string {
	if trimmed := strings.TrimSpace(val); trimmed != "" {
		return trimmed
	}
	return def
}

// orDefaultList returns a copy of the default list when the input has no
// usable entries.
func orDefaultList(vals, def []string) []string {
	cleaned := cleanList(vals)
	if len(cleaned) == 0 {
		return append([]string(nil), def...)
	}
	return cleaned
}

func cleanList(vals []string) []string {
	out := []string{}
	for _, v := range vals {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
