package resumes

import (
	"strings"
	"time"
)

// Style selects the visual template of a generated resume.
type Style string

const (
	StyleStandard     Style = "standard"
	StyleProfessional Style = "professional"
	StyleAcademic     Style = "academic"
	StyleModern       Style = "modern"

	// StyleCreative is accepted from the profile editor but has no dedicated
	// template; the renderer falls back to the modern layout for it.
	StyleCreative Style = "creative"
)

// ParseStyle normalizes a raw style value. Unknown values are passed through;
// the renderer maps anything without a template to the default layout.
func ParseStyle(raw string) Style {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StyleModern
	}
	return s
}

// GeneratedResume is the persisted result of a generation run. One record per
// user; each successful run overwrites the previous one.
type GeneratedResume struct {
	UserID      string
	HTML        string
	Template    Style
	Source      string // "ai" or "template"
	GeneratedAt time.Time
}

const (
	SourceAI       = "ai"
	SourceTemplate = "template"
)
