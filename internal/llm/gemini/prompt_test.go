package gemini

import (
	"strings"
	"testing"

	"jumysal-backend/internal/profiles"
)

func TestBuildPromptIncludesCandidateData(t *testing.T) {
	snap := profiles.Normalize(profiles.Profile{
		DisplayName: "Aigerim K.",
		Email:       "aigerim@example.kz",
		Skills:      []string{"Python", "SQL"},
	})

	prompt := BuildPrompt(snap, "professional")

	if !strings.Contains(prompt, "Aigerim K.") {
		t.Fatal("prompt missing candidate name")
	}
	if !strings.Contains(prompt, "Python; SQL") {
		t.Fatal("prompt missing joined skill list")
	}
	if !strings.Contains(prompt, styleDescriptors["professional"]) {
		t.Fatal("prompt missing style descriptor")
	}
}

func TestBuildPromptUnknownStyleFallsBackToModern(t *testing.T) {
	snap := profiles.Normalize(profiles.Profile{DisplayName: "X"})

	prompt := BuildPrompt(snap, "creative")
	if !strings.Contains(prompt, styleDescriptors["modern"]) {
		t.Fatal("unknown style should use the modern descriptor")
	}
}

func TestBuildPromptSkipsEmptyFields(t *testing.T) {
	snap := profiles.Normalize(profiles.Profile{DisplayName: "X"})
	snap.LinkedInURL = ""

	prompt := BuildPrompt(snap, "standard")
	if strings.Contains(prompt, "LinkedIn") {
		t.Fatal("empty fields should be omitted from the prompt")
	}
}
