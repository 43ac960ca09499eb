package llm

import (
	"context"
	"errors"

	"jumysal-backend/internal/profiles"
)

// Client abstracts text-generation providers for resume generation.
type Client interface {
	GenerateResume(ctx context.Context, input GenerateInput) (string, error)
}

// GenerateInput captures the inputs for a single generation call.
type GenerateInput struct {
	Model    string
	Style    string
	Snapshot profiles.Snapshot
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no API key is set.
type PlaceholderClient struct{}

// GenerateResume returns ErrNotConfigured.
func (PlaceholderClient) GenerateResume(ctx context.Context, input GenerateInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
