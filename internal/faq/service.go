package faq

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for help-page entries.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create adds an entry. Admin-only at the handler layer.
func (s *Service) Create(ctx context.Context, entry Entry) (Entry, error) {
	if strings.TrimSpace(entry.Question) == "" || strings.TrimSpace(entry.Answer) == "" {
		return Entry{}, ErrInvalidInput
	}
	if entry.Category == "" {
		entry.Category = "general"
	}
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, entryID string) error {
	return s.Repo.Delete(ctx, entryID)
}

// Search returns entries for a category, optionally filtered by a
// case-insensitive substring match over question and answer.
func (s *Service) Search(ctx context.Context, category, query string) ([]Entry, error) {
	entries, err := s.Repo.List(ctx, category)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries, nil
	}

	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Question), query) ||
			strings.Contains(strings.ToLower(entry.Answer), query) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}
