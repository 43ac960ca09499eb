package documents

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"jumysal-backend/internal/extract"
	"jumysal-backend/internal/shared/storage/object"
)

// Service contains business logic for uploaded resume files.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file to object storage and records the document.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" {
		return Document{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		StorageKey: storageKey,
		MimeType:   mimeType,
		SizeBytes:  size,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Current returns the most recently uploaded document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.List(ctx, userID, limit, offset)
}

// Text extracts the plain text of a stored document.
func (s *Service) Text(ctx context.Context, userID, docID string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, userID, docID)
	if err != nil {
		return "", err
	}

	body, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return "", err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return extract.TextFromBytes(ctx, raw, doc.MimeType, doc.FileName)
}
