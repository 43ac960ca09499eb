package profiles

import (
	"context"
	"errors"
	"io"
	"strings"

	"jumysal-backend/internal/shared/storage/object"
)

// Service contains business logic for profiles.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// Get loads a user's profile.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.GetByUserID(ctx, userID)
}

// Update validates and stores the profile.
func (s *Service) Update(ctx context.Context, profile Profile) (Profile, error) {
	if profile.UserID == "" {
		return Profile{}, ErrInvalidInput
	}
	if email := strings.TrimSpace(profile.Email); email != "" && !strings.Contains(email, "@") {
		return Profile{}, ErrInvalidInput
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return s.Repo.GetByUserID(ctx, profile.UserID)
}

// UploadPhoto stores a profile photo and records its storage key on the profile.
func (s *Service) UploadPhoto(ctx context.Context, userID, fileName string, r io.Reader) (Profile, error) {
	if userID == "" || fileName == "" {
		return Profile{}, ErrInvalidInput
	}
	key, _, _, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Profile{}, err
	}

	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return Profile{}, err
		}
		profile = Profile{UserID: userID}
	}
	profile.PhotoURL = key
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return Profile{}, err
	}
	return s.Repo.GetByUserID(ctx, userID)
}

// Snapshot loads the profile and normalizes it for rendering or prompting.
// A missing profile is not an error: the identity values from the session fill
// the name/email and everything else gets defaults.
func (s *Service) Snapshot(ctx context.Context, userID, fallbackName, fallbackEmail string) (Snapshot, error) {
	profile, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return Snapshot{}, err
		}
		profile = Profile{UserID: userID}
	}
	if strings.TrimSpace(profile.DisplayName) == "" {
		profile.DisplayName = fallbackName
	}
	if strings.TrimSpace(profile.Email) == "" {
		profile.Email = fallbackEmail
	}
	return Normalize(profile), nil
}
