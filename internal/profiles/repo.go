package profiles

import "context"

// Repo defines persistence operations for profiles.
type Repo interface {
	Upsert(ctx context.Context, profile Profile) error
	GetByUserID(ctx context.Context, userID string) (Profile, error)
}
