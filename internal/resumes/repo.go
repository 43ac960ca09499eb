package resumes

import (
	"context"
	"time"
)

// Repo defines persistence operations for generated resumes.
type Repo interface {
	Save(ctx context.Context, resume GeneratedResume) error
	GetByUserID(ctx context.Context, userID string) (GeneratedResume, error)
	Count(ctx context.Context) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}
