package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores generated resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byUserID map[string]GeneratedResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUserID: make(map[string]GeneratedResume)}
}

// Save stores the resume keyed by user; the newest write wins.
func (r *MemoryRepo) Save(ctx context.Context, resume GeneratedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUserID[resume.UserID] = resume
	return nil
}

// GetByUserID returns the stored resume for a user.
func (r *MemoryRepo) GetByUserID(ctx context.Context, userID string) (GeneratedResume, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byUserID[userID]
	if !ok {
		return GeneratedResume{}, ErrNotFound
	}
	return resume, nil
}

// Count returns the number of stored resumes.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUserID), nil
}

// CountSince returns the number of resumes generated at or after the cutoff.
func (r *MemoryRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, resume := range r.byUserID {
		if !resume.GeneratedAt.Before(since) {
			count++
		}
	}
	return count, nil
}
