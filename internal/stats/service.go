// Package stats aggregates platform counts for the admin dashboard.
package stats

import (
	"context"
	"time"

	"jumysal-backend/internal/jobs"
	"jumysal-backend/internal/resumes"
	"jumysal-backend/internal/users"
)

const recentWindow = 7 * 24 * time.Hour

// Summary is the aggregated dashboard payload.
type Summary struct {
	Users         int            `json:"users"`
	UsersByRole   map[string]int `json:"usersByRole"`
	Resumes       int            `json:"resumes"`
	ResumesLast7d int            `json:"resumesLast7Days"`
	JobsByState   map[string]int `json:"jobsByStatus"`
}

// Service reads counts from the feature repos.
type Service struct {
	Users   users.Repo
	Jobs    jobs.Repo
	Resumes resumes.Repo

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// Summary collects all counts. A failing source fails the whole call; the
// dashboard has no use for partial numbers.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	userCount, err := s.Users.Count(ctx)
	if err != nil {
		return Summary{}, err
	}
	usersByRole, err := s.Users.CountByRole(ctx)
	if err != nil {
		return Summary{}, err
	}
	resumeCount, err := s.Resumes.Count(ctx)
	if err != nil {
		return Summary{}, err
	}
	recentResumes, err := s.Resumes.CountSince(ctx, now().UTC().Add(-recentWindow))
	if err != nil {
		return Summary{}, err
	}
	jobCounts, err := s.Jobs.CountByStatus(ctx)
	if err != nil {
		return Summary{}, err
	}

	byState := map[string]int{
		jobs.StatusPending:  jobCounts[jobs.StatusPending],
		jobs.StatusApproved: jobCounts[jobs.StatusApproved],
		jobs.StatusRejected: jobCounts[jobs.StatusRejected],
	}

	return Summary{
		Users:         userCount,
		UsersByRole:   usersByRole,
		Resumes:       resumeCount,
		ResumesLast7d: recentResumes,
		JobsByState:   byState,
	}, nil
}
