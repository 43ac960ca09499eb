package jobs

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Service contains business logic for job postings.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create records a new posting in pending state.
func (s *Service) Create(ctx context.Context, employerID string, job Job) (Job, error) {
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Company) == "" {
		return Job{}, ErrInvalidInput
	}
	job.ID = uuid.NewString()
	job.EmployerID = employerID
	job.Status = StatusPending
	job.ModeratedBy = ""
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, job.ID)
}

// Update lets the posting owner edit fields. Edits reset moderation back to
// pending so changed content is reviewed again.
func (s *Service) Update(ctx context.Context, employerID, jobID string, updated Job) (Job, error) {
	existing, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	if existing.EmployerID != employerID {
		return Job{}, ErrForbidden
	}
	if strings.TrimSpace(updated.Title) == "" || strings.TrimSpace(updated.Company) == "" {
		return Job{}, ErrInvalidInput
	}

	existing.Title = updated.Title
	existing.Company = updated.Company
	existing.Location = updated.Location
	existing.Description = updated.Description
	existing.Salary = updated.Salary
	existing.Status = StatusPending
	existing.ModeratedBy = ""

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, jobID)
}

// Delete removes a posting. Owners can delete their own; admins any.
func (s *Service) Delete(ctx context.Context, requesterID string, isAdmin bool, jobID string) error {
	existing, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !isAdmin && existing.EmployerID != requesterID {
		return ErrForbidden
	}
	return s.Repo.Delete(ctx, jobID)
}

// Get returns a single posting.
func (s *Service) Get(ctx context.Context, jobID string) (Job, error) {
	return s.Repo.GetByID(ctx, jobID)
}

// ListPublic returns approved postings, newest first.
func (s *Service) ListPublic(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.Repo.List(ctx, ListFilter{Status: StatusApproved, Limit: limit, Offset: offset})
}

// ListMine returns an employer's own postings regardless of status.
func (s *Service) ListMine(ctx context.Context, employerID string, limit, offset int) ([]Job, error) {
	return s.Repo.List(ctx, ListFilter{EmployerID: employerID, Limit: limit, Offset: offset})
}

// ListPending returns postings awaiting moderation.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]Job, error) {
	return s.Repo.List(ctx, ListFilter{Status: StatusPending, Limit: limit, Offset: offset})
}

// Moderate approves or rejects a posting.
func (s *Service) Moderate(ctx context.Context, adminID, jobID, status string) (Job, error) {
	if status != StatusApproved && status != StatusRejected {
		return Job{}, ErrInvalidInput
	}
	existing, err := s.Repo.GetByID(ctx, jobID)
	if err != nil {
		return Job{}, err
	}
	existing.Status = status
	existing.ModeratedBy = adminID
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Job{}, err
	}
	return s.Repo.GetByID(ctx, jobID)
}
