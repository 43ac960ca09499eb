package jobs

import "context"

// ListFilter narrows job listings.
type ListFilter struct {
	Status     string
	EmployerID string
	Limit      int
	Offset     int
}

type Repo interface {
	Create(ctx context.Context, job Job) error
	Update(ctx context.Context, job Job) error
	Delete(ctx context.Context, jobID string) error
	GetByID(ctx context.Context, jobID string) (Job, error)
	List(ctx context.Context, filter ListFilter) ([]Job, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}
