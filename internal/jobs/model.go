package jobs

import "time"

// Moderation states for a job posting. New postings start pending and only
// approved ones are publicly listed.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Job is a vacancy posted by an employer.
type Job struct {
	ID          string    `json:"id"`
	EmployerID  string    `json:"employerId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Salary      string    `json:"salary"`
	Status      string    `json:"status"`
	ModeratedBy string    `json:"moderatedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether the status is one of the moderation states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
