package documents

import "time"

// Document represents an uploaded resume file owned by a user.
type Document struct {
	ID         string
	UserID     string
	FileName   string
	StorageKey string
	MimeType   string
	SizeBytes  int64
	CreatedAt  time.Time
}
