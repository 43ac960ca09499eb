package resumes

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Save upserts the generated resume for a user; the newest write wins.
func (r *PGRepo) Save(ctx context.Context, resume GeneratedResume) error {
	const query = `
INSERT INTO generated_resumes (user_id, html, template, source, generated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
  html = EXCLUDED.html,
  template = EXCLUDED.template,
  source = EXCLUDED.source,
  generated_at = EXCLUDED.generated_at`
	_, err := r.DB.ExecContext(ctx, query,
		resume.UserID,
		resume.HTML,
		string(resume.Template),
		resume.Source,
		resume.GeneratedAt,
	)
	return err
}

// GetByUserID returns the stored resume for a user.
func (r *PGRepo) GetByUserID(ctx context.Context, userID string) (GeneratedResume, error) {
	const query = `
SELECT user_id, html, template, source, generated_at
FROM generated_resumes
WHERE user_id = $1
LIMIT 1`
	var resume GeneratedResume
	var tpl string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&resume.UserID,
		&resume.HTML,
		&tpl,
		&resume.Source,
		&resume.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedResume{}, ErrNotFound
		}
		return GeneratedResume{}, err
	}
	resume.Template = Style(tpl)
	return resume, nil
}

// Count returns the number of stored resumes.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM generated_resumes`).Scan(&count)
	return count, err
}

// CountSince returns the number of resumes generated at or after the cutoff.
func (r *PGRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM generated_resumes WHERE generated_at >= $1`, since).Scan(&count)
	return count, err
}
