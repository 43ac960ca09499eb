package faq

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, entry Entry) error {
	const query = `
INSERT INTO faq_entries (id, category, question, answer, position, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.Category,
		entry.Question,
		entry.Answer,
		entry.Position,
		entry.CreatedAt,
	)
	return err
}

func (r *PGRepo) Delete(ctx context.Context, entryID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM faq_entries WHERE id = $1`, entryID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) List(ctx context.Context, category string) ([]Entry, error) {
	query := `
SELECT id, category, question, answer, position, created_at
FROM faq_entries
ORDER BY category, position`
	args := []any{}
	if category != "" {
		query = `
SELECT id, category, question, answer, position, created_at
FROM faq_entries
WHERE category = $1
ORDER BY position`
		args = append(args, category)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.Category, &entry.Question, &entry.Answer, &entry.Position, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
