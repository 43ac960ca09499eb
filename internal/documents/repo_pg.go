package documents

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (id, user_id, file_name, storage_key, mime_type, size_bytes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		doc.StorageKey,
		nullable(doc.MimeType),
		doc.SizeBytes,
		doc.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, docID string) (Document, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, created_at
FROM documents
WHERE id = $1 AND user_id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, docID, userID))
}

func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Document, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, mime_type, size_bytes, created_at
FROM documents
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var doc Document
		var mimeType sql.NullString
		var size sql.NullInt64
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.FileName, &doc.StorageKey, &mimeType, &size, &doc.CreatedAt); err != nil {
			return nil, err
		}
		if mimeType.Valid {
			doc.MimeType = mimeType.String
		}
		if size.Valid {
			doc.SizeBytes = size.Int64
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *PGRepo) scanOne(row *sql.Row) (Document, error) {
	var doc Document
	var mimeType sql.NullString
	var size sql.NullInt64
	err := row.Scan(&doc.ID, &doc.UserID, &doc.FileName, &doc.StorageKey, &mimeType, &size, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	if mimeType.Valid {
		doc.MimeType = mimeType.String
	}
	if size.Valid {
		doc.SizeBytes = size.Int64
	}
	return doc, nil
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}
