package documents

import "context"

type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, docID string) (Document, error)
	GetCurrentByUser(ctx context.Context, userID string) (Document, error)
	List(ctx context.Context, userID string, limit, offset int) ([]Document, error)
}
