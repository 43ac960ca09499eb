package faq

import "context"

type Repo interface {
	Create(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, entryID string) error
	List(ctx context.Context, category string) ([]Entry, error)
}
