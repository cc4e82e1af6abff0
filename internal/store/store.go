package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// BookmarkStoreIface exposes all bookmark data operations.
// No handler may query the DB directly; all access goes through this interface.
type BookmarkStoreIface interface {
	Create(ctx context.Context, title, bookmarkURL, description string, rating float64) (*Bookmark, error)
	GetByID(ctx context.Context, id int64) (*Bookmark, error)
	ListAll(ctx context.Context) ([]*Bookmark, error)
	Delete(ctx context.Context, id int64) error
}
