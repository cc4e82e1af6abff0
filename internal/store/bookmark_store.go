package store

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Bookmark represents a row in the bookmarks table.
type Bookmark struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	BookmarkURL string  `db:"bookmarkurl"`
	Description string  `db:"description"`
	Rating      float64 `db:"rating"`
}

// BookmarkStore is the sqlx-backed implementation of BookmarkStoreIface.
type BookmarkStore struct {
	db     *sqlx.DB
	driver string
}

func NewBookmarkStore(db *sqlx.DB, driver string) *BookmarkStore {
	return &BookmarkStore{db: db, driver: driver}
}

// Create inserts a new bookmark and returns the stored row with its
// server-assigned id. Postgres has no LastInsertId, so the id comes back
// via RETURNING there; sqlite and mysql use the driver result.
func (s *BookmarkStore) Create(ctx context.Context, title, bookmarkURL, description string, rating float64) (*Bookmark, error) {
	var id int64
	if s.driver == "postgres" {
		q := s.db.Rebind(`
			INSERT INTO bookmarks (title, bookmarkurl, description, rating)
			VALUES (?, ?, ?, ?) RETURNING id
		`)
		if err := s.db.QueryRowxContext(ctx, q, title, bookmarkURL, description, rating).Scan(&id); err != nil {
			return nil, err
		}
	} else {
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO bookmarks (title, bookmarkurl, description, rating)
			VALUES (?, ?, ?, ?)
		`, title, bookmarkURL, description, rating)
		if err != nil {
			return nil, err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

// GetByID returns the bookmark matching id, or ErrNotFound.
func (s *BookmarkStore) GetByID(ctx context.Context, id int64) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.db.Rebind(`SELECT * FROM bookmarks WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListAll returns every bookmark in insertion order.
func (s *BookmarkStore) ListAll(ctx context.Context) ([]*Bookmark, error) {
	var bookmarks []*Bookmark
	err := s.db.SelectContext(ctx, &bookmarks, `SELECT * FROM bookmarks ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// Delete removes a bookmark by id. Returns ErrNotFound when no row matched,
// so concurrent deletes of the same id resolve to at most one success.
func (s *BookmarkStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM bookmarks WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
