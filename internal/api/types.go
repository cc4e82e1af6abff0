package api

// CreateBookmarkRequest is the request body for POST /bookmarks.
// Fields are validated in declaration order; the first missing one is
// reported, so the order here is part of the API contract.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	BookmarkURL string  `json:"bookmarkurl" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Rating      float64 `json:"rating" validate:"required"`
}

// BookmarkResponse is the JSON representation of a single bookmark.
// Title and Description are sanitized before they land here.
type BookmarkResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	BookmarkURL string  `json:"bookmarkurl"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}
