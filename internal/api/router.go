package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Auth      *auth.StaticTokenMiddleware
	Bookmarks *store.BookmarkStore
}

// NewAPIRouter creates the chi sub-router mounted at /bookmarks.
// All routes require Bearer token authentication and return application/json.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	// The token check runs before dispatch to any operation.
	r.Use(deps.Auth.Authenticate)

	registerBookmarkRoutes(r, deps.Bookmarks)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
