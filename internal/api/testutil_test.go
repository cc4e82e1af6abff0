package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jstern/bookmarkd/internal/api"
	"github.com/jstern/bookmarkd/internal/auth"
	"github.com/jstern/bookmarkd/internal/store"
	"github.com/jstern/bookmarkd/internal/testutil"
)

const testToken = "integration-test-token"

// testEnv holds the router and store needed for API integration tests.
type testEnv struct {
	Router    http.Handler
	Bookmarks *store.BookmarkStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and mounts the full API router the same way serve does.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	bookmarks := store.NewBookmarkStore(db, "sqlite3")
	authMW := auth.NewStaticTokenMiddleware(testToken)

	root := chi.NewRouter()
	root.Mount("/bookmarks", api.NewAPIRouter(api.Deps{
		Auth:      authMW,
		Bookmarks: bookmarks,
	}))

	return &testEnv{Router: root, Bookmarks: bookmarks}
}

// seedBookmark inserts a row directly through the store.
func seedBookmark(t *testing.T, env *testEnv, title, url, description string, rating float64) *store.Bookmark {
	t.Helper()
	b, err := env.Bookmarks.Create(context.Background(), title, url, description, rating)
	if err != nil {
		t.Fatalf("seed bookmark: %v", err)
	}
	return b
}

// authRequest adds the Bearer token to the request.
func authRequest(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}
