package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jstern/bookmarkd/internal/metrics"
	"github.com/jstern/bookmarkd/internal/sanitize"
	"github.com/jstern/bookmarkd/internal/store"
)

const notFoundMessage = "Bookmark doesn't exist"

// bookmarksAPIHandler provides REST handlers for bookmark management.
type bookmarksAPIHandler struct {
	bookmarks *store.BookmarkStore
	validate  *validator.Validate
}

// registerBookmarkRoutes registers bookmark routes on r.
func registerBookmarkRoutes(r chi.Router, bookmarks *store.BookmarkStore) {
	h := &bookmarksAPIHandler{bookmarks: bookmarks, validate: newValidator()}
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

// newValidator builds a validator that reports fields by their json tag
// name, so validation messages use the wire names clients sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// List returns every bookmark in insertion order.
// GET /bookmarks
//
// @Summary      List bookmarks
// @Description  Returns all bookmarks in insertion order. An empty table yields an empty array.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Success      200  {array}   BookmarkResponse
// @Failure      401  {object}  errorBody
// @Security     BearerToken
// @Router       /bookmarks [get]
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.bookmarks.ListAll(r.Context())
	if err != nil {
		log.Printf("api: list bookmarks: %v", err)
		metrics.OperationsTotal.WithLabelValues("list", "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Allocated up front so an empty table serializes as [], never null.
	resp := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		resp = append(resp, toBookmarkResponse(b))
	}

	metrics.OperationsTotal.WithLabelValues("list", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single bookmark by id.
// GET /bookmarks/{id}
//
// @Summary      Get a bookmark
// @Description  Returns a single bookmark by id. Malformed ids read as no matching row.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  BookmarkResponse
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorMessageBody
// @Security     BearerToken
// @Router       /bookmarks/{id} [get]
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id can never address a row.
		metrics.OperationsTotal.WithLabelValues("get", "not_found").Inc()
		writeErrorMessage(w, http.StatusNotFound, notFoundMessage)
		return
	}

	bookmark, err := h.bookmarks.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.OperationsTotal.WithLabelValues("get", "not_found").Inc()
			writeErrorMessage(w, http.StatusNotFound, notFoundMessage)
			return
		}
		log.Printf("api: get bookmark %d: %v", id, err)
		metrics.OperationsTotal.WithLabelValues("get", "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.OperationsTotal.WithLabelValues("get", "ok").Inc()
	writeJSON(w, http.StatusOK, toBookmarkResponse(bookmark))
}

// Create validates and persists a new bookmark.
// POST /bookmarks
//
// @Summary      Create a bookmark
// @Description  Creates a bookmark. All of title, bookmarkurl, description, and rating are required; the first missing field is reported.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBookmarkRequest  true  "Bookmark to create"
// @Success      201   {object}  BookmarkResponse
// @Failure      400   {object}  errorMessageBody
// @Failure      401   {object}  errorBody
// @Security     BearerToken
// @Router       /bookmarks [post]
func (h *bookmarksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookmarkRequest
	// A body that fails to decode leaves req zero-valued, so validation
	// below reports the first missing field rather than a parse error.
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			metrics.OperationsTotal.WithLabelValues("create", "invalid").Inc()
			writeErrorMessage(w, http.StatusBadRequest,
				fmt.Sprintf("Missing '%s' in request body", verrs[0].Field()))
			return
		}
		metrics.OperationsTotal.WithLabelValues("create", "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), req.Title, req.BookmarkURL, req.Description, req.Rating)
	if err != nil {
		log.Printf("api: create bookmark %q: %v", req.Title, err)
		metrics.OperationsTotal.WithLabelValues("create", "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// The echoed body goes through the same sanitization as every read
	// path, so a later GET of this id returns an identical object.
	w.Header().Set("Location", fmt.Sprintf("/bookmarks/%d", bookmark.ID))
	metrics.OperationsTotal.WithLabelValues("create", "ok").Inc()
	writeJSON(w, http.StatusCreated, toBookmarkResponse(bookmark))
}

// Delete removes a bookmark permanently.
// DELETE /bookmarks/{id}
//
// @Summary      Delete a bookmark
// @Description  Deletes a bookmark by id.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Bookmark ID"
// @Success      204  "No Content"
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorMessageBody
// @Security     BearerToken
// @Router       /bookmarks/{id} [delete]
func (h *bookmarksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		metrics.OperationsTotal.WithLabelValues("delete", "not_found").Inc()
		writeErrorMessage(w, http.StatusNotFound, notFoundMessage)
		return
	}

	if err := h.bookmarks.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.OperationsTotal.WithLabelValues("delete", "not_found").Inc()
			writeErrorMessage(w, http.StatusNotFound, notFoundMessage)
			return
		}
		log.Printf("api: delete bookmark %d: %v", id, err)
		metrics.OperationsTotal.WithLabelValues("delete", "error").Inc()
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	metrics.OperationsTotal.WithLabelValues("delete", "ok").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// toBookmarkResponse converts a store.Bookmark to its API representation,
// stripping markup from the text fields. Applied at every response boundary
// that carries bookmark content.
func toBookmarkResponse(b *store.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:          b.ID,
		Title:       sanitize.Clean(b.Title),
		BookmarkURL: b.BookmarkURL,
		Description: sanitize.Clean(b.Description),
		Rating:      b.Rating,
	}
}
