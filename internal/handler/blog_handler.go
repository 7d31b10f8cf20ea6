package handler

import (
	"net/http"

	"urban-bites/internal/model"
	"urban-bites/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// BlogHandler handles blog post HTTP requests.
type BlogHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(s *store.Store, logger zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		store:  s,
		logger: logger.With().Str("handler", "blog").Logger(),
	}
}

// List handles GET /api/blog requests, newest first.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BlogPosts())
}

// Get handles GET /api/blog/{id} requests.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, post := range h.store.BlogPosts() {
		if post.ID == id {
			writeJSON(w, http.StatusOK, post)
			return
		}
	}
	writeError(w, http.StatusNotFound, "blog post not found", h.logger)
}

// Create handles POST /api/admin/blog requests.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var post model.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if post.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", h.logger)
		return
	}

	if post.ID == "" {
		post.ID = uuid.NewString()
	}

	h.store.AddBlogPost(post)
	writeJSON(w, http.StatusCreated, post)
}

// Update handles PUT /api/admin/blog/{id} requests.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var post model.BlogPost
	if err := decodeJSON(r, &post); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}
	post.ID = id

	if post.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", h.logger)
		return
	}

	if !h.postExists(id) {
		writeError(w, http.StatusNotFound, "blog post not found", h.logger)
		return
	}

	h.store.UpdateBlogPost(post)
	writeJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/admin/blog/{id} requests.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.DeleteBlogPost(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) postExists(id string) bool {
	for _, post := range h.store.BlogPosts() {
		if post.ID == id {
			return true
		}
	}
	return false
}
