package handler

import (
	"net/http"

	"urban-bites/internal/model"
	"urban-bites/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// MenuHandler handles menu-related HTTP requests.
type MenuHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(s *store.Store, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		store:  s,
		logger: logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.MenuItems())
}

// Get handles GET /api/menu/{id} requests.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, item := range h.store.MenuItems() {
		if item.ID == id {
			writeJSON(w, http.StatusOK, item)
			return
		}
	}
	writeDomainError(w, http.StatusNotFound, model.ErrItemNotFound, h.logger)
}

// ListCategories handles GET /api/categories requests. The admin menu form
// and the menu page tabs both build their category pickers from this list.
func (h *MenuHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Categories())
}

// Create handles POST /api/admin/menu requests. A missing id gets a
// generated one; the store itself never checks uniqueness.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if item.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}
	if !item.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category", h.logger)
		return
	}
	if item.Price < 0 {
		writeError(w, http.StatusBadRequest, "price must not be negative", h.logger)
		return
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	h.store.AddMenuItem(item)
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/admin/menu/{id} requests. Updating an unknown id
// is a silent no-op in the store, so the handler checks existence first to
// give the admin UI a useful 404.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item model.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}
	item.ID = id

	if item.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}
	if !item.Category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category", h.logger)
		return
	}

	if !h.menuItemExists(id) {
		writeDomainError(w, http.StatusNotFound, model.ErrItemNotFound, h.logger)
		return
	}

	h.store.UpdateMenuItem(item)
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/admin/menu/{id} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.DeleteMenuItem(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) menuItemExists(id string) bool {
	for _, item := range h.store.MenuItems() {
		if item.ID == id {
			return true
		}
	}
	return false
}
