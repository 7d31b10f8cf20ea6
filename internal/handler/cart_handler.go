package handler

import (
	"net/http"

	"urban-bites/internal/model"
	"urban-bites/internal/store"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// CartHandler handles shopping cart HTTP requests.
type CartHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(s *store.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:  s,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Cart())
}

// AddItem handles POST /api/cart/items requests. The body names a menu item
// id; an existing cart entry for it gains one unit, otherwise a new entry
// with quantity 1 is appended.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "itemId is required", h.logger)
		return
	}

	item, ok := h.findMenuItem(req.ItemID)
	if !ok {
		writeDomainError(w, http.StatusNotFound, model.ErrItemNotFound, h.logger)
		return
	}

	h.store.AddToCart(item)
	writeJSON(w, http.StatusOK, h.store.Cart())
}

// UpdateQuantity handles PATCH /api/cart/items/{id} requests. The delta may
// be negative; an entry that reaches zero disappears from the cart.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.QuantityUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}
	if req.Delta == 0 {
		writeError(w, http.StatusBadRequest, "delta must be non-zero", h.logger)
		return
	}

	h.store.UpdateQuantity(id, req.Delta)
	writeJSON(w, http.StatusOK, h.store.Cart())
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.RemoveFromCart(id)
	writeJSON(w, http.StatusOK, h.store.Cart())
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) findMenuItem(id string) (model.MenuItem, bool) {
	for _, item := range h.store.MenuItems() {
		if item.ID == id {
			return item, true
		}
	}
	return model.MenuItem{}, false
}
