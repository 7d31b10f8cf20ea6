package handler

import (
	"net/http"
	"time"

	"urban-bites/internal/model"
	"urban-bites/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests. Order placement is where the
// caller-side contract lives: the handler snapshots the current cart into
// the order and precomputes the total before handing it to the store.
type OrderHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(s *store.Store, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		store:  s,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /api/orders requests. The order's items come from the
// server-side cart, never from the request body; placing the order empties
// the cart.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req model.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if req.CustomerName == "" {
		writeError(w, http.StatusBadRequest, "customerName is required", h.logger)
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone is required", h.logger)
		return
	}
	if !req.Type.Valid() {
		writeError(w, http.StatusBadRequest, "unknown order type", h.logger)
		return
	}
	if req.Type == model.OrderDelivery && req.Address == "" {
		writeError(w, http.StatusBadRequest, "address is required for delivery orders", h.logger)
		return
	}

	// The build callback runs under the store lock, so the snapshot it
	// receives is exactly what the placement clears.
	order, err := h.store.PlaceOrderFromCart(func(items []model.CartItem) (model.Order, error) {
		if len(items) == 0 {
			return model.Order{}, model.ErrEmptyCart
		}

		total := 0
		for _, item := range items {
			total += item.Price * item.Quantity
		}

		return model.Order{
			ID:           uuid.NewString(),
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Address:      req.Address,
			Type:         req.Type,
			Items:        items,
			Total:        total,
			Status:       model.OrderPending,
			CreatedAt:    time.Now().UTC(),
		}, nil
	})
	if err != nil {
		if derr, ok := err.(*model.DomainError); ok {
			writeDomainError(w, http.StatusBadRequest, derr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to place order", h.logger)
		return
	}

	h.logger.Info().
		Str("order_id", order.ID).
		Int("total", order.Total).
		Int("items", len(order.Items)).
		Msg("order placed")

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests. Orders come back newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Orders())
}

// Get handles GET /api/orders/{id} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, order := range h.store.Orders() {
		if order.ID == id {
			writeJSON(w, http.StatusOK, order)
			return
		}
	}
	writeError(w, http.StatusNotFound, "order not found", h.logger)
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	status := model.OrderStatus(req.Status)
	if !status.Valid() {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidStatus, h.logger)
		return
	}

	if !h.orderExists(id) {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}

	h.store.UpdateOrderStatus(id, status)
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) orderExists(id string) bool {
	for _, order := range h.store.Orders() {
		if order.ID == id {
			return true
		}
	}
	return false
}
