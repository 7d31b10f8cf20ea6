package handler

import (
	"net/http"
	"strconv"
	"time"

	"urban-bites/internal/model"
	"urban-bites/internal/notify"
	"urban-bites/internal/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ReservationHandler handles table booking HTTP requests. The local record
// is the source of truth for the admin screen; the relay email is a
// best-effort side notification and never blocks persistence.
type ReservationHandler struct {
	store  *store.Store
	relay  notify.Relay
	logger zerolog.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(s *store.Store, relay notify.Relay, logger zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		store:  s,
		relay:  relay,
		logger: logger.With().Str("handler", "reservation").Logger(),
	}
}

// reservationResponse pairs the stored reservation with whether the operator
// was notified by email.
type reservationResponse struct {
	Reservation model.Reservation `json:"reservation"`
	Notified    bool              `json:"notified"`
}

// Create handles POST /api/reservations requests from the public booking
// form. The reservation is stored regardless of the relay outcome.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", h.logger)
		return
	}
	if req.Phone == "" {
		writeError(w, http.StatusBadRequest, "phone is required", h.logger)
		return
	}
	if req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "date and time are required", h.logger)
		return
	}
	if req.Guests < 1 {
		writeError(w, http.StatusBadRequest, "guests must be at least 1", h.logger)
		return
	}

	reservation := model.Reservation{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Status:    model.ReservationPending,
		Notes:     req.Notes,
		CreatedAt: time.Now().UTC(),
	}

	h.store.AddReservation(reservation)

	notified := true
	err := h.relay.Submit(r.Context(), "New Table Reservation", map[string]string{
		"name":   req.Name,
		"email":  req.Email,
		"phone":  req.Phone,
		"date":   req.Date,
		"time":   req.Time,
		"guests": strconv.Itoa(req.Guests),
		"notes":  req.Notes,
	})
	if err != nil {
		notified = false
		h.logger.Warn().Err(err).Str("reservation_id", reservation.ID).Msg("reservation email not sent")
	}

	writeJSON(w, http.StatusCreated, reservationResponse{
		Reservation: reservation,
		Notified:    notified,
	})
}

// List handles GET /api/admin/reservations requests, newest first.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Reservations())
}

// UpdateStatus handles PATCH /api/admin/reservations/{id}/status requests.
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	status := model.ReservationStatus(req.Status)
	if !status.Valid() {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidStatus, h.logger)
		return
	}

	if !h.reservationExists(id) {
		writeError(w, http.StatusNotFound, "reservation not found", h.logger)
		return
	}

	h.store.UpdateReservationStatus(id, status)
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/reservations/{id} requests.
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.store.DeleteReservation(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReservationHandler) reservationExists(id string) bool {
	for _, res := range h.store.Reservations() {
		if res.ID == id {
			return true
		}
	}
	return false
}
