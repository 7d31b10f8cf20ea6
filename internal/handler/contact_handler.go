package handler

import (
	"net/http"

	"urban-bites/internal/model"
	"urban-bites/internal/notify"

	"github.com/rs/zerolog"
)

// ContactHandler handles the contact form and newsletter signups. Both are
// pure relay submissions: nothing is stored locally, and a relay failure is
// surfaced so the user can retry.
type ContactHandler struct {
	relay  notify.Relay
	logger zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(relay notify.Relay, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		relay:  relay,
		logger: logger.With().Str("handler", "contact").Logger(),
	}
}

// Contact handles POST /api/contact requests.
func (h *ContactHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email, and message are required", h.logger)
		return
	}

	err := h.relay.Submit(r.Context(), "New Contact Message", map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	})
	if err != nil {
		writeDomainError(w, http.StatusBadGateway, model.ErrRelayFailed, h.logger)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Newsletter handles POST /api/newsletter requests.
func (h *ContactHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var req model.NewsletterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required", h.logger)
		return
	}

	err := h.relay.Submit(r.Context(), "New Newsletter Subscriber", map[string]string{
		"email": req.Email,
	})
	if err != nil {
		writeDomainError(w, http.StatusBadGateway, model.ErrRelayFailed, h.logger)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
