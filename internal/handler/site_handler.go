package handler

import (
	"net/http"

	"urban-bites/internal/model"
	"urban-bites/internal/store"

	"github.com/rs/zerolog"
)

// SiteHandler handles business info, homepage config, testimonials, and the
// reset-all action. The hero headline and promo title fields hold raw markup
// and are stored and served verbatim; only trusted operators reach the admin
// endpoints that set them.
type SiteHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(s *store.Store, logger zerolog.Logger) *SiteHandler {
	return &SiteHandler{
		store:  s,
		logger: logger.With().Str("handler", "site").Logger(),
	}
}

// GetBusinessInfo handles GET /api/site requests.
func (h *SiteHandler) GetBusinessInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BusinessInfo())
}

// UpdateBusinessInfo handles PUT /api/admin/site requests. Full replace; the
// operator is trusted and no field validation happens.
func (h *SiteHandler) UpdateBusinessInfo(w http.ResponseWriter, r *http.Request) {
	var info model.BusinessInfo
	if err := decodeJSON(r, &info); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	h.store.UpdateBusinessInfo(info)
	writeJSON(w, http.StatusOK, info)
}

// GetHomepageConfig handles GET /api/homepage requests.
func (h *SiteHandler) GetHomepageConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.HomepageConfig())
}

// UpdateHomepageConfig handles PUT /api/admin/homepage requests. Full
// replace, operator trusted.
func (h *SiteHandler) UpdateHomepageConfig(w http.ResponseWriter, r *http.Request) {
	var config model.HomepageConfig
	if err := decodeJSON(r, &config); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}

	h.store.UpdateHomepageConfig(config)
	writeJSON(w, http.StatusOK, config)
}

// GetTestimonials handles GET /api/testimonials requests.
func (h *SiteHandler) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Testimonials())
}

// Reset handles POST /api/admin/reset requests. The body must carry an
// explicit confirmation; once confirmed the reset is unconditional and
// restores every collection to its built-in defaults.
func (h *SiteHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req model.ResetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, http.StatusBadRequest, model.ErrInvalidJSON, h.logger)
		return
	}
	if !req.Confirm {
		writeDomainError(w, http.StatusBadRequest, model.ErrNotConfirmed, h.logger)
		return
	}

	if err := h.store.ResetAll(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reset data", h.logger)
		return
	}

	h.logger.Info().Msg("site data reset to factory defaults")
	w.WriteHeader(http.StatusNoContent)
}
