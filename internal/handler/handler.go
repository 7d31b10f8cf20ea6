package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"urban-bites/internal/model"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError writes a domain error with its stable code in the body.
func writeDomainError(w http.ResponseWriter, status int, derr *model.DomainError, logger zerolog.Logger) {
	logger.Error().Str("code", derr.Code).Str("error", derr.Message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: derr.Code, Message: derr.Message})
}

// decodeJSON decodes the request body into v. Handlers map a decode error
// to a 400 response.
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
