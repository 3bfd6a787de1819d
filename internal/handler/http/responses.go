package http

import (
	"encoding/json"
	"net/http"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// writeError sends the portal's `{"error": ...}` envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, models.ErrorResponse{Error: message})
}

// writeMappedError classifies err through the sentinel→status map.
func (h *Handler) writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, statusFromError(err), err.Error())
}
