package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the error payload shape shared by every handler. Guidance is
// only populated when a store constraint exhausted its fallback candidates.
type Response struct {
	Message  string   `json:"message"`
	Guidance []string `json:"guidance,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

func RespondWithGuidance(w http.ResponseWriter, code int, message string, guidance []string) {
	RespondWithJSON(w, code, Response{Message: message, Guidance: guidance})
}
