package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/hedgesim/internal/contracts"
)

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps core error taxonomy to HTTP status codes
// 코어 에러는 그대로 전달되므로 여기서 분류만 함
func statusForError(err error) int {
	switch {
	case errors.Is(err, contracts.ErrInvalidConfig),
		errors.Is(err, contracts.ErrUnknownStrategy),
		errors.Is(err, contracts.ErrInsufficientData):
		return http.StatusBadRequest
	case errors.Is(err, contracts.ErrUnknownCommodity):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
