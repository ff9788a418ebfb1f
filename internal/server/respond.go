package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response body")
	}
}

func (s *Service) jsonError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// internalServerError collapses any unexpected failure into a generic 500;
// the cause stays in the logs only.
func (s *Service) internalServerError(w http.ResponseWriter) {
	s.jsonError(w, http.StatusInternalServerError, "Internal server error")
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

// optional trims a free-form field, returning nil for blanks so the store
// writes NULL instead of an empty string.
func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
