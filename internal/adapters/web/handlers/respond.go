package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/edukit/coursehub/internal/core/domain"
)

// errorBody is the stable error envelope every failure serializes to.
type errorBody struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}

// writeError maps domain error kinds to HTTP statuses in one place. Unknown
// errors become an opaque 500; internal detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   "validation_failed",
			Message: "Invalid request body",
			Fields:  ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: "conflict", Message: "User already exists"})
	case errors.Is(err, domain.ErrCourseNameTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: "conflict", Message: "Course already exists"})
	case errors.Is(err, domain.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: "User not found"})
	case errors.Is(err, domain.ErrCourseNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: "Course not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: "Invalid credentials"})
	case errors.Is(err, domain.ErrNoToken):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: "no token provided"})
	case errors.Is(err, domain.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized", Message: "invalid token"})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal", Message: "Internal server error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	// Limit request body to 1MB
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "bad_request", Message: "Invalid request body"})
		return false
	}
	return true
}
