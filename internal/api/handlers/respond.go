package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hugh/taskhub/internal/api/dto"
	"github.com/hugh/taskhub/internal/tenancy"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeTenancyError maps a tenancy error to its HTTP response. Anything
// unrecognised is logged and reported as a 500 with the fallback message.
func writeTenancyError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, tenancy.ErrInsufficientRole):
		writeMessage(w, http.StatusForbidden, "Only admins can create projects")
	case errors.Is(err, tenancy.ErrNotMember):
		writeMessage(w, http.StatusForbidden, "You are not a member of this tenant")
	case errors.Is(err, tenancy.ErrTenantNotFound):
		writeMessage(w, http.StatusNotFound, "Tenant not found")
	case errors.Is(err, tenancy.ErrProjectNotFound):
		writeMessage(w, http.StatusNotFound, "Project not found")
	case errors.Is(err, tenancy.ErrTaskNotFound):
		writeMessage(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, tenancy.ErrDuplicateMembership):
		writeMessage(w, http.StatusBadRequest, "You are already a member of this tenant")
	case errors.Is(err, tenancy.ErrAssigneeNotFound):
		writeMessage(w, http.StatusBadRequest, "Assignee not found")
	default:
		logger.ErrorContext(r.Context(), fallback, "error", err, "path", r.URL.Path)
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
