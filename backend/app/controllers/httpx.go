package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ztna-portal/backend/app/apperr"
	"ztna-portal/backend/app/dto"
	"ztna-portal/backend/app/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError performs the status-code mapping for the core error taxonomy.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperr.ErrAccountInactive),
		errors.Is(err, apperr.ErrEmailTaken),
		errors.Is(err, apperr.ErrInvalidRole),
		errors.Is(err, apperr.ErrDuplicateFilename),
		errors.Is(err, apperr.ErrSelfDelete):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func userView(u *models.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role, Disabled: u.Disabled}
}
